package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	// ErrNoDictionaries is returned when a translator is built without any locale.
	ErrNoDictionaries = errors.New("i18n: no dictionaries")
	// ErrUnknownLocale is returned when the default locale has no dictionary.
	ErrUnknownLocale = errors.New("i18n: unknown locale")
)

type dictionary struct {
	text  map[string]string
	lists map[string][]string
}

// Translator resolves dotted keys against per-locale dictionaries. A missing
// key falls back to the default locale and then to the key itself.
// Translator is read-only after construction and safe for concurrent use.
type Translator struct {
	def     string
	dicts   map[string]dictionary
	locales []string
	matcher language.Matcher
}

// Load builds a Translator from the embedded locale files.
func Load(defaultLocale string) (*Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	raw := make(map[string][]byte, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		raw[strings.TrimSuffix(name, ".json")] = data
	}
	return New(raw, defaultLocale)
}

// New builds a Translator from raw JSON dictionaries keyed by locale code.
func New(raw map[string][]byte, defaultLocale string) (*Translator, error) {
	if len(raw) == 0 {
		return nil, ErrNoDictionaries
	}
	defaultLocale = strings.ToLower(defaultLocale)

	t := &Translator{def: defaultLocale, dicts: make(map[string]dictionary, len(raw))}
	for locale, data := range raw {
		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", locale, err)
		}
		d := dictionary{text: map[string]string{}, lists: map[string][]string{}}
		if err := flatten("", tree, d); err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", locale, err)
		}
		t.dicts[strings.ToLower(locale)] = d
	}
	if _, ok := t.dicts[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, defaultLocale)
	}

	t.locales = append(t.locales, defaultLocale)
	rest := make([]string, 0, len(t.dicts)-1)
	for locale := range t.dicts {
		if locale != defaultLocale {
			rest = append(rest, locale)
		}
	}
	sort.Strings(rest)
	t.locales = append(t.locales, rest...)

	// The matcher falls back to its first tag, so the default goes first.
	tags := make([]language.Tag, 0, len(t.locales))
	for _, locale := range t.locales {
		tags = append(tags, language.Make(locale))
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

func flatten(prefix string, node map[string]any, d dictionary) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			d.text[key] = val
		case map[string]any:
			if err := flatten(key, val, d); err != nil {
				return err
			}
		case []any:
			items := make([]string, 0, len(val))
			for i, item := range val {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("key %s[%d]: expected string, got %T", key, i, item)
				}
				items = append(items, s)
			}
			d.lists[key] = items
		default:
			return fmt.Errorf("key %s: unsupported value %T", key, v)
		}
	}
	return nil
}

// Default returns the default locale code.
func (t *Translator) Default() string { return t.def }

// Locales returns the supported locale codes, default first.
func (t *Translator) Locales() []string {
	out := make([]string, len(t.locales))
	copy(out, t.locales)
	return out
}

// Supports reports whether locale has a dictionary.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.dicts[strings.ToLower(locale)]
	return ok
}

// Lookup returns the text for key, trying locale and then the default
// locale. ok is false when neither has it.
func (t *Translator) Lookup(locale, key string) (string, bool) {
	if d, ok := t.dicts[strings.ToLower(locale)]; ok {
		if s, ok := d.text[key]; ok {
			return s, true
		}
	}
	s, ok := t.dicts[t.def].text[key]
	return s, ok
}

// T returns the text for key, or the key itself when no dictionary has it.
func (t *Translator) T(locale, key string) string {
	if s, ok := t.Lookup(locale, key); ok {
		return s
	}
	return key
}

// List returns the list value for key with the same fallback as Lookup,
// or nil.
func (t *Translator) List(locale, key string) []string {
	if d, ok := t.dicts[strings.ToLower(locale)]; ok {
		if l, ok := d.lists[key]; ok {
			return append([]string(nil), l...)
		}
	}
	if l, ok := t.dicts[t.def].lists[key]; ok {
		return append([]string(nil), l...)
	}
	return nil
}

// Negotiate picks the locale for a request. An explicit query value wins,
// then the cookie, then the Accept-Language header, then the default.
func (t *Translator) Negotiate(query, cookie, acceptLanguage string) string {
	for _, candidate := range []string{query, cookie} {
		if c := strings.ToLower(strings.TrimSpace(candidate)); c != "" && t.Supports(c) {
			return c
		}
	}
	if acceptLanguage == "" {
		return t.def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.def
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.def
	}
	return t.locales[idx]
}
