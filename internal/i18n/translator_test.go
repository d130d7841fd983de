package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(map[string][]byte{
		"en": []byte(`{"nav":{"home":"Home","contact":"Contact"},"contact":{"benefits":["one","two"]}}`),
		"ru": []byte(`{"nav":{"home":"Главная"}}`),
	}, "en")
	require.NoError(t, err)
	return tr
}

func TestLoad_EmbeddedLocales(t *testing.T) {
	tr, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Default())
	assert.Equal(t, []string{"en", "ru"}, tr.Locales())
	assert.Equal(t, "Get Free Consultation", tr.T("en", "contact.form.submit"))
	assert.Equal(t, "Главная", tr.T("ru", "nav.home"))
	assert.Len(t, tr.List("en", "pricing.included.items"), 10)
}

func TestLoad_EnglishCoversEveryRussianKey(t *testing.T) {
	tr, err := Load("en")
	require.NoError(t, err)

	for key := range tr.dicts["ru"].text {
		_, ok := tr.dicts["en"].text[key]
		assert.True(t, ok, "en is missing %s", key)
	}
	for key := range tr.dicts["ru"].lists {
		_, ok := tr.dicts["en"].lists[key]
		assert.True(t, ok, "en is missing list %s", key)
	}
}

func TestLoad_UnknownDefault(t *testing.T) {
	_, err := Load("it")
	require.ErrorIs(t, err, ErrUnknownLocale)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, "en")
	require.ErrorIs(t, err, ErrNoDictionaries)

	_, err = New(map[string][]byte{"en": []byte(`{`)}, "en")
	require.Error(t, err)

	_, err = New(map[string][]byte{"en": []byte(`{"a":[1,2]}`)}, "en")
	require.Error(t, err)

	_, err = New(map[string][]byte{"en": []byte(`{"a":true}`)}, "en")
	require.Error(t, err)
}

func TestT_FallbackChain(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "locale hit", locale: "ru", key: "nav.home", want: "Главная"},
		{name: "falls back to default", locale: "ru", key: "nav.contact", want: "Contact"},
		{name: "unknown locale uses default", locale: "it", key: "nav.home", want: "Home"},
		{name: "missing key returns key", locale: "ru", key: "nav.pricing", want: "nav.pricing"},
		{name: "locale is case insensitive", locale: "RU", key: "nav.home", want: "Главная"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key))
		})
	}
}

func TestLookup_ReportsMiss(t *testing.T) {
	tr := newTestTranslator(t)

	_, ok := tr.Lookup("ru", "nav.missing")
	assert.False(t, ok)

	s, ok := tr.Lookup("ru", "nav.contact")
	assert.True(t, ok)
	assert.Equal(t, "Contact", s)
}

func TestList(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, []string{"one", "two"}, tr.List("ru", "contact.benefits"))
	assert.Nil(t, tr.List("en", "contact.missing"))

	l := tr.List("en", "contact.benefits")
	l[0] = "changed"
	assert.Equal(t, "one", tr.List("en", "contact.benefits")[0])
}

func TestNegotiate(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   string
	}{
		{name: "nothing", want: "en"},
		{name: "query wins", query: "ru", cookie: "en", accept: "en-US", want: "ru"},
		{name: "unsupported query ignored", query: "it", cookie: "ru", want: "ru"},
		{name: "cookie before header", cookie: "en", accept: "ru-RU", want: "en"},
		{name: "header region match", accept: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{name: "header with weights", accept: "fr;q=0.9,en;q=0.5", want: "en"},
		{name: "header unsupported", accept: "ja", want: "en"},
		{name: "header malformed", accept: ";;;=", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Negotiate(tt.query, tt.cookie, tt.accept))
		})
	}
}
