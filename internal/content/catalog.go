package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/studyitalypro/landing/internal/leads"
)

// ErrMissingKeys is returned when an entity has no key bundle.
var ErrMissingKeys = errors.New("content: missing translation keys")

// Translator is the lookup surface the catalog needs.
type Translator interface {
	T(locale, key string) string
	List(locale, key string) []string
	Locales() []string
	Default() string
}

type NavItem struct {
	Section Section
	Label   string
	Href    string
}

type Stat struct {
	ID     string
	Label  string
	Target int
	Suffix string
	Frames []int
}

type Card struct {
	ID    string
	Icon  string
	Label string
}

type Service struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Features    []string
}

// Amount is a figure with its caption, used for trust indicators, price
// tiers and value propositions.
type Amount struct {
	ID     string
	Amount string
	Label  string
	Note   string
}

type Step struct {
	Number      int
	ID          string
	Title       string
	Description string
}

type ContactMethod struct {
	ID    string
	Icon  string
	Label string
	Value string
	Href  string
}

type EducationOption struct {
	Value string
	Label string
}

type Link struct {
	Label string
	Href  string
}

// Page is the fully resolved content of the page for one locale. It is
// read-only once built.
type Page struct {
	Locale  string
	Locales []string

	ScrollOffset      int
	ScrolledThreshold int
	CountUpInterval   int
	CountUpDelay      int

	Nav           []NavItem
	HomeHref      string
	CTAHref       string
	LearnMoreHref string
	Stats         []Stat
	Cards         []Card
	Services      []Service
	Trust         []Amount
	Steps         []Step
	Tiers         []Amount
	Included      []string
	Values        []Amount
	Contact       []ContactMethod
	Benefits      []string
	NextSteps     []string
	Education     []EducationOption
	FooterService []Link
	FooterQuick   []Link
	Year          int

	tr Translator
}

// T looks up key in the page's locale.
func (p *Page) T(key string) string { return p.tr.T(p.Locale, key) }

// List looks up a list key in the page's locale.
func (p *Page) List(key string) []string { return p.tr.List(p.Locale, key) }

// Catalog holds one resolved Page per supported locale.
type Catalog struct {
	pages map[string]*Page
	def   string
}

// NewCatalog resolves every entity for every locale of tr. Links are built
// through scroller, so a link to an unknown section fails here.
func NewCatalog(tr Translator, scroller *Scroller, now time.Time) (*Catalog, error) {
	c := &Catalog{pages: make(map[string]*Page), def: tr.Default()}
	for _, locale := range tr.Locales() {
		p, err := buildPage(tr, scroller, locale, now.Year())
		if err != nil {
			return nil, fmt.Errorf("content: build %s: %w", locale, err)
		}
		c.pages[locale] = p
	}
	return c, nil
}

// Page returns the page for locale, or the default locale's page.
func (c *Catalog) Page(locale string) *Page {
	if p, ok := c.pages[locale]; ok {
		return p
	}
	return c.pages[c.def]
}

func bundle[K comparable](keys map[K]keyBundle, id K) (keyBundle, error) {
	b, ok := keys[id]
	if !ok {
		return keyBundle{}, fmt.Errorf("%w: %v", ErrMissingKeys, id)
	}
	return b, nil
}

func buildPage(tr Translator, scroller *Scroller, locale string, year int) (*Page, error) {
	t := func(key string) string { return tr.T(locale, key) }
	href := scroller.Href

	p := &Page{
		Locale:            locale,
		Locales:           tr.Locales(),
		ScrollOffset:      scroller.Offset(),
		ScrolledThreshold: scroller.ScrolledThreshold(),
		CountUpInterval:   CountUpIntervalMillis,
		CountUpDelay:      CountUpDelayMillis,
		Included:          tr.List(locale, "pricing.included.items"),
		Benefits:          tr.List(locale, "contact.consultation.benefits"),
		NextSteps:         tr.List(locale, "contact.success.next"),
		Year:              year,
		tr:                tr,
	}

	var err error
	if p.HomeHref, err = href(SectionHome); err != nil {
		return nil, err
	}
	if p.CTAHref, err = href(SectionContact); err != nil {
		return nil, err
	}
	if p.LearnMoreHref, err = href(SectionServices); err != nil {
		return nil, err
	}

	for _, section := range navSections {
		b, err := bundle(navKeys, section)
		if err != nil {
			return nil, err
		}
		h, err := href(section)
		if err != nil {
			return nil, err
		}
		item := NavItem{Section: section, Label: t(b.Title), Href: h}
		p.Nav = append(p.Nav, item)
		p.FooterQuick = append(p.FooterQuick, Link{Label: item.Label, Href: h})
	}

	for _, s := range heroStats {
		b, err := bundle(statKeys, s.ID)
		if err != nil {
			return nil, err
		}
		p.Stats = append(p.Stats, Stat{
			ID:     s.ID,
			Label:  t(b.Title),
			Target: s.Target,
			Suffix: s.Suffix,
			Frames: CountUp(s.Target, CountUpSteps),
		})
	}

	for _, c := range heroCards {
		b, err := bundle(cardKeys, c.ID)
		if err != nil {
			return nil, err
		}
		p.Cards = append(p.Cards, Card{ID: c.ID, Icon: c.Icon, Label: t(b.Title)})
	}

	for _, s := range services {
		b, err := bundle(serviceKeys, s.ID)
		if err != nil {
			return nil, err
		}
		p.Services = append(p.Services, Service{
			ID:          s.ID,
			Icon:        s.Icon,
			Title:       t(b.Title),
			Description: t(b.Description),
			Features:    tr.List(locale, b.List),
		})
	}

	if p.Trust, err = amounts(t, trustIndicators, trustKeys); err != nil {
		return nil, err
	}
	if p.Tiers, err = amounts(t, priceTiers, tierKeys); err != nil {
		return nil, err
	}
	if p.Values, err = amounts(t, valueProps, valueKeys); err != nil {
		return nil, err
	}

	for i, id := range processSteps {
		b, err := bundle(stepKeys, id)
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, Step{Number: i + 1, ID: id, Title: t(b.Title), Description: t(b.Description)})
	}

	for _, m := range contactMethods {
		b, err := bundle(contactKeys, m.ID)
		if err != nil {
			return nil, err
		}
		p.Contact = append(p.Contact, ContactMethod{
			ID:    m.ID,
			Icon:  m.Icon,
			Label: t(b.Title),
			Value: t(b.Description),
			Href:  m.Href,
		})
	}

	p.Education = append(p.Education, EducationOption{Value: "", Label: t("contact.education.select")})
	for _, level := range leads.EducationLevels {
		b, err := bundle(educationKeys, level)
		if err != nil {
			return nil, err
		}
		p.Education = append(p.Education, EducationOption{Value: string(level), Label: t(b.Title)})
	}

	for _, l := range footerServices {
		b, err := bundle(footerServiceKeys, l.ID)
		if err != nil {
			return nil, err
		}
		h, err := href(l.Section)
		if err != nil {
			return nil, err
		}
		p.FooterService = append(p.FooterService, Link{Label: t(b.Title), Href: h})
	}

	return p, nil
}

func amounts(t func(string) string, defs []amountDef, keys map[string]keyBundle) ([]Amount, error) {
	out := make([]Amount, 0, len(defs))
	for _, d := range defs {
		b, err := bundle(keys, d.ID)
		if err != nil {
			return nil, err
		}
		a := Amount{ID: d.ID, Amount: d.Amount, Label: t(b.Title)}
		if b.Description != "" {
			a.Note = t(b.Description)
		}
		out = append(out, a)
	}
	return out, nil
}
