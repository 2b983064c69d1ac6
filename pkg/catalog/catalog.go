package catalog

import (
	"golang.org/x/text/language"

	"github.com/cliffordp/charlen/pkg/lengthrule"
)

// entry holds the pair of default templates for one language.
type entry struct {
	min string
	max string
}

// Catalog resolves the default "too short" and "too long" message templates
// for a requested locale. Matching uses x/text language matching, so "en-GB"
// resolves to the "en" templates and unknown locales fall back to the first
// registered language. Immutable after New.
type Catalog struct {
	tags    []language.Tag
	entries []entry
	matcher language.Matcher
}

// Option customizes catalog construction.
type Option func(*Catalog)

// WithMessages registers or overrides the templates for a language. Each
// template must contain exactly one %d placeholder for the bound value;
// templates that do not are ignored.
func WithMessages(tag language.Tag, minTmpl, maxTmpl string) Option {
	return func(c *Catalog) {
		if !lengthrule.TemplateValid(minTmpl) || !lengthrule.TemplateValid(maxTmpl) {
			return
		}
		for i, t := range c.tags {
			if t == tag {
				c.entries[i] = entry{min: minTmpl, max: maxTmpl}
				return
			}
		}
		c.tags = append(c.tags, tag)
		c.entries = append(c.entries, entry{min: minTmpl, max: maxTmpl})
	}
}

// New builds a catalog with built-in English, Spanish and German templates,
// then applies the options. The first language (English unless overridden) is
// the fallback for unmatched locales.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		tags: []language.Tag{language.English, language.Spanish, language.German},
		entries: []entry{
			{min: "Please enter at least %d characters.", max: "Please enter no more than %d characters."},
			{min: "Introduce al menos %d caracteres.", max: "No introduzcas más de %d caracteres."},
			{min: "Bitte mindestens %d Zeichen eingeben.", max: "Bitte höchstens %d Zeichen eingeben."},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// MinMessage returns the "too short" template best matching the locale.
func (c *Catalog) MinMessage(locale string) string {
	return c.entries[c.index(locale)].min
}

// MaxMessage returns the "too long" template best matching the locale.
func (c *Catalog) MaxMessage(locale string) string {
	return c.entries[c.index(locale)].max
}

// Languages returns the registered language tags in registration order.
func (c *Catalog) Languages() []language.Tag {
	tags := make([]language.Tag, len(c.tags))
	copy(tags, c.tags)
	return tags
}

func (c *Catalog) index(locale string) int {
	_, i := language.MatchStrings(c.matcher, locale)
	return i
}
