package courier

import (
	"context"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is supplied.
const DefaultLocale = "en"

// TranslateFunc maps a message key to a localized string. Templates call
// it through the "t" function.
type TranslateFunc func(key string) string

// Composer prepares and sends one templated email. The template directory
// is resolved at construction and immutable afterwards; the directory
// contents are re-read on every render.
type Composer struct {
	app       App
	template  string
	data      map[string]any
	locale    string
	translate TranslateFunc
	loc       location
}

// ComposerOption configures a Composer at construction.
type ComposerOption func(*Composer)

// WithLocale sets the render locale. The value is canonicalized through
// golang.org/x/text/language; unparsable tags keep DefaultLocale.
func WithLocale(locale string) ComposerOption {
	return func(c *Composer) {
		if tag, err := language.Parse(locale); err == nil {
			c.locale = tag.String()
		}
	}
}

// WithTranslator sets the translator exposed to templates as the "t"
// function. Defaults to the identity function.
func WithTranslator(translate TranslateFunc) ComposerOption {
	return func(c *Composer) {
		if translate != nil {
			c.translate = translate
		}
	}
}

// New builds a Composer for the named template. The identifier is either
// a bare template name or an absolute directory path. Resolution happens
// here, once: a missing template never fails construction, it degrades to
// the built-in empty template with a logged warning, and any remaining
// problem surfaces at render time.
func New(app App, template string, data map[string]any, opts ...ComposerOption) *Composer {
	c := &Composer{
		app:       app,
		template:  template,
		data:      data,
		locale:    DefaultLocale,
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.loc = resolveTemplate(app, template)
	return c
}

// Template returns the template identifier the composer was built with.
func (c *Composer) Template() string { return c.template }

// Locale returns the composer's canonicalized render locale.
func (c *Composer) Locale() string { return c.locale }

// Send runs the full pipeline — render, inline CSS, derive text — and
// dispatches the result through the configured transport. Extra options
// layer on top of the rendered fields and may override them.
func (c *Composer) Send(ctx context.Context, to string, opts ...MessageOption) (*Receipt, error) {
	artifacts, err := c.Render(ctx)
	if err != nil {
		return nil, err
	}
	opts = append([]MessageOption{WithText(artifacts.Text)}, opts...)
	return SendRaw(ctx, c.app, to, artifacts.Subject, artifacts.InlinedHTML, opts...)
}
