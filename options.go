package charlen

import (
	"log/slog"

	"github.com/cliffordp/charlen/pkg/catalog"
	"github.com/cliffordp/charlen/pkg/lengthrule"
)

// Option configures engine construction.
type Option func(*Engine)

// WithLogger sets the logger for registration diagnostics. Nil loggers are
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCatalog replaces the default message catalog. Nil catalogs are ignored.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithLocale sets the locale used to pick default violation messages.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		if locale != "" {
			e.locale = locale
		}
	}
}

// WithCountMode sets the character counting semantics applied to rules
// registered with this engine.
func WithCountMode(mode lengthrule.CountMode) Option {
	return func(e *Engine) { e.countMode = mode }
}

// WithLabelFunc installs the host's sub-field label lookup at construction
// time; equivalent to calling SetLabelFunc afterwards.
func WithLabelFunc(fn lengthrule.LabelFunc) Option {
	return func(e *Engine) { e.labels = fn }
}
