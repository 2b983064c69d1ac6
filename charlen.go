package charlen

import (
	"log/slog"

	"github.com/cliffordp/charlen/pkg/catalog"
	"github.com/cliffordp/charlen/pkg/config"
	"github.com/cliffordp/charlen/pkg/lengthrule"
	"github.com/cliffordp/charlen/pkg/logger"
	"github.com/cliffordp/charlen/pkg/registry"
)

// Engine is the host-facing surface of the character-length rule engine. It
// normalizes, validates and registers rule configurations, and answers the
// host's per-field validation calls.
//
// Configure the engine fully (AddRule, SetLabelFunc) before the host starts
// validating; evaluation itself is read-only and safe for concurrent use.
type Engine struct {
	registry  *registry.Registry
	catalog   *catalog.Catalog
	logger    *slog.Logger
	locale    string
	countMode lengthrule.CountMode
	labels    lengthrule.LabelFunc
}

// New builds an engine with an English message catalog, byte-length counting
// and the default slog logger unless configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:   catalog.New(),
		logger:    slog.Default(),
		locale:    "en",
		countMode: lengthrule.CountBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = registry.New(registry.WithLogger(e.logger))
	return e
}

// NewFromEnv builds an engine from environment settings: log level and
// format, counting mode and message locale.
func NewFromEnv(opts ...Option) (*Engine, error) {
	var settings config.Settings
	if err := config.Load(&settings); err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(logger.New(
			logger.WithLevel(logger.ParseLevel(settings.LogLevel)),
			logger.WithFormat(logger.ParseFormat(settings.LogFormat)),
		)),
		WithLocale(settings.Locale),
		WithCountMode(lengthrule.ParseCountMode(settings.CountMode)),
	}
	return New(append(base, opts...)...), nil
}

// Defaults returns the fallback values rule options are normalized against:
// no lower bound, unlimited upper bound, catalog templates for the engine's
// locale and the engine's counting mode.
func (e *Engine) Defaults() lengthrule.Defaults {
	return lengthrule.Defaults{
		MinChars:   0,
		MaxChars:   lengthrule.Unlimited,
		MinMessage: e.catalog.MinMessage(e.locale),
		MaxMessage: e.catalog.MaxMessage(e.locale),
		CountMode:  e.countMode,
	}
}

// AddRule normalizes and validates one rule definition and, when valid,
// registers it for evaluation. It reports whether the rule registered.
// Invalid definitions are inert: no error, no panic, a debug log line only.
func (e *Engine) AddRule(opts lengthrule.Options) bool {
	cfg := lengthrule.Normalize(opts, e.Defaults())
	return len(e.registry.Register(cfg)) > 0
}

// AddRules registers a batch of rule definitions and returns how many of
// them were valid enough to register.
func (e *Engine) AddRules(list []lengthrule.Options) int {
	registered := 0
	for _, opts := range list {
		if e.AddRule(opts) {
			registered++
		}
	}
	return registered
}

// SetLabelFunc installs the host's sub-field label lookup, used to prefix
// violation messages for composite field entries. Call it during setup,
// before the host starts validating.
func (e *Engine) SetLabelFunc(fn lengthrule.LabelFunc) {
	e.labels = fn
}

// Validate is the host's per-field entry point. formID and fieldID identify
// the field the host is currently validating (fieldID is the major
// component), value is the submitted value — a scalar, or a map keyed by
// composite id for composite fields — and required mirrors the field's
// mandatory flag. The host's running outcome is threaded through: rules
// never flip a prior failure back to passing, and violation messages append
// to whatever message is already there.
func (e *Engine) Validate(formID, fieldID int, value any, required bool, prior lengthrule.Outcome) lengthrule.Outcome {
	key := registry.Key{FormID: formID, FieldID: fieldID}
	return e.registry.Evaluate(key, value, required, e.labels, prior)
}

// Registry exposes the underlying rule registry, mostly for hosts that
// prefer to wire dispatch themselves.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
