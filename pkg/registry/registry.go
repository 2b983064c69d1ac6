package registry

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/cliffordp/charlen/pkg/lengthrule"
)

// Key identifies one host validation callback: a form plus the major
// component of a field identifier.
type Key struct {
	FormID  int
	FieldID int
}

// EvalFunc is the evaluator bound to a key. The host threads its running
// outcome through; the function never flips a failing outcome back to
// passing.
type EvalFunc func(value any, required bool, labels lengthrule.LabelFunc, prior lengthrule.Outcome) lengthrule.Outcome

// binding pairs a registered configuration with its evaluator. The id only
// exists for log correlation.
type binding struct {
	id   uuid.UUID
	cfg  lengthrule.Config
	eval EvalFunc
}

// Registry maps (form, major field) keys to the evaluators registered for
// them. Several independent rules may bind the same key; they are evaluated
// in registration order. Safe for concurrent use, though the expected pattern
// is to register everything at startup and only evaluate afterwards.
type Registry struct {
	mu       sync.RWMutex
	bindings map[Key][]binding
	logger   *slog.Logger
}

// Option customizes registry construction.
type Option func(*Registry)

// WithLogger sets the logger used for registration diagnostics. Nil loggers
// are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		bindings: make(map[Key][]binding),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds the configuration's evaluator to one key per distinct major
// field identifier and returns the keys it bound. An invalid configuration is
// silently inert: nothing registers, nil is returned, and only a debug log
// line records the rejection.
func (r *Registry) Register(cfg lengthrule.Config) []Key {
	if !cfg.Valid() {
		r.logger.Debug("rejected inert length rule",
			slog.Int("form_id", cfg.FormID),
			slog.Int("min_chars", cfg.MinChars),
			slog.Int("max_chars", cfg.MaxChars),
			slog.Int("field_ids", len(cfg.FieldIDs)),
		)
		return nil
	}

	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]Key, 0, 1)
	for _, major := range cfg.Majors() {
		key := Key{FormID: cfg.FormID, FieldID: major}
		r.bindings[key] = append(r.bindings[key], binding{
			id:  id,
			cfg: cfg,
			eval: func(value any, required bool, labels lengthrule.LabelFunc, prior lengthrule.Outcome) lengthrule.Outcome {
				return cfg.Evaluate(major, value, required, labels, prior)
			},
		})
		keys = append(keys, key)
		r.logger.Debug("registered length rule",
			slog.String("rule_id", id.String()),
			slog.Int("form_id", key.FormID),
			slog.Int("field_id", key.FieldID),
		)
	}
	return keys
}

// Evaluate runs every evaluator bound to the key in registration order,
// folding the host's running outcome through them. A key with no bindings
// returns the prior outcome untouched.
func (r *Registry) Evaluate(key Key, value any, required bool, labels lengthrule.LabelFunc, prior lengthrule.Outcome) lengthrule.Outcome {
	r.mu.RLock()
	bound := r.bindings[key]
	r.mu.RUnlock()

	out := prior
	for _, b := range bound {
		out = b.eval(value, required, labels, out)
	}
	return out
}

// Len returns the number of bound keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Keys returns every bound key, in no particular order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.bindings))
	for key := range r.bindings {
		keys = append(keys, key)
	}
	return keys
}
