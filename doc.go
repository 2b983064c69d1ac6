// Package charlen enforces minimum and/or maximum character-count bounds on
// form fields, producing a user-facing message when a bound is violated.
//
// The module is a library, not a framework: the host form-rendering
// framework stays an external collaborator that asks the engine about one
// field at a time during its own validation pass and gets back a pass/fail
// outcome plus an optional message. There is no persistence, no network I/O
// and no UI rendering here.
//
// # Architecture
//
// The root package is a thin facade over the concern packages:
//
//   - pkg/fieldid     — composite "major.minor" field identifier parsing
//   - pkg/lengthrule  — normalization, validation and evaluation of rules
//   - pkg/registry    — (form, field) → evaluator dispatch table
//   - pkg/catalog     — localized default message templates
//   - pkg/config      — env settings and YAML rule files
//   - pkg/logger      — slog factory for diagnostics
//
// # Usage
//
//	engine := charlen.New()
//	engine.AddRule(lengthrule.Options{
//	    FormID:   524,
//	    FieldID:  1,
//	    MinChars: 4,
//	    MaxChars: 5,
//	})
//
//	// Inside the host's validation pass for form 524, field 1:
//	out := engine.Validate(524, 1, submittedValue, fieldRequired, lengthrule.Pass())
//	if !out.Valid {
//	    // display out.Message next to the field
//	}
//
// Misconfigured rules are deliberately inert rather than fatal: AddRule
// returns false, nothing registers and form submission keeps working for
// every other field.
package charlen
