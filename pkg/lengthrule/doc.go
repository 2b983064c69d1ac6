// Package lengthrule implements a configurable character-length validation
// rule for form fields: a minimum and/or maximum character count enforced on
// one or more fields of a form, producing a user-facing message on violation.
//
// The package is built from three cooperating pieces:
//
//   - Normalize turns a loosely typed option bag (Options) into a canonical
//     Config, merging against caller-declared Defaults and coercing strings,
//     numbers and lists into their typed form. It never fails.
//   - Config.Valid is a pure predicate that rejects self-contradictory or
//     meaningless configurations (zero maximum, min above max, no fields).
//     Invalid configurations are inert: no error, no registration, no effect.
//   - Config.Evaluate checks a submitted value against the bounds and folds
//     the result into the host's running Outcome accumulator.
//
// # Error handling
//
// The rule deliberately has no failure modes at evaluation time. Values the
// engine cannot measure are skipped, missing composite sub-field entries are
// treated as not present, and a misconfigured rule simply never fires. This
// keeps a broken rule from ever blocking form submission for unrelated
// fields.
//
// # Character counting
//
// Length is measured in bytes by default (CountBytes), matching the rule's
// historical behavior; CountRunes switches to Unicode code points. The mode
// is part of the normalized Config, so a single engine can host rules with
// either semantics.
package lengthrule
