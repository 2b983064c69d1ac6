package lengthrule

import (
	"fmt"
	"strings"

	"github.com/cliffordp/charlen/pkg/fieldid"
)

// Outcome is the result of one evaluation pass: a pass/fail flag plus an
// optional user-facing message. The host threads its running outcome through
// successive evaluators; a failing outcome is never flipped back to passing.
type Outcome struct {
	Valid   bool
	Message string
}

// Pass returns a fresh passing outcome, the starting accumulator for a
// validation pass.
func Pass() Outcome { return Outcome{Valid: true} }

// Fail returns a failing outcome carrying the given message.
func Fail(message string) Outcome { return Outcome{Valid: false, Message: message} }

// LabelFunc resolves a human-readable label for a sub-field, supplied by the
// host's field-metadata lookup. It may be nil, in which case the composite
// identifier itself is used as the label.
type LabelFunc func(id fieldid.FieldID) string

// Evaluate checks a raw field value against the configured bounds and folds
// the result into the host's running outcome.
//
// major selects which of the configuration's field identifiers apply: every
// entry whose major component matches is evaluated, in declaration order, and
// all resulting messages are accumulated. value is either a single scalar or
// a map keyed by composite identifier ("1.3") for composite fields. required
// mirrors the host field's mandatory flag; an optional field whose resolved
// value is empty is exempt from both bounds.
//
// Per entry, the minimum bound takes precedence: a value below MinChars is
// reported as too short even before the maximum is considered. Values the
// engine cannot measure (booleans, nested collections, missing composite
// entries) are skipped without violation.
func (c Config) Evaluate(major int, value any, required bool, labels LabelFunc, prior Outcome) Outcome {
	var msgs []string

	for _, id := range c.FieldIDs {
		if id.Major != major {
			continue
		}

		entry, ok := resolve(value, id)
		if !ok {
			continue
		}
		n, ok := charCount(entry, c.CountMode)
		if !ok {
			continue
		}
		if !required && n == 0 {
			continue
		}

		switch {
		case n < c.MinChars:
			msgs = append(msgs, c.compose(id, labels, c.MinMessage, c.MinChars))
		case c.MaxChars != Unlimited && n > c.MaxChars:
			msgs = append(msgs, c.compose(id, labels, c.MaxMessage, c.MaxChars))
		}
	}

	if len(msgs) == 0 {
		return prior
	}

	message := strings.Join(msgs, "\n")
	if prior.Message != "" {
		message = prior.Message + "\n" + message
	}
	return Outcome{Valid: false, Message: message}
}

// resolve picks the concrete value to measure for one field id. Composite
// values arrive as a map keyed by the composite identifier; a missing key
// means the sub-field was not submitted and is skipped. Scalars apply to
// every entry as-is.
func resolve(value any, id fieldid.FieldID) (any, bool) {
	switch m := value.(type) {
	case map[string]any:
		v, ok := m[id.String()]
		return v, ok
	case map[string]string:
		v, ok := m[id.String()]
		return v, ok
	default:
		return value, true
	}
}

// compose substitutes the bound into the message template and, for sub-field
// entries, prefixes the label identifying which sub-field the message refers
// to.
func (c Config) compose(id fieldid.FieldID, labels LabelFunc, tmpl string, bound int) string {
	msg := fmt.Sprintf(tmpl, bound)
	if !id.IsSub() {
		return msg
	}

	label := ""
	if labels != nil {
		label = labels(id)
	}
	if label == "" {
		label = id.String()
	}
	return label + ": " + msg
}
