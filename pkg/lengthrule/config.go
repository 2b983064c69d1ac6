package lengthrule

import "github.com/cliffordp/charlen/pkg/fieldid"

// Unlimited is the sentinel upper bound meaning "no maximum". It is kept as
// -1 externally so that existing rule definitions keep their meaning.
const Unlimited = -1

// Config is a normalized character-length rule. It is immutable after
// Normalize and safe for concurrent use.
type Config struct {
	FormID     int
	FieldIDs   []fieldid.FieldID
	MinChars   int
	MaxChars   int
	MinMessage string
	MaxMessage string
	CountMode  CountMode
}

// Valid reports whether the configuration is internally consistent and worth
// registering. It is a pure predicate: an invalid configuration is simply
// inert, no error is raised anywhere.
//
// A configuration is valid when all of the following hold:
//   - FormID is positive
//   - MaxChars is Unlimited or positive (zero would forbid all input)
//   - the rule constrains something: not (MinChars == 0 and MaxChars == Unlimited)
//   - the bounds are not contradictory: MinChars <= MaxChars unless unlimited
//   - at least one field identifier survived normalization
func (c Config) Valid() bool {
	if c.FormID <= 0 {
		return false
	}
	if c.MaxChars != Unlimited && c.MaxChars <= 0 {
		return false
	}
	if c.MinChars == 0 && c.MaxChars == Unlimited {
		return false
	}
	if c.MaxChars != Unlimited && c.MinChars > c.MaxChars {
		return false
	}
	return len(c.FieldIDs) > 0
}

// Majors returns the distinct major field identifiers covered by the
// configuration, preserving first-seen order. A rule registers one evaluator
// per major id.
func (c Config) Majors() []int {
	var (
		majors []int
		seen   = make(map[int]struct{}, len(c.FieldIDs))
	)
	for _, id := range c.FieldIDs {
		if _, ok := seen[id.Major]; ok {
			continue
		}
		seen[id.Major] = struct{}{}
		majors = append(majors, id.Major)
	}
	return majors
}
