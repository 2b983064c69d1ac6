package lengthrule

import (
	"math"
	"strconv"
	"strings"

	"github.com/cliffordp/charlen/pkg/fieldid"
)

// Options is the raw, loosely typed rule definition as it arrives from a
// configuration source. FormID, FieldID, MinChars and MaxChars are untyped on
// purpose: YAML and JSON decoding produce strings, ints and floats
// interchangeably, and FieldID additionally accepts a list of scalars.
type Options struct {
	FormID     any    `yaml:"form_id" json:"form_id"`
	FieldID    any    `yaml:"field_id" json:"field_id"`
	MinChars   any    `yaml:"min_chars" json:"min_chars"`
	MaxChars   any    `yaml:"max_chars" json:"max_chars"`
	MinMessage string `yaml:"min_message" json:"min_message"`
	MaxMessage string `yaml:"max_message" json:"max_message"`
}

// Defaults supplies the fallback values used for keys the caller left unset.
type Defaults struct {
	MinChars   int
	MaxChars   int
	MinMessage string
	MaxMessage string
	CountMode  CountMode
}

// Normalize merges the options against the defaults and coerces every value
// into its canonical typed form. Caller-supplied values win; unset keys fall
// back to the defaults. Normalize never fails: malformed values coerce to
// zero values that the validation predicate rejects later, so bad input
// degrades to an inert rule instead of an error.
func Normalize(opts Options, def Defaults) Config {
	cfg := Config{
		FormID:     clampNonNegative(toInt(opts.FormID, 0)),
		FieldIDs:   fieldid.ParseList(opts.FieldID),
		MinChars:   clampNonNegative(toInt(opts.MinChars, def.MinChars)),
		MaxChars:   toInt(opts.MaxChars, def.MaxChars),
		MinMessage: opts.MinMessage,
		MaxMessage: opts.MaxMessage,
		CountMode:  def.CountMode,
	}
	if !TemplateValid(cfg.MinMessage) {
		cfg.MinMessage = def.MinMessage
	}
	if !TemplateValid(cfg.MaxMessage) {
		cfg.MaxMessage = def.MaxMessage
	}
	return cfg
}

// TemplateValid reports whether a message template carries exactly one
// integer placeholder for the bound value.
func TemplateValid(tmpl string) bool {
	return strings.Count(tmpl, "%d") == 1
}

// toInt coerces a loosely typed numeric value to an integer. Nil means the
// key was unset and yields the fallback; any other non-numeric value yields 0
// so that validation can reject it.
func toInt(v any, fallback int) int {
	switch vv := v.(type) {
	case nil:
		return fallback
	case int:
		return vv
	case int8:
		return int(vv)
	case int16:
		return int(vv)
	case int32:
		return int(vv)
	case int64:
		return int(vv)
	case uint:
		return int(vv)
	case uint8:
		return int(vv)
	case uint16:
		return int(vv)
	case uint32:
		return int(vv)
	case uint64:
		return int(vv)
	case float32:
		return int(math.Trunc(float64(vv)))
	case float64:
		return int(math.Trunc(vv))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(vv), 64)
		if err != nil {
			return 0
		}
		return int(math.Trunc(f))
	default:
		return 0
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
