package lengthrule

import (
	"strconv"
	"unicode/utf8"
)

// CountMode selects how character length is measured.
type CountMode string

const (
	// CountBytes measures the byte length of the value's textual form. This
	// matches the historical behavior of the rule and is the default.
	CountBytes CountMode = "bytes"
	// CountRunes measures Unicode code points, which is usually what users
	// expect for multibyte text.
	CountRunes CountMode = "runes"
)

// ParseCountMode maps a configuration string onto a CountMode, falling back
// to CountBytes for anything it does not recognize.
func ParseCountMode(s string) CountMode {
	if CountMode(s) == CountRunes {
		return CountRunes
	}
	return CountBytes
}

// charCount returns the character length of a scalar value. Only strings,
// integers and floats are countable; anything else (booleans, slices, maps,
// nil) reports ok=false and is exempt from length checks.
func charCount(v any, mode CountMode) (n int, ok bool) {
	var s string
	switch vv := v.(type) {
	case string:
		s = vv
	case int:
		s = strconv.Itoa(vv)
	case int8:
		s = strconv.FormatInt(int64(vv), 10)
	case int16:
		s = strconv.FormatInt(int64(vv), 10)
	case int32:
		s = strconv.FormatInt(int64(vv), 10)
	case int64:
		s = strconv.FormatInt(vv, 10)
	case uint:
		s = strconv.FormatUint(uint64(vv), 10)
	case uint8:
		s = strconv.FormatUint(uint64(vv), 10)
	case uint16:
		s = strconv.FormatUint(uint64(vv), 10)
	case uint32:
		s = strconv.FormatUint(uint64(vv), 10)
	case uint64:
		s = strconv.FormatUint(vv, 10)
	case float32:
		s = strconv.FormatFloat(float64(vv), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(vv, 'f', -1, 64)
	default:
		return 0, false
	}

	if mode == CountRunes {
		return utf8.RuneCountInString(s), true
	}
	return len(s), true
}
