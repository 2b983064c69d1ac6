package fieldid

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldID is a composite form-field identifier. Major addresses the top-level
// field; Minor addresses a sub-component of a composite field (name part,
// address line). Minor 0 means the whole field with no sub-component.
type FieldID struct {
	Major int
	Minor int
}

// Parse converts a textual identifier such as "7", "7.2" or "0.5" into a
// FieldID. At most one decimal separator is allowed and both components must
// be non-negative decimal integers.
func Parse(s string) (FieldID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FieldID{}, fmt.Errorf("%w: empty identifier", ErrInvalidFieldID)
	}

	major, minor, hasMinor := strings.Cut(s, ".")

	m, err := strconv.Atoi(major)
	if err != nil || m < 0 {
		return FieldID{}, fmt.Errorf("%w: %q", ErrInvalidFieldID, s)
	}

	id := FieldID{Major: m}
	if !hasMinor || minor == "" {
		return id, nil
	}
	if strings.Contains(minor, ".") {
		return FieldID{}, fmt.Errorf("%w: %q has more than one decimal separator", ErrInvalidFieldID, s)
	}

	n, err := strconv.Atoi(minor)
	if err != nil || n < 0 {
		return FieldID{}, fmt.Errorf("%w: %q", ErrInvalidFieldID, s)
	}
	id.Minor = n
	return id, nil
}

// FromFloat converts a numeric identifier (as produced by YAML/JSON decoding)
// into a FieldID. The fractional digits become the minor component, so 7.2
// parses to {7, 2} and 7.0 to {7, 0}.
func FromFloat(f float64) (FieldID, error) {
	if f < 0 {
		return FieldID{}, fmt.Errorf("%w: negative identifier %v", ErrInvalidFieldID, f)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// String renders the identifier in its canonical composite form: "7.2" for a
// sub-field, "7" for a whole field. The result doubles as the lookup key into
// composite raw-value maps.
func (id FieldID) String() string {
	if id.Minor == 0 {
		return strconv.Itoa(id.Major)
	}
	return strconv.Itoa(id.Major) + "." + strconv.Itoa(id.Minor)
}

// IsSub reports whether the identifier addresses a sub-component of a
// composite field.
func (id FieldID) IsSub() bool { return id.Minor != 0 }

// IsZero reports whether the identifier is the zero value, which never
// addresses a real field.
func (id FieldID) IsZero() bool { return id.Major == 0 && id.Minor == 0 }

// ParseList coerces a loosely typed value into a list of field identifiers.
// It accepts a single scalar or a slice of scalars (string, int or float as
// decoded from YAML/JSON). Zero, empty and unparseable entries are dropped;
// duplicates are removed preserving first-seen order. ParseList never errors:
// malformed input degrades to a shorter (possibly empty) list.
func ParseList(v any) []FieldID {
	if v == nil {
		return nil
	}

	var raw []any
	switch vv := v.(type) {
	case []any:
		raw = vv
	case []string:
		raw = make([]any, len(vv))
		for i, s := range vv {
			raw[i] = s
		}
	case []float64:
		raw = make([]any, len(vv))
		for i, f := range vv {
			raw[i] = f
		}
	case []int:
		raw = make([]any, len(vv))
		for i, n := range vv {
			raw[i] = n
		}
	default:
		raw = []any{v}
	}

	var (
		ids  []FieldID
		seen = make(map[FieldID]struct{}, len(raw))
	)
	for _, entry := range raw {
		id, ok := fromScalar(entry)
		if !ok || id.IsZero() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func fromScalar(v any) (FieldID, bool) {
	var (
		id  FieldID
		err error
	)
	switch vv := v.(type) {
	case string:
		id, err = Parse(vv)
	case float64:
		id, err = FromFloat(vv)
	case float32:
		id, err = FromFloat(float64(vv))
	case int:
		id, err = FromFloat(float64(vv))
	case int64:
		id, err = FromFloat(float64(vv))
	case uint64:
		id, err = FromFloat(float64(vv))
	default:
		return FieldID{}, false
	}
	return id, err == nil
}
