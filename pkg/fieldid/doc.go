// Package fieldid parses and represents composite form-field identifiers.
//
// Form frameworks commonly address sub-components of a composite field (name
// parts, address lines) with a decimal notation: "7" is field 7 as a whole,
// "7.2" is sub-field 2 of field 7. This package turns such identifiers,
// arriving as strings or numbers from loosely typed configuration, into a
// small value type with explicit major and minor components.
//
// # Usage
//
//	id, err := fieldid.Parse("7.2")
//	// id.Major == 7, id.Minor == 2, id.IsSub() == true
//
//	ids := fieldid.ParseList([]any{1.3, "1.6", 1.3})
//	// ids == [{1 3} {1 6}] — deduplicated, order preserved
//
// ParseList never fails; entries that cannot be parsed are dropped so that a
// partially malformed configuration degrades instead of erroring.
package fieldid
