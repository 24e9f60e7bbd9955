// File: stringx.go
// Title: Core Text Operations
// Description: Concatenation, indexed access, insertion, reversal, case and
//              type predicates. Every position is a rune offset.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-08-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-08-11 v0.2.0: Rune-indexed operation set with validated inputs
// - 2025-08-12 v0.2.1: Keep invalid UTF-8 bytes in Reverse, CharAtIndex and StringToArray

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// runeLen returns the number of addressable units of s
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// byteOffset returns the byte offset of the n-th rune of s, or len(s) when
// s has n runes or fewer
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// AppendString appends every fragment to value, in order
func AppendString(value string, appends ...string) string {
	return AppendArray(value, appends)
}

// AppendArray appends the fragments to value, in order. A nil or empty
// slice returns value unchanged.
func AppendArray(value string, appends []string) string {
	if len(appends) == 0 {
		return value
	}
	var b strings.Builder
	b.WriteString(value)
	for _, s := range appends {
		b.WriteString(s)
	}
	return b.String()
}

// Prepend puts every fragment in front of value, keeping their order
func Prepend(value string, prepends ...string) string {
	return PrependArray(value, prepends)
}

// PrependArray puts the fragments in front of value, keeping their order:
// PrependArray("c", []string{"a", "b"}) is "abc".
func PrependArray(value string, prepends []string) string {
	if len(prepends) == 0 {
		return value
	}
	var b strings.Builder
	for _, s := range prepends {
		b.WriteString(s)
	}
	b.WriteString(value)
	return b.String()
}

// units cuts s into its units. An invalid byte is a unit of its own and is
// kept as is.
func units(s string) []string {
	out := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}
	return out
}

// CharAtIndex returns the unit at index. A negative index counts from the
// end, -1 being the last unit. Out of range indices give "".
func CharAtIndex(value string, index int) string {
	parts := units(value)
	if index < 0 {
		index += len(parts)
	}
	if index < 0 || index >= len(parts) {
		return ""
	}
	return parts[index]
}

// StringToArray splits value into single-unit strings
func StringToArray(value string) []string {
	return units(value)
}

// InsertStringAtIndex splices substr into value before the unit at index.
// An index past the end returns value unchanged; a negative index fails.
func InsertStringAtIndex(value, substr string, index int) (string, error) {
	if err := requireText("InsertStringAtIndex", value); err != nil {
		return "", err
	}
	if index < 0 {
		return "", outOfRange("InsertStringAtIndex", "index", index, 0, runeLen(value))
	}
	if index > runeLen(value) {
		return value, nil
	}
	at := byteOffset(value, index)
	return value[:at] + substr + value[at:], nil
}

// Reverse reverses the unit order of value
func Reverse(value string) (string, error) {
	if err := requireText("Reverse", value); err != nil {
		return "", err
	}
	parts := units(value)
	var b strings.Builder
	b.Grow(len(value))
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String(), nil
}

// IsUpperCase reports whether value has no lower-case unit. Digits,
// punctuation and other caseless units do not count either way.
func IsUpperCase(value string) (bool, error) {
	if err := requireText("IsUpperCase", value); err != nil {
		return false, err
	}
	return strings.IndexFunc(value, unicode.IsLower) < 0, nil
}

// IsLowerCase reports whether value has no upper-case unit
func IsLowerCase(value string) (bool, error) {
	if err := requireText("IsLowerCase", value); err != nil {
		return false, err
	}
	return strings.IndexFunc(value, unicode.IsUpper) < 0, nil
}

// IsString reports whether v is a string. A nil v is an argument error.
func IsString(v any) (bool, error) {
	if v == nil {
		return false, invalidArgument("IsString", "v", v, "non-nil value")
	}
	_, ok := v.(string)
	return ok, nil
}

// StringLength returns the number of units in value
func StringLength(value string) (int, error) {
	if err := requireText("StringLength", value); err != nil {
		return 0, err
	}
	return runeLen(value), nil
}

// Unequal reports whether a and b differ
func Unequal(a, b string) bool {
	return a != b
}
