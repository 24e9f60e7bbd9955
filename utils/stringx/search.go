// File: search.go
// Title: Search, Containment and Affix Operations
// Description: Substring search with optional case folding, overlapping
//              occurrence counting and prefix/suffix handling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"
)

// Contains reports whether needle occurs in value
func Contains(value, needle string, opts ...Option) (bool, error) {
	if err := requireText("Contains", value); err != nil {
		return false, err
	}
	o := newOptions(opts)
	return strings.Contains(o.fold(value), o.fold(needle)), nil
}

// ContainsAll reports whether every needle occurs in value. No needles
// gives true.
func ContainsAll(value string, needles []string, opts ...Option) (bool, error) {
	if len(needles) == 0 {
		return true, nil
	}
	if err := requireText("ContainsAll", value); err != nil {
		return false, err
	}
	o := newOptions(opts)
	folded := o.fold(value)
	for _, needle := range needles {
		if !strings.Contains(folded, o.fold(needle)) {
			return false, nil
		}
	}
	return true, nil
}

// ContainsAny reports whether at least one needle occurs in value. No
// needles gives false.
func ContainsAny(value string, needles []string, opts ...Option) (bool, error) {
	if len(needles) == 0 {
		return false, nil
	}
	if err := requireText("ContainsAny", value); err != nil {
		return false, err
	}
	o := newOptions(opts)
	folded := o.fold(value)
	for _, needle := range needles {
		if strings.Contains(folded, o.fold(needle)) {
			return true, nil
		}
	}
	return false, nil
}

// CountSubstr counts the occurrences of sub in value, overlaps included:
// after a match the search resumes one unit past its start, so "aa" occurs
// three times in "aaaa".
func CountSubstr(value, sub string, opts ...Option) (int, error) {
	if sub == "" {
		return 0, invalidArgument("CountSubstr", "sub", sub, "non-empty text")
	}
	if value == "" {
		return 0, nil
	}

	o := newOptions(opts)
	haystack, needle := o.fold(value), o.fold(sub)

	count := 0
	for pos := 0; pos < len(haystack); {
		i := strings.Index(haystack[pos:], needle)
		if i < 0 {
			break
		}
		count++
		_, size := utf8.DecodeRuneInString(haystack[pos+i:])
		pos += i + size
	}
	return count, nil
}

// IndexOf returns the unit index of the first needle at or after the
// offset set by WithOffset (default 0, negative offsets count as 0), or -1.
func IndexOf(value, needle string, opts ...Option) (int, error) {
	if err := requireText("IndexOf", value); err != nil {
		return 0, err
	}
	o := newOptions(opts)
	length := runeLen(value)

	from := 0
	if o.hasOffset && o.offset > 0 {
		from = o.offset
	}
	if from > length {
		if needle == "" {
			return length, nil
		}
		return -1, nil
	}

	haystack := o.fold(value)
	start := byteOffset(haystack, from)
	i := strings.Index(haystack[start:], o.fold(needle))
	if i < 0 {
		return -1, nil
	}
	return from + runeLen(haystack[start:start+i]), nil
}

// LastIndexOf returns the unit index of the last needle starting at or
// before the offset set by WithOffset (default: end of value), or -1. A
// negative offset finds nothing.
func LastIndexOf(value, needle string, opts ...Option) (int, error) {
	if err := requireText("LastIndexOf", value); err != nil {
		return 0, err
	}
	o := newOptions(opts)
	length := runeLen(value)
	needleLen := runeLen(needle)

	from := length
	if o.hasOffset {
		from = o.offset
	}
	if from < 0 {
		return -1, nil
	}
	if last := length - needleLen; from > last {
		from = last
	}
	if from < 0 {
		return -1, nil
	}

	haystack := o.fold(value)
	window := haystack[:byteOffset(haystack, from+needleLen)]
	i := strings.LastIndex(window, o.fold(needle))
	if i < 0 {
		return -1, nil
	}
	return runeLen(window[:i]), nil
}

// EndsWith reports whether value, read only up to the position set by
// WithPosition, ends with search. The position defaults to the length of
// value and is clamped to [0, length]. The match is anchored at position:
// EndsWith("abcd", "ab", WithPosition(3)) is false.
func EndsWith(value, search string, opts ...Option) (bool, error) {
	if err := requireText("EndsWith", value); err != nil {
		return false, err
	}
	o := newOptions(opts)
	return o.endsWith(value, search), nil
}

func (o options) endsWith(value, search string) bool {
	length := runeLen(value)
	position := length
	if o.hasPosition {
		position = o.position
	}
	if position < 0 {
		position = 0
	}
	if position > length {
		position = length
	}
	bounded := value[:byteOffset(value, position)]
	return strings.HasSuffix(o.fold(bounded), o.fold(search))
}

func (o options) startsWith(value, prefix string) bool {
	return strings.HasPrefix(o.fold(value), o.fold(prefix))
}

// EnsureLeft prepends prefix unless value already starts with it
func EnsureLeft(value, prefix string, opts ...Option) (string, error) {
	if err := requireText("EnsureLeft", value); err != nil {
		return "", err
	}
	if newOptions(opts).startsWith(value, prefix) {
		return value, nil
	}
	return prefix + value, nil
}

// EnsureRight appends suffix unless value already ends with it
func EnsureRight(value, suffix string, opts ...Option) (string, error) {
	if err := requireText("EnsureRight", value); err != nil {
		return "", err
	}
	o := newOptions(opts)
	o.hasPosition = false
	if o.endsWith(value, suffix) {
		return value, nil
	}
	return value + suffix, nil
}

// RemoveLeft strips prefix from the start of value if it is there
func RemoveLeft(value, prefix string, opts ...Option) (string, error) {
	if err := requireText("RemoveLeft", value); err != nil {
		return "", err
	}
	if !newOptions(opts).startsWith(value, prefix) {
		return value, nil
	}
	return value[byteOffset(value, runeLen(prefix)):], nil
}

// RemoveRight strips suffix from the end of value if it is there
func RemoveRight(value, suffix string, opts ...Option) (string, error) {
	if err := requireText("RemoveRight", value); err != nil {
		return "", err
	}
	o := newOptions(opts)
	o.hasPosition = false
	if !o.endsWith(value, suffix) {
		return value, nil
	}
	return value[:byteOffset(value, runeLen(value)-runeLen(suffix))], nil
}
