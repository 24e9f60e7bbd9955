// File: ops.go
// Title: Pattern Operations
// Description: Replacement and splitting built on the compiled pattern
//              cache. regexp2 reports rune offsets; results are cut from
//              the input bytes at those offsets.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-11
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation
// - 2025-08-12 v0.1.1: Cut results from the input so invalid UTF-8 survives

package patternx

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Predefined expressions for the whitespace and word classes. \s and \w
// follow Unicode: \w covers letters, nonspacing marks, decimal digits and
// connector punctuation.
const (
	Whitespace    = `\s+`
	SpaceUnit     = `\s`
	LeadingSpace  = `^\s+`
	TrailingSpace = `\s+\z`
	NonWords      = `\W+`
	NonWordRun    = `[^\w]+`
)

// ReplaceAll replaces every match of expr in input with replacement.
// The replacement is inserted verbatim; "$1" and "${name}" are not expanded.
// Text between matches is copied from input byte for byte, so invalid UTF-8
// outside the matches survives.
func (c *Cache) ReplaceAll(input, expr, replacement string, flags Flags) (string, error) {
	re, err := c.Compile(expr, flags)
	if err != nil {
		return "", err
	}

	offsets := unitOffsets(input)
	spans, err := collect([]rune(input), re, false)
	if err != nil {
		return "", matchFailed("ReplaceAll", err)
	}
	if len(spans) == 0 {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, sp := range spans {
		b.WriteString(input[offsets[last]:offsets[sp.start]])
		b.WriteString(replacement)
		last = sp.end
	}
	b.WriteString(input[offsets[last]:])
	return b.String(), nil
}

// ReplaceLiteral replaces every occurrence of the literal text search.
// With IgnoreCase the comparison folds case; the replacement is verbatim.
func (c *Cache) ReplaceLiteral(input, search, replacement string, flags Flags) (string, error) {
	return c.ReplaceAll(input, regexp2.Escape(search), replacement, flags)
}

// MatchString reports whether expr matches anywhere in input
func (c *Cache) MatchString(input, expr string, flags Flags) (bool, error) {
	re, err := c.Compile(expr, flags)
	if err != nil {
		return false, err
	}
	ok, err := re.MatchString(input)
	if err != nil {
		return false, matchFailed("MatchString", err)
	}
	return ok, nil
}

// Split splits input around the matches of expr.
//
// A zero-width match at the start of input never yields a leading empty
// fragment and trailing empty fragments are removed. When expr does not
// match, the result holds input alone. Fragments are cut from input, so
// they keep its bytes unchanged.
func (c *Cache) Split(input, expr string) ([]string, error) {
	offsets, spans, err := c.matches(input, expr, "Split")
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []string{input}, nil
	}

	parts := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		parts = append(parts, input[offsets[last]:offsets[sp.start]])
		last = sp.end
	}
	parts = append(parts, input[offsets[last]:])

	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// Fields splits input around the matches of expr and drops every empty
// fragment.
func (c *Cache) Fields(input, expr string) ([]string, error) {
	offsets, spans, err := c.matches(input, expr, "Fields")
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		if sp.start > last {
			fields = append(fields, input[offsets[last]:offsets[sp.start]])
		}
		last = sp.end
	}
	if last < len(offsets)-1 {
		fields = append(fields, input[offsets[last]:])
	}
	return fields, nil
}

type span struct {
	start, end int
}

// unitOffsets returns the byte offset of every unit of s followed by len(s).
// An invalid byte is one unit, as in the rune conversion regexp2 matches on.
func unitOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// matches compiles expr and returns the unit offsets of input together with
// the rune spans of every match, minus a zero-width match at offset 0
func (c *Cache) matches(input, expr, operation string) ([]int, []span, error) {
	re, err := c.Compile(expr, None)
	if err != nil {
		return nil, nil, err
	}
	spans, err := collect([]rune(input), re, true)
	if err != nil {
		return nil, nil, matchFailed(operation, err)
	}
	return unitOffsets(input), spans, nil
}

func collect(runes []rune, re *regexp2.Regexp, skipLeadingEmpty bool) ([]span, error) {
	var spans []span
	m, err := re.FindRunesMatch(runes)
	for err == nil && m != nil {
		if !(skipLeadingEmpty && m.Index == 0 && m.Length == 0) {
			spans = append(spans, span{start: m.Index, end: m.Index + m.Length})
		}
		m, err = re.FindNextMatch(m)
	}
	return spans, err
}

// ReplaceAll runs Cache.ReplaceAll on the Default cache
func ReplaceAll(input, expr, replacement string, flags Flags) (string, error) {
	return Default().ReplaceAll(input, expr, replacement, flags)
}

// ReplaceLiteral runs Cache.ReplaceLiteral on the Default cache
func ReplaceLiteral(input, search, replacement string, flags Flags) (string, error) {
	return Default().ReplaceLiteral(input, search, replacement, flags)
}

// Split runs Cache.Split on the Default cache
func Split(input, expr string) ([]string, error) {
	return Default().Split(input, expr)
}

// Fields runs Cache.Fields on the Default cache
func Fields(input, expr string) ([]string, error) {
	return Default().Fields(input, expr)
}
