// File: pattern.go
// Title: Pattern-Based Operations
// Description: Trimming, cleanup, replacement, word and delimiter splitting
//              on top of the patternx facility.
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

	"github.com/msto63/textkit/utils/patternx"
)

func replacePattern(operation, value, expr, replacement string) (string, error) {
	if err := requireText(operation, value); err != nil {
		return "", err
	}
	return patternx.ReplaceAll(value, expr, replacement, patternx.None)
}

// LeftTrim removes leading whitespace
func LeftTrim(value string) (string, error) {
	return replacePattern("LeftTrim", value, patternx.LeadingSpace, "")
}

// RightTrim removes trailing whitespace
func RightTrim(value string) (string, error) {
	return replacePattern("RightTrim", value, patternx.TrailingSpace, "")
}

// RemoveSpaces removes every whitespace unit
func RemoveSpaces(value string) (string, error) {
	return replacePattern("RemoveSpaces", value, patternx.SpaceUnit, "")
}

// RemoveNonWords removes every unit that is not a letter, combining mark,
// decimal digit or connector punctuation
func RemoveNonWords(value string) (string, error) {
	return replacePattern("RemoveNonWords", value, patternx.NonWordRun, "")
}

// CollapseWhitespace trims value and turns every inner whitespace run into
// a single space
func CollapseWhitespace(value string) string {
	if value == "" {
		return ""
	}
	trimmed := strings.TrimSpace(value)
	collapsed, err := patternx.ReplaceAll(trimmed, patternx.Whitespace, " ", patternx.None)
	if err != nil {
		return strings.Join(strings.Fields(trimmed), " ")
	}
	return collapsed
}

// ReplaceString replaces every occurrence of search with newValue. With
// IgnoreCase the search folds case; newValue is always inserted verbatim.
func ReplaceString(value, search, newValue string, opts ...Option) (string, error) {
	if err := requireText("ReplaceString", value); err != nil {
		return "", err
	}
	if newOptions(opts).caseSensitive {
		return strings.ReplaceAll(value, search, newValue), nil
	}
	return patternx.ReplaceLiteral(value, search, newValue, patternx.IgnoreCase)
}

// Words splits value on runs of non-word units and drops empty fragments
func Words(value string) ([]string, error) {
	if err := requireText("Words", value); err != nil {
		return nil, err
	}
	return patternx.Fields(value, patternx.NonWords)
}

// Split splits value around the matches of pattern. Trailing empty
// fragments are dropped and a value without any match comes back whole.
func Split(value, pattern string) ([]string, error) {
	if err := requireText("Split", value); err != nil {
		return nil, err
	}
	parts, err := patternx.Split(value, pattern)
	if err != nil {
		return nil, patternFailure("Split", pattern, err)
	}
	return parts, nil
}
