// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides pure text operations indexed by
//              rune: search, trimming, padding, truncation, case
//              predicates, insertion, replacement and reversal.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-08-11 v0.3.0: Rune-indexed operation set with validated inputs

// Package stringx provides pure, stateless text operations.
//
// # Units
//
// A text value is a Go string. Every length, index, offset and position is
// counted in runes, not bytes, so "größe" has length 5 and CharAtIndex
// returns "ö" for index 2. Grapheme clusters are not recognised: a letter
// followed by a combining accent is two units.
//
// # Validation
//
// Most operations require a non-empty value and fail with an error matching
// ErrInvalidArgument otherwise. Indices and counts outside their bounds fail
// with an error matching ErrOutOfRange:
//
//	head, err := stringx.FirstChars(s, 3)
//	if errors.Is(err, stringx.ErrOutOfRange) {
//		// s is shorter than 3 units
//	}
//
// A few operations are lenient on purpose and never fail: CharAtIndex
// returns "" for an index outside the value, InsertStringAtIndex returns the
// value unchanged for an index past its end, LastChars clamps a count
// larger than the value, and the concatenation, padding and
// CollapseWhitespace helpers accept any input.
//
// The errors are *error.Error values from the textkit core packages. They
// carry the operation, the offending argument and a message key that
// core/errors.Localize renders in English or German.
//
// # Options
//
// Comparisons are case-sensitive unless IgnoreCase (or CaseSensitive(false))
// is passed, in which case both operands are lower-cased rune by rune before
// comparing. IndexOf and LastIndexOf take WithOffset, EndsWith takes
// WithPosition:
//
//	stringx.Contains("Hello World", "world", stringx.IgnoreCase())     // true
//	stringx.IndexOf("hello world", "o", stringx.WithOffset(5))          // 7
//	stringx.EndsWith("hello world", "hello", stringx.WithPosition(5))   // true
//
// # Counting
//
// CountSubstr counts overlapping occurrences: after a match the search
// resumes one unit past where the match started, so "aa" occurs three times
// in "aaaa".
//
// # Truncation
//
// Truncate cuts hard and may split a word. SafeTruncate keeps whole words
// only, joined by single spaces, and never returns more than the requested
// number of units:
//
//	stringx.Truncate("The quick brown fox", 10, "...")     // "The qui..."
//	stringx.SafeTruncate("The quick brown fox", 10, "...") // "The..."
//
// # Patterns
//
// Whitespace trimming, RemoveNonWords, Words, Split and case-insensitive
// ReplaceString go through the patternx package. Whitespace and word
// classes are Unicode aware there: a word unit is a letter, combining mark,
// decimal digit or connector punctuation in any script.
//
// All operations are safe for concurrent use.
package stringx
