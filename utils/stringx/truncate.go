// File: truncate.go
// Title: Truncation
// Description: Hard and word-safe truncation with a filler suffix.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: Truncate with ellipsis
// - 2025-08-11 v0.2.0: Validated inputs, SafeTruncate

package stringx

import "strings"

// Truncate shortens value to length units. The result is the first
// length-len(filler) units followed by filler, so a word may be cut.
// A length of 0 gives "" and a length of at least len(value) returns value.
func Truncate(value string, length int, filler string) (string, error) {
	fillerLen, done, result, err := truncateBounds("Truncate", value, length, filler)
	if done || err != nil {
		return result, err
	}
	return value[:byteOffset(value, length-fillerLen)] + filler, nil
}

// SafeTruncate shortens value to at most length units without cutting a
// word. Whole words are joined by single spaces for as long as they fit
// together with filler, which is then appended. Punctuation between words
// is not kept.
func SafeTruncate(value string, length int, filler string) (string, error) {
	fillerLen, done, result, err := truncateBounds("SafeTruncate", value, length, filler)
	if done || err != nil {
		return result, err
	}

	words, err := Words(value)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	used, included := 0, 0
	for _, w := range words {
		size := runeLen(w)
		// included separators: one in front of every word but the first
		if used+size+included+fillerLen > length {
			break
		}
		if included > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		used += size
		included++
	}
	b.WriteString(filler)
	return b.String(), nil
}

// truncateBounds handles the cases shared by both truncations. When done
// is true, result and err are final.
func truncateBounds(operation, value string, length int, filler string) (int, bool, string, error) {
	if err := requireText(operation, value); err != nil {
		return 0, true, "", err
	}
	if length < 0 {
		return 0, true, "", outOfRange(operation, "length", length, 0, unbounded)
	}
	if length == 0 {
		return 0, true, "", nil
	}
	if length >= runeLen(value) {
		return 0, true, value, nil
	}
	fillerLen := runeLen(filler)
	if fillerLen > length {
		return 0, true, "", outOfRange(operation, "length", length, fillerLen, unbounded)
	}
	return fillerLen, false, "", nil
}
