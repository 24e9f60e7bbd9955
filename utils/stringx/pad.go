// File: pad.go
// Title: Padding
// Description: Left, right and centred padding to a width in runes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft, PadRight and Center with ASCII fast path
// - 2025-08-11 v0.2.0: Single rune-counting path

package stringx

import "strings"

// PadLeft pads value on the left with pad up to width units.
// If value is already at least width long, it is returned unchanged.
func PadLeft(value string, width int, pad rune) string {
	return padded(value, pad, width-runeLen(value), 0)
}

// PadRight pads value on the right with pad up to width units.
// If value is already at least width long, it is returned unchanged.
func PadRight(value string, width int, pad rune) string {
	return padded(value, pad, 0, width-runeLen(value))
}

// Center pads value on both sides with pad up to width units. An odd
// amount of padding puts the extra unit on the right.
func Center(value string, width int, pad rune) string {
	total := width - runeLen(value)
	return padded(value, pad, total/2, total-total/2)
}

func padded(value string, pad rune, left, right int) string {
	if left <= 0 && right <= 0 {
		return value
	}
	left, right = max(left, 0), max(right, 0)

	var b strings.Builder
	b.Grow(len(value) + (left+right)*4)
	for i := 0; i < left; i++ {
		b.WriteRune(pad)
	}
	b.WriteString(value)
	for i := 0; i < right; i++ {
		b.WriteRune(pad)
	}
	return b.String()
}
