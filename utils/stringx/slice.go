// File: slice.go
// Title: Slicing Operations
// Description: Rune-indexed extraction of prefixes, suffixes and ranges.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation

package stringx

// FirstChars returns the first n units of value. n must lie in
// [0, length].
func FirstChars(value string, n int) (string, error) {
	if err := requireText("FirstChars", value); err != nil {
		return "", err
	}
	length := runeLen(value)
	if n < 0 || n > length {
		return "", outOfRange("FirstChars", "n", n, 0, length)
	}
	return value[:byteOffset(value, n)], nil
}

// LastChars returns the last n units of value. An n beyond the length
// returns the whole value; a negative n fails.
func LastChars(value string, n int) (string, error) {
	if err := requireText("LastChars", value); err != nil {
		return "", err
	}
	length := runeLen(value)
	if n < 0 {
		return "", outOfRange("LastChars", "n", n, 0, length)
	}
	if n > length {
		n = length
	}
	return value[byteOffset(value, length-n):], nil
}

// HeadChar returns the first unit of value
func HeadChar(value string) (string, error) {
	if err := requireText("HeadChar", value); err != nil {
		return "", err
	}
	return FirstChars(value, 1)
}

// Tail returns value without its first unit
func Tail(value string) (string, error) {
	if err := requireText("Tail", value); err != nil {
		return "", err
	}
	return LastChars(value, runeLen(value)-1)
}

// Slice returns the units in [begin, end). It fails unless
// 0 <= begin <= end <= length.
func Slice(value string, begin, end int) (string, error) {
	if err := requireText("Slice", value); err != nil {
		return "", err
	}
	length := runeLen(value)
	if begin < 0 || begin > length {
		return "", outOfRange("Slice", "begin", begin, 0, length)
	}
	if end < begin || end > length {
		return "", outOfRange("Slice", "end", end, begin, length)
	}
	return value[byteOffset(value, begin):byteOffset(value, end)], nil
}
