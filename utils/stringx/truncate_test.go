package stringx

import (
	"errors"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		length   int
		filler   string
		expected string
		wantErr  error
	}{
		{"hard cut", "hello world", 5, "...", "he...", nil},
		{"no filler", "hello world", 5, "", "hello", nil},
		{"zero", "hello world", 0, "...", "", nil},
		{"exact length", "hello world", 11, "...", "hello world", nil},
		{"longer than value", "hello", 20, "...", "hello", nil},
		{"unicode", "Hello, 世界! This is long", 10, "...", "Hello, ...", nil},
		{"filler fills all", "hello world", 3, "...", "...", nil},
		{"filler too long", "hello world", 2, "...", "", ErrOutOfRange},
		{"negative", "hello", -1, "", "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Truncate(tt.value, tt.length, tt.filler)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Truncate() error = %v; want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("Truncate() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestSafeTruncate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		length   int
		filler   string
		expected string
		wantErr  error
	}{
		{"scenario", "The quick brown fox", 10, "...", "The...", nil},
		{"two words", "The quick brown fox", 15, "...", "The quick...", nil},
		{"no filler", "one two three", 7, "", "one two", nil},
		{"first word too long", "hello world", 3, "...", "...", nil},
		{"zero", "hello world", 0, "...", "", nil},
		{"fits", "hello world", 11, "...", "hello world", nil},
		{"punctuation dropped", "Hi, there you", 11, "", "Hi there", nil},
		{"unicode", "über größe maß", 11, "…", "über größe…", nil},
		{"filler too long", "hello world", 2, "...", "", ErrOutOfRange},
		{"negative", "hello", -2, "", "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeTruncate(tt.value, tt.length, tt.filler)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SafeTruncate() error = %v; want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("SafeTruncate() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestSafeTruncateNeverExceedsOrSplits(t *testing.T) {
	values := []string{
		"The quick brown fox jumps over the lazy dog",
		"Grüße aus München, schöne Stadt",
		"a bb ccc dddd eeeee",
		"supercalifragilistic word",
	}
	fillers := []string{"", ".", "...", "…"}

	for _, value := range values {
		source := make(map[string]bool)
		for _, w := range Must(Words(value)) {
			source[w] = true
		}

		for _, filler := range fillers {
			for length := runeLen(filler); length < runeLen(value); length++ {
				got, err := SafeTruncate(value, length, filler)
				if err != nil {
					t.Fatalf("SafeTruncate(%q, %d, %q) error = %v", value, length, filler, err)
				}
				if runeLen(got) > length {
					t.Errorf("SafeTruncate(%q, %d, %q) = %q exceeds length", value, length, filler, got)
				}
				body := strings.TrimSuffix(got, filler)
				for _, w := range strings.Fields(body) {
					if !source[w] {
						t.Errorf("SafeTruncate(%q, %d, %q) = %q contains partial word %q", value, length, filler, got, w)
					}
				}
			}
		}
	}
}
