package stringx

import (
	"errors"
	"testing"
)

func TestFirstAndLastChars(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string, int) (string, error)
		value    string
		n        int
		expected string
		wantErr  error
	}{
		{"first two", FirstChars, "héllo", 2, "hé", nil},
		{"first none", FirstChars, "héllo", 0, "", nil},
		{"first all", FirstChars, "héllo", 5, "héllo", nil},
		{"first too many", FirstChars, "héllo", 6, "", ErrOutOfRange},
		{"first negative", FirstChars, "héllo", -1, "", ErrOutOfRange},
		{"last two", LastChars, "héllo", 2, "lo", nil},
		{"last none", LastChars, "héllo", 0, "", nil},
		{"last clamps", LastChars, "héllo", 10, "héllo", nil},
		{"last negative", LastChars, "héllo", -1, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.value, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v; want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("got %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestHeadCharAndTail(t *testing.T) {
	tests := []struct {
		value string
		head  string
		tail  string
	}{
		{"héllo", "h", "éllo"},
		{"ä", "ä", ""},
		{"日本語", "日", "本語"},
	}

	for _, tt := range tests {
		head, err := HeadChar(tt.value)
		if err != nil || head != tt.head {
			t.Errorf("HeadChar(%q) = %q, %v; want %q", tt.value, head, err, tt.head)
		}
		tail, err := Tail(tt.value)
		if err != nil || tail != tt.tail {
			t.Errorf("Tail(%q) = %q, %v; want %q", tt.value, tail, err, tt.tail)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name     string
		begin    int
		end      int
		expected string
		wantErr  error
	}{
		{"middle", 1, 3, "él", nil},
		{"whole", 0, 5, "héllo", nil},
		{"empty range", 5, 5, "", nil},
		{"reversed", 3, 1, "", ErrOutOfRange},
		{"end past length", 0, 6, "", ErrOutOfRange},
		{"negative begin", -1, 2, "", ErrOutOfRange},
		{"begin past length", 6, 6, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slice("héllo", tt.begin, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Slice() error = %v; want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("Slice() = %q; want %q", got, tt.expected)
			}
		})
	}
}
