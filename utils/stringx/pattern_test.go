package stringx

import (
	"errors"
	"reflect"
	"testing"

	coreerror "github.com/msto63/textkit/core/error"
)

func TestTrimAndCleanup(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) (string, error)
		value    string
		expected string
	}{
		{"LeftTrim", LeftTrim, "  \t hi there ", "hi there "},
		{"LeftTrim nothing to do", LeftTrim, "hi ", "hi "},
		{"LeftTrim only space", LeftTrim, "   ", ""},
		{"RightTrim", RightTrim, " hi there \n\t", " hi there"},
		{"RightTrim keeps inner newline", RightTrim, "a\nb ", "a\nb"},
		{"RemoveSpaces", RemoveSpaces, " a b\tc\n", "abc"},
		{"RemoveSpaces non-breaking", RemoveSpaces, "a b", "ab"},
		{"RemoveNonWords", RemoveNonWords, "héllo, wörld_1!", "héllowörld_1"},
		{"RemoveNonWords keeps marks", RemoveNonWords, "e\u0301!", "e\u0301"},
		{"LeftTrim keeps invalid bytes", LeftTrim, " a\xffb", "a\xffb"},
		{"RightTrim keeps invalid bytes", RightTrim, "\xfe\xff \n", "\xfe\xff"},
		{"RemoveSpaces keeps invalid bytes", RemoveSpaces, "a \xff b", "a\xffb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.value)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"  a \t\n b   c  ", "a b c"},
		{"a b", "a b"},
		{"   ", ""},
		{"", ""},
		{"x\r\ny", "x y"},
		{" a\xff  b ", "a\xff b"},
		{"\u00a0a\u2003b\t", "a b"},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.value); got != tt.expected {
			t.Errorf("CollapseWhitespace(%q) = %q; want %q", tt.value, got, tt.expected)
		}
	}
}

func TestReplaceString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		search   string
		newValue string
		opts     []Option
		expected string
	}{
		{"ignore case", "Hello World", "world", "Earth", []Option{IgnoreCase()}, "Hello Earth"},
		{"case sensitive miss", "Hello World", "world", "Earth", nil, "Hello World"},
		{"case sensitive hit", "Hello World", "World", "Earth", nil, "Hello Earth"},
		{"all occurrences", "a-b-c", "-", "+", nil, "a+b+c"},
		{"all occurrences ignore case", "xAxax", "A", "_", []Option{IgnoreCase()}, "x_x_x"},
		{"metacharacters are literal", "1+1=2", "1+1", "two", []Option{IgnoreCase()}, "two=2"},
		{"no back-references", "A.B", ".", "$1", []Option{IgnoreCase()}, "A$1B"},
		{"no back-references sensitive", "A.B", ".", "$0", nil, "A$0B"},
		{"unicode fold", "STRASSE Straße", "straße", "x", []Option{IgnoreCase()}, "STRASSE x"},
		{"invalid bytes kept", "A\xffa", "a", "_", []Option{IgnoreCase()}, "_\xff_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceString(tt.value, tt.search, tt.newValue, tt.opts...)
			if err != nil {
				t.Fatalf("ReplaceString() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ReplaceString() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		value    string
		expected []string
	}{
		{"Hello, wörld! foo_bar 42", []string{"Hello", "wörld", "foo_bar", "42"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"one", []string{"one"}},
		{"!?", []string{}},
		{"日本 語", []string{"日本", "語"}},
	}

	for _, tt := range tests {
		got, err := Words(tt.value)
		if err != nil {
			t.Fatalf("Words(%q) error = %v", tt.value, err)
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Words(%q) = %q; want %q", tt.value, got, tt.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		pattern  string
		expected []string
	}{
		{"comma", "a,b,c", ",", []string{"a", "b", "c"}},
		{"trailing empties dropped", "a,b,,c,,", ",", []string{"a", "b", "", "c"}},
		{"leading empty kept", ",a", ",", []string{"", "a"}},
		{"no match", "abc", ";", []string{"abc"}},
		{"whitespace runs", "a  b\tc", `\s+`, []string{"a", "b", "c"}},
		{"every unit", "äbc", "", []string{"ä", "b", "c"}},
		{"invalid bytes kept", "a\xff,b", ",", []string{"a\xff", "b"}},
		{"every unit with invalid byte", "a\xffb", "", []string{"a", "\xff", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.value, tt.pattern)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q, %q) = %q; want %q", tt.value, tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestSplitInvalidPattern(t *testing.T) {
	_, err := Split("abc", "[")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Split() error = %v; want ErrInvalidArgument", err)
	}
	if !coreerror.HasCode(err, coreerror.CodeInvalidPattern) {
		t.Errorf("Split() error does not carry the engine error: %v", err)
	}
}
