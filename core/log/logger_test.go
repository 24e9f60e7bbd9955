// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, derived loggers and formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	coreerror "github.com/msto63/textkit/core/error"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")
	logger.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written:\n%s", out)
	}
	if !strings.Contains(out, "[WRN] shown") || !strings.Contains(out, "[ERR] also shown") {
		t.Errorf("expected warn and error entries:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("nothing happens")
}

func TestDerivedLoggersDoNotShareFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}).WithName("base")
	child := base.WithField("expr", `\s+`)

	base.Info("from base")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if _, ok := first["expr"]; ok {
		t.Error("base logger picked up a field added to a derived logger")
	}
	if second["expr"] != `\s+` {
		t.Errorf("expr = %v", second["expr"])
	}
	if second["logger"] != "base" {
		t.Errorf("logger = %v, want base", second["logger"])
	}
}

func TestJSONFormatterExpandsStructuredErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	err := coreerror.New("bad pattern").WithCode(coreerror.CodeInvalidPattern)
	logger.WarnWithErr("compile failed", err, String("expr", "("))

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["error"] != "bad pattern" {
		t.Errorf("error = %v", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", decoded)
	}
	if details["code"] != "INVALID_PATTERN" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "hello")
	entry.Fields = Fields{"b": 2, "a": 1}
	entry.Error = errors.New("boom")

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "[INF] hello [a=1 b=2] error=\"boom\"\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"off", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldsMerge(t *testing.T) {
	merged := Fields{"a": 1, "b": 2}.Merge(Int("b", 3))
	if merged["a"] != 1 || merged["b"] != 3 {
		t.Errorf("Merge() = %v", merged)
	}
}
