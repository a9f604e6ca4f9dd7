package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("GenerateID() returned empty string")
	}
	if a == b {
		t.Errorf("GenerateID() returned duplicate IDs: %s", a)
	}
	if len(a) != 36 {
		t.Errorf("GenerateID() length = %d, want 36", len(a))
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if string(out) != `{"key":"value"}` {
			t.Errorf("MarshalJSON() = %s", out)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if !strings.Contains(string(out), "\n") {
			t.Errorf("MarshalJSON() = %s, want indented output", out)
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "value") {
		t.Errorf("log output = %q", out)
	}
}

func TestVisibilityString(t *testing.T) {
	if got := VisibilityString(true); got != "public" {
		t.Errorf("VisibilityString(true) = %q", got)
	}
	if got := VisibilityString(false); got != "private" {
		t.Errorf("VisibilityString(false) = %q", got)
	}
}

func TestFormatScore(t *testing.T) {
	tc := []struct {
		score float64
		want  string
	}{
		{80.0, "80"},
		{79.6, "80"},
		{0.0, "0"},
		{-3.2, "-3"},
	}
	for _, tt := range tc {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
