package text_test

import (
	"strings"
	"testing"

	"knowbase/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"japanese", "こんにちは", 5},
		{"mixed", "hello世界", 7},
		{"emoji", "Hello👋", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.want {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"under limit", "hello", 10, "hello"},
		{"at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello..."},
		{"multibyte not split", "こんにちは世界", 5, "こんにちは..."},
		{"zero limit returns unchanged", "hello", 0, "hello"},
		{"negative limit returns unchanged", "hello", -1, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.TruncateRunes(tt.input, tt.limit); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes_LongInput(t *testing.T) {
	long := strings.Repeat("あ", 200)
	got := text.TruncateRunes(long, 100)

	if text.CountRunes(got) != 103 {
		t.Errorf("expected 103 runes (100 + ellipsis), got %d", text.CountRunes(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected truncated text to end with ellipsis")
	}
}
