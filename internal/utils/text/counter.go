// Package text provides rune-aware helpers for text handed to AI providers.
// Counting and truncating by runes instead of bytes keeps multi-byte input
// (CJK, emoji) from being miscounted or cut mid-character.
package text

// CountRunes returns the number of Unicode code points in s.
func CountRunes(s string) int {
	return len([]rune(s))
}

// TruncateRunes returns s cut to at most limit runes, with "..." appended
// when anything was removed. A non-positive limit returns s unchanged.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
