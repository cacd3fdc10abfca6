package entity

import "strings"

// SplitTags parses a comma-separated tag string into a normalized slice.
// Entries are trimmed of surrounding whitespace and empty entries are
// discarded. Order is preserved for display; it carries no matching meaning.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
