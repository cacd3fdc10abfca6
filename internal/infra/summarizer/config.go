package summarizer

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// minCharLimit is the minimum allowed character limit for summaries.
	minCharLimit = 100

	// maxCharLimit is the maximum allowed character limit for summaries.
	maxCharLimit = 5000

	defaultCharLimit = 900

	// defaultAPITimeout bounds a single summarization API call.
	defaultAPITimeout = 60 * time.Second
)

// ValidateCharacterLimit validates that the character limit is within the
// valid range (100-5000).
func ValidateCharacterLimit(limit int) error {
	if limit < minCharLimit {
		return fmt.Errorf("character limit %d is below minimum %d", limit, minCharLimit)
	}
	if limit > maxCharLimit {
		return fmt.Errorf("character limit %d exceeds maximum %d", limit, maxCharLimit)
	}
	return nil
}

// charLimitFromEnv reads SUMMARIZER_CHAR_LIMIT. Invalid or out-of-range
// values fall back to the default with a warning rather than failing startup.
func charLimitFromEnv() int {
	envLimit := os.Getenv("SUMMARIZER_CHAR_LIMIT")
	if envLimit == "" {
		return defaultCharLimit
	}

	parsed, err := strconv.Atoi(envLimit)
	if err != nil {
		slog.Warn("invalid SUMMARIZER_CHAR_LIMIT format, using default",
			slog.String("value", envLimit),
			slog.Int("default", defaultCharLimit))
		return defaultCharLimit
	}
	if err := ValidateCharacterLimit(parsed); err != nil {
		slog.Warn("SUMMARIZER_CHAR_LIMIT out of valid range, using default",
			slog.Int("value", parsed),
			slog.Int("default", defaultCharLimit))
		return defaultCharLimit
	}
	return parsed
}
