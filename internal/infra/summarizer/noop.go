package summarizer

import (
	"context"
)

// NoOp is a summarizer that returns the original text without calling any
// external API. Useful for development and tests.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the original text truncated to the first 500 characters.
func (n *NoOp) Summarize(_ context.Context, text string) (string, error) {
	const maxLength = 500
	if len(text) <= maxLength {
		return text, nil
	}
	return text[:maxLength] + "...", nil
}
