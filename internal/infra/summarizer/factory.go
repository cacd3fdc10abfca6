package summarizer

import (
	"fmt"
	"log/slog"
	"os"

	"knowbase/internal/usecase/summary"
)

// FromEnv builds a provider from environment variables.
//
//	SUMMARIZER_PROVIDER: claude | openai | noop (default: noop)
//	ANTHROPIC_API_KEY:   required for claude
//	OPENAI_API_KEY:      required for openai
func FromEnv() (summary.Provider, error) {
	provider := os.Getenv("SUMMARIZER_PROVIDER")

	switch provider {
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when SUMMARIZER_PROVIDER=claude")
		}
		return NewClaude(apiKey), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when SUMMARIZER_PROVIDER=openai")
		}
		cfg, err := LoadOpenAIConfig()
		if err != nil {
			return nil, err
		}
		return NewOpenAI(apiKey, cfg), nil

	case "", "noop":
		slog.Info("no summarization provider configured, using noop")
		return NewNoOp(), nil

	default:
		return nil, fmt.Errorf("unknown SUMMARIZER_PROVIDER %q", provider)
	}
}
