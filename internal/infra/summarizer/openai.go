package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"knowbase/internal/resilience/circuitbreaker"
	"knowbase/internal/resilience/retry"
	"knowbase/internal/utils/text"
)

// OpenAIConfig holds configuration parameters for the OpenAI summarizer.
type OpenAIConfig struct {
	// CharacterLimit is the maximum number of characters asked of the
	// model. Loaded from SUMMARIZER_CHAR_LIMIT, range 100-5000, default 900.
	CharacterLimit int

	// Model is the OpenAI API model identifier to use for summarization.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// Validate checks all configuration fields.
func (c *OpenAIConfig) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadOpenAIConfig loads configuration from environment variables.
func LoadOpenAIConfig() (*OpenAIConfig, error) {
	config := &OpenAIConfig{
		CharacterLimit: charLimitFromEnv(),
		Model:          openai.GPT3Dot5Turbo,
		MaxTokens:      1024,
		Timeout:        defaultAPITimeout,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OpenAI configuration: %w", err)
	}
	return config, nil
}

// OpenAI implements summarization using OpenAI's chat API with circuit
// breaker and retry logic.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          *OpenAIConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
func NewOpenAI(apiKey string, config *OpenAIConfig) *OpenAI {
	slog.Info("initialized openai summarizer",
		slog.Int("character_limit", config.CharacterLimit),
		slog.String("model", config.Model))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a summary of the given text using OpenAI.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, text)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

func (o *OpenAI) buildPrompt(text string) string {
	return fmt.Sprintf("Summarize the following text in at most %d characters. Be concise and keep the key points:\n%s",
		o.config.CharacterLimit, text)
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, inputText string) (string, error) {
	// Truncate oversized input to stay well under the model's token limit.
	const maxChars = 10000
	truncatedText := text.TruncateRunes(inputText, maxChars)
	if truncatedText != inputText {
		slog.Warn("text truncated for openai api",
			slog.Int("original_length", text.CountRunes(inputText)))
	}

	prompt := o.buildPrompt(truncatedText)

	slog.InfoContext(ctx, "starting summarization",
		slog.Int("input_length", text.CountRunes(truncatedText)),
		slog.Int("character_limit", o.config.CharacterLimit))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    "system",
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= o.config.CharacterLimit

	slog.InfoContext(ctx, "summarization completed",
		slog.Int("summary_length", summaryLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordLength(summaryLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		o.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
