// Package summary implements the article summarization gateway: a
// best-effort call to an external AI provider with a guaranteed local
// fallback, so a provider outage never surfaces as an error to the caller.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"knowbase/internal/domain/entity"
	"knowbase/internal/observability/metrics"
)

// FallbackMarker prefixes every locally constructed summary so callers and
// tests can tell the degraded path from genuine provider output.
const FallbackMarker = "[fallback summary]"

// DefaultProviderTimeout bounds the external call; on expiry the request
// degrades to the local fallback like any other provider failure.
const DefaultProviderTimeout = 30 * time.Second

// excerptLen is the number of leading body characters quoted in a fallback
// summary.
const excerptLen = 100

// ErrEmptyBody is the gateway's only hard failure: summarization without
// text to summarize is a caller error, not a degradation case.
var ErrEmptyBody = fmt.Errorf("%w: article body is required", entity.ErrInvalidInput)

// Source identifies which branch produced a summary.
type Source string

const (
	// SourceProvider marks text returned by the external AI provider.
	SourceProvider Source = "provider"
	// SourceFallback marks deterministically constructed local text.
	SourceFallback Source = "fallback"
)

// Result is the explicit two-branch outcome of a summarize call: success
// with provider text or success with fallback text, never an upstream error.
type Result struct {
	Text   string
	Source Source
}

// Provider is an interface for AI-powered text summarization.
type Provider interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service is the summarization gateway.
type Service struct {
	Provider Provider
	Timeout  time.Duration
	Logger   *slog.Logger
}

// NewService creates a summarization gateway around the given provider.
func NewService(provider Provider, timeout time.Duration, logger *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Provider: provider, Timeout: timeout, Logger: logger}
}

// Summarize produces a summary for the article body. The provider call is
// bounded by the configured timeout; any provider failure (auth, quota,
// timeout, network, empty response) resolves to the local fallback.
func (s *Service) Summarize(ctx context.Context, articleID, body string) (Result, error) {
	if body == "" {
		return Result{}, ErrEmptyBody
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	text, err := s.Provider.Summarize(ctx, body)
	if err == nil && text != "" {
		metrics.SummariesTotal.WithLabelValues(string(SourceProvider)).Inc()
		return Result{Text: text, Source: SourceProvider}, nil
	}

	if err == nil {
		err = errors.New("provider returned empty summary")
	}
	s.Logger.Warn("summarization provider failed, using local fallback",
		slog.String("article_id", articleID),
		slog.String("error", err.Error()))

	metrics.SummariesTotal.WithLabelValues(string(SourceFallback)).Inc()
	return Result{Text: Fallback(articleID, body), Source: SourceFallback}, nil
}

// Fallback builds the deterministic local summary: the marker, the article
// id, a fixed explanatory sentence, and a truncated prefix of the body.
func Fallback(articleID, body string) string {
	excerpt := body
	if len(excerpt) > excerptLen {
		excerpt = excerpt[:excerptLen]
	}
	return fmt.Sprintf(
		"%s AI summarization for article %q is temporarily unavailable; showing an excerpt of the original content instead. %s...",
		FallbackMarker, articleID, excerpt)
}
