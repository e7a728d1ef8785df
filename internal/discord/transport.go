package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// maxRateLimitRetries bounds how often one call is retried after a 429
const maxRateLimitRetries = 5

// loggingTransport wraps an http.RoundTripper to log every REST call
type loggingTransport struct {
	transport http.RoundTripper
	logger    *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		t.logger.Debug("Discord request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return nil, err
	}
	t.logger.Debug("Discord request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return resp, nil
}

// newLoggingTransport creates a transport that logs requests at debug level
func newLoggingTransport(transport http.RoundTripper, logger *zap.Logger) *loggingTransport {
	return &loggingTransport{
		transport: transport,
		logger:    logger,
	}
}

// withRetry calls fn and, when Discord answers with a rate limit, waits for
// the advertised duration and tries again.
func withRetry(ctx context.Context, logger *zap.Logger, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		var rateLimitErr *discordgo.RateLimitError
		if err == nil || !errors.As(err, &rateLimitErr) || attempt >= maxRateLimitRetries {
			return err
		}

		wait := rateLimitErr.RetryAfter
		logger.Warn("Rate limited by Discord, waiting",
			zap.String("url", rateLimitErr.URL),
			zap.Duration("retry_after", wait),
			zap.Int("attempt", attempt+1))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}
