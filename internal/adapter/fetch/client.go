// Package fetch provides the retrying HTTP client used to pull upstream
// documents. Transport-level retries live here; the pipeline itself never
// retries a failed source.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client fetches documents over HTTP with bounded retries.
type Client struct {
	http   *retryablehttp.Client
	logger *slog.Logger
}

// New creates a fetch client. retryMax is the number of retries after the
// first attempt; timeout bounds each individual attempt.
func New(timeout time.Duration, retryMax int, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = leveledLogger{logger}
	return &Client{http: rc, logger: logger}
}

// Get fetches url and returns the response body. A non-200 status that
// persists after retries is an error.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// leveledLogger bridges retryablehttp's logging interface to slog.
type leveledLogger struct {
	logger *slog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}
