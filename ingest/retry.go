package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/akulov/progadvisor"
)

// DefaultRetryDelays returns the backoff delays for main-page fetch
// retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with backoff. Linked documents are not
// retried (their failures are degraded, not fatal); this is only for the
// main program page, where a transient failure would otherwise abort the
// whole run. A nil delays slice uses DefaultRetryDelays.
func fetchWithRetry(ctx context.Context, fetcher progadvisor.Fetcher, url string, delays []time.Duration, logger *slog.Logger) ([]byte, error) {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
