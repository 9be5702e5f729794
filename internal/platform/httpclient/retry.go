package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/platform/config"
	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
)

// jitter spreads each delay by up to ±25%.
const jitter = 0.25

// policy is the retry schedule: attempts in total, and an exponential delay
// between them starting at initial and capped at ceiling.
type policy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay returns the jittered wait before retry n (n >= 1).
func (p policy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send performs up to p.attempts round trips. Bodies are replayed through
// req.GetBody; a request with a body but no GetBody gets a single attempt.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retry.attempts
	if attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry.max_attempts must be >= 1, got %d", attempts)
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		attempts = 1
	}

	var (
		lastErr error
		wait    time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if wait <= 0 {
				wait = c.retry.delay(n)
			}
			c.logRetry(ctx, req, n, wait, lastErr)
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, wait = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if n == attempts-1 {
			return resp, lastErr
		}
		wait = retryAfter(resp.Header.Get("Retry-After"), c.retry.ceiling)
		discard(resp)
	}
	return nil, lastErr
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, n int, wait time.Duration, lastErr error) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// discard drains and closes a response that will not be returned so the
// connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter parses a Retry-After value in seconds or as an HTTP date,
// capped at limit. Absent, past, or malformed values yield 0.
func retryAfter(value string, limit time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(value); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		d = time.Until(at)
	}

	switch {
	case d <= 0:
		return 0
	case limit > 0 && d > limit:
		return limit
	default:
		return d
	}
}

// retryableErr is false only for cancellation and deadlines; every transport
// failure is worth another attempt.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports 5xx and 429.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
