package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

// jitter spreads each delay over ±25% of its nominal value.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// attemptsFor returns how often a request with method may be sent. Creates
// (POST) and partial updates (PATCH) are never replayed.
func (p retryPolicy) attemptsFor(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.attempts
	default:
		return 1
	}
}

// delay returns the wait before retry number n (1-based). A Retry-After
// header on the previous response takes precedence over the exponential
// schedule; both are capped at the configured maximum.
func (p retryPolicy) delay(n int, prev *http.Response) time.Duration {
	if d, ok := retryAfter(prev, time.Now()); ok {
		return min(d, p.ceiling)
	}

	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send performs req, retrying transport errors and retryable statuses. The
// body is buffered once so every attempt replays it.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.policy.attemptsFor(req.Method)
	var (
		last    *http.Response
		lastErr error
	)
	for n := range attempts {
		if n > 0 {
			if err := c.backoff(ctx, req, n, last, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			last, lastErr = nil, err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if n == attempts-1 {
			return resp, lastErr
		}
		// Keep headers for Retry-After but release the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		last = resp
	}
	return nil, lastErr
}

func (c *Client) backoff(ctx context.Context, req *http.Request, n int, prev *http.Response, cause error) error {
	wait := c.policy.delay(n, prev)

	logging.FromContext(ctx).WarnContext(ctx, "retrying backend request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.policy.attemptsFor(req.Method)),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// retryAfter parses a Retry-After header given either in seconds or as an
// HTTP date.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// retryable reports whether a transport error is worth another attempt. A
// caller that gave up is never retried.
func retryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
