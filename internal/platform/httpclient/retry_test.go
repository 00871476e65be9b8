package httpclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/realtime-config/internal/platform/config"
)

// scriptedGateway answers successive requests with the given statuses,
// repeating the last one, and records each request body.
type scriptedGateway struct {
	mu       sync.Mutex
	statuses []int
	bodies   []string
}

func (g *scriptedGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	g.mu.Lock()
	n := len(g.bodies)
	g.bodies = append(g.bodies, string(body))
	status := g.statuses[min(n, len(g.statuses)-1)]
	g.mu.Unlock()

	w.WriteHeader(status)
}

func (g *scriptedGateway) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.bodies...)
}

func newRetryClient(t *testing.T, h http.Handler, initial time.Duration) *Client {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return New(&config.ClientConfig{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: initial,
			MaxInterval:     initial,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 100, Timeout: time.Minute, HalfOpenLimit: 1},
	}, "config-gateway", nil, slog.New(slog.DiscardHandler))
}

func TestDo_RetriesGatewayStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statuses   []int
		wantCalls  int
		wantStatus int
		wantErr    bool
	}{
		{name: "503 then ok", statuses: []int{503, 200}, wantCalls: 2, wantStatus: 200},
		{name: "429 then ok", statuses: []int{429, 200}, wantCalls: 2, wantStatus: 200},
		{name: "unknown account is final", statuses: []int{404}, wantCalls: 1, wantStatus: 404},
		{name: "rejected default is final", statuses: []int{400}, wantCalls: 1, wantStatus: 400},
		{name: "gateway stays down", statuses: []int{502}, wantCalls: 3, wantStatus: 502, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := &scriptedGateway{statuses: tt.statuses}
			c := newRetryClient(t, gw, time.Millisecond)

			endpoint, _ := c.Endpoint("support", "configs", "1")
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, endpoint, http.NoBody)
			resp, err := c.Do(context.Background(), req)
			if resp != nil {
				defer resp.Body.Close()
			}

			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil || resp.StatusCode != tt.wantStatus {
				t.Fatalf("Do() resp = %v, want status %d", resp, tt.wantStatus)
			}
			if got := len(gw.calls()); got != tt.wantCalls {
				t.Errorf("gateway calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_ReplaysDefaultBodyOnRetry(t *testing.T) {
	t.Parallel()

	gw := &scriptedGateway{statuses: []int{500, 204}}
	c := newRetryClient(t, gw, time.Millisecond)

	body := `{"accountId":9,"key":"timeout.ms","value":"1500","type":1}`
	endpoint, _ := c.Endpoint("support", "configs", "default")
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPut, endpoint, strings.NewReader(body))

	resp, err := c.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	calls := gw.calls()
	if len(calls) != 2 {
		t.Fatalf("gateway calls = %d, want 2", len(calls))
	}
	for i, got := range calls {
		if got != body {
			t.Errorf("attempt %d body = %q, want %q", i+1, got, body)
		}
	}
}

func TestDo_CancelDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newRetryClient(t, gw, time.Minute)

	endpoint, _ := c.Endpoint("support", "configs", "1")
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)

	start := time.Now()
	_, err := c.Do(ctx, req)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Do() took %v, want it to stop at cancellation", elapsed)
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 10, base: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
		hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
		for range 200 {
			if d := backoff(tt.attempt, cfg); d < lo || d > hi {
				t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
			}
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "other transport error", err: errors.New("unexpected EOF"), want: true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("%s: isRetryable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
