package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/realtime-config/internal/platform/httpclient"
)

// Requester runs one JSON exchange with the gateway: it builds the request,
// sends it through httpclient.Client, maps non-2xx responses to domain
// errors, and decodes the body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to the endpoint built from path segments. A non-nil
// reqBody is sent as JSON; a non-nil respBody receives the decoded response.
// Any 2xx status is success. Other statuses go through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method string, path []string, reqBody, respBody any) error {
	endpoint, err := r.client.Endpoint(path...)
	if err != nil {
		return err
	}

	req, err := newRequest(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}

	return r.execute(req, respBody)
}

func newRequest(ctx context.Context, method, endpoint string, reqBody any) (*http.Request, error) {
	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, endpoint, err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still hand back the last
		// response; report what the gateway said rather than the retry error.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "gateway request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if !isSuccess(resp.StatusCode) {
		r.logger.ErrorContext(ctx, "unexpected gateway status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
