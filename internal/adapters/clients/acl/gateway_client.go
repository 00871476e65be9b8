package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/realtime-config/internal/domain"
	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
	"github.com/jsamuelsen11/realtime-config/internal/platform/httpclient"
	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

var (
	_ ports.ConfigGateway = (*GatewayClient)(nil)
	_ ports.HealthChecker = (*GatewayClient)(nil)
)

// GatewayClient is the outbound adapter for the remote config gateway.
// Circuit breaking, retries, rate limiting and tracing come from the
// underlying httpclient.Client.
type GatewayClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewGatewayClient creates a GatewayClient whose base URL is the gateway root.
func NewGatewayClient(client *httpclient.Client, logger *slog.Logger) *GatewayClient {
	return &GatewayClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// FetchConfigs returns every record the gateway holds for the account, via
// GET /support/configs/{accountId}. An empty array is an account with no
// configs; a null body is a failed fetch wrapping domain.ErrUnavailable.
func (c *GatewayClient) FetchConfigs(ctx context.Context, accountID int) ([]realtime.Record, error) {
	var dtos *[]configDTO
	path := []string{"support", "configs", strconv.Itoa(accountID)}
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	if dtos == nil {
		return nil, fmt.Errorf("%w: gateway returned no configs for account %d", domain.ErrUnavailable, accountID)
	}
	return toRecords(*dtos), nil
}

// SetDefault reports a fallback record via PUT /support/configs/default.
// The response body is ignored.
func (c *GatewayClient) SetDefault(ctx context.Context, record realtime.Record) error {
	path := []string{"support", "configs", "default"}
	return c.req.Do(ctx, http.MethodPut, path, toDefaultConfigDTO(record), nil)
}

// Name returns the health registry name, shared with the client's breaker.
func (c *GatewayClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the gateway breaker state. It makes no network call.
func (c *GatewayClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
