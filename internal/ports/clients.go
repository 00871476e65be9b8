package ports

import (
	"context"

	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
)

// ConfigGateway defines the client port for the remote config gateway that
// owns the authoritative configuration records. Implemented by the ACL
// adapter; called by the application layer.
type ConfigGateway interface {
	// FetchConfigs returns every config record stored for the account.
	// An account without records yields an empty slice and a nil error.
	FetchConfigs(ctx context.Context, accountID int) ([]realtime.Record, error)

	// SetDefault reports a default value for a key the gateway did not
	// return, so the authority can persist it.
	SetDefault(ctx context.Context, record realtime.Record) error
}
