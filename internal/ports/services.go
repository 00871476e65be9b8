package ports

import "context"

// ConfigService defines the service port for typed configuration lookups.
// Implemented by the application layer; called by inbound adapters and by
// any in-process code that needs a config value.
//
// None of the methods fail: every internal error is logged and the supplied
// default is returned instead.
type ConfigService interface {
	GetString(ctx context.Context, accountID int, key, defaultValue string) string
	GetInt(ctx context.Context, accountID int, key string, defaultValue int) int
	GetDouble(ctx context.Context, accountID int, key string, defaultValue float64) float64
	GetBool(ctx context.Context, accountID int, key string, defaultValue bool) bool

	// Invalidate drops the account's refresh marker so that the next cache
	// hit schedules a background refresh.
	Invalidate(ctx context.Context, accountID int) error
}
