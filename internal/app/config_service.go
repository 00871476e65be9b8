package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/realtime-config/internal/app/fanout"
	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
	"github.com/jsamuelsen11/realtime-config/internal/platform/logging"
	"github.com/jsamuelsen11/realtime-config/internal/platform/telemetry"
	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

const (
	// DefaultRefreshInterval is how old an account's refresh marker must be
	// before a cache hit schedules a background refresh.
	DefaultRefreshInterval = 30 * time.Second

	// DefaultWriteConcurrency bounds concurrent cache writes per refresh.
	DefaultWriteConcurrency = 8
)

var _ ports.ConfigService = (*ConfigService)(nil)

// RecordKey is the cache key of one account's config record.
func RecordKey(accountID int, key string) string {
	return fmt.Sprintf("realtimeconfig_%d_%s", accountID, key)
}

// MarkerKey is the cache key of an account's refresh marker.
func MarkerKey(accountID int) string {
	return fmt.Sprintf("realtimeconfig_refreshtime_%d", accountID)
}

// ConfigService resolves config values stale-while-revalidate: a cached
// value is returned immediately and, when the account was last refreshed
// more than the refresh interval ago, a detached refresh pulls the
// account's full config set from the gateway. A cache miss refreshes
// synchronously. Lookups never fail; every error degrades to the caller's
// default and is logged.
//
// There is no lock around the marker check, so concurrent lookups may
// each start a refresh for the same account.
type ConfigService struct {
	cache   ports.CacheProvider
	gateway ports.ConfigGateway
	logger  *slog.Logger
	metrics *telemetry.Metrics

	refreshInterval time.Duration
	recordTTL       time.Duration
	writers         int
	now             func() time.Time
	launch          func(func())
}

// Option configures a ConfigService.
type Option func(*ConfigService)

// WithRefreshInterval overrides DefaultRefreshInterval. Non-positive
// values are ignored.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *ConfigService) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithWriteConcurrency overrides DefaultWriteConcurrency. Values below 1
// are ignored.
func WithWriteConcurrency(n int) Option {
	return func(s *ConfigService) {
		if n >= 1 {
			s.writers = n
		}
	}
}

// WithRecordTTL sets an absolute expiry on per-key records. Zero, the
// default, keeps records until they are overwritten.
func WithRecordTTL(d time.Duration) Option {
	return func(s *ConfigService) {
		s.recordTTL = max(d, 0)
	}
}

// WithClock replaces time.Now for marker writes and staleness checks.
func WithClock(now func() time.Time) Option {
	return func(s *ConfigService) {
		s.now = now
	}
}

// WithLauncher replaces the function that starts background refreshes.
// The default runs f on a new goroutine.
func WithLauncher(launch func(f func())) Option {
	return func(s *ConfigService) {
		s.launch = launch
	}
}

// WithMetrics records lookup and refresh metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ConfigService) {
		s.metrics = m
	}
}

// NewConfigService creates a ConfigService reading and writing through
// cache and refreshing from gateway. A nil logger discards output.
func NewConfigService(cache ports.CacheProvider, gateway ports.ConfigGateway, logger *slog.Logger, opts ...Option) *ConfigService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ConfigService{
		cache:           cache,
		gateway:         gateway,
		logger:          logger,
		refreshInterval: DefaultRefreshInterval,
		writers:         DefaultWriteConcurrency,
		now:             time.Now,
		launch:          func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ConfigService) GetString(ctx context.Context, accountID int, key, defaultValue string) string {
	return Resolve(ctx, s, accountID, key, defaultValue)
}

func (s *ConfigService) GetInt(ctx context.Context, accountID int, key string, defaultValue int) int {
	return Resolve(ctx, s, accountID, key, defaultValue)
}

func (s *ConfigService) GetDouble(ctx context.Context, accountID int, key string, defaultValue float64) float64 {
	return Resolve(ctx, s, accountID, key, defaultValue)
}

func (s *ConfigService) GetBool(ctx context.Context, accountID int, key string, defaultValue bool) bool {
	return Resolve(ctx, s, accountID, key, defaultValue)
}

// Invalidate clears the account's refresh marker. Cached records stay in
// place; the next hit for the account schedules a background refresh.
func (s *ConfigService) Invalidate(ctx context.Context, accountID int) error {
	if err := s.cache.Clear(ctx, MarkerKey(accountID)); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear refresh marker",
			slog.String("operation", "Invalidate"),
			logging.Account(accountID),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "refresh marker cleared", logging.Account(accountID))
	return nil
}

// Resolve returns the value of key for the account as a T, or
// defaultValue when it cannot be produced.
func Resolve[T realtime.Primitive](ctx context.Context, s *ConfigService, accountID int, key string, defaultValue T) T {
	var rec realtime.Record
	found, err := s.cache.Get(ctx, RecordKey(accountID, key), &rec)
	switch {
	case err != nil:
		s.countLookup(ctx, telemetry.ResultError)
		s.logger.WarnContext(ctx, "config cache read failed, refreshing",
			slog.String("operation", "Resolve"),
			logging.Account(accountID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return refresh(ctx, s, accountID, key, defaultValue)
	case !found:
		s.countLookup(ctx, telemetry.ResultMiss)
		return refresh(ctx, s, accountID, key, defaultValue)
	}

	s.countLookup(ctx, telemetry.ResultHit)

	val, err := realtime.Decode[T](rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "cached config could not be decoded",
			slog.String("operation", "Resolve"),
			logging.Account(accountID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return defaultValue
	}

	if s.refreshDue(ctx, accountID) {
		bg := context.WithoutCancel(ctx)
		s.launch(func() {
			refresh(bg, s, accountID, key, defaultValue)
		})
	}

	return val
}

// refreshDue reports whether the account's marker is missing, unreadable,
// or older than the refresh interval.
func (s *ConfigService) refreshDue(ctx context.Context, accountID int) bool {
	var marker realtime.RefreshMarker
	found, err := s.cache.Get(ctx, MarkerKey(accountID), &marker)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh marker unreadable",
			logging.Account(accountID),
			slog.Any("error", err),
		)
		return true
	}
	return !found || marker.IsStale(s.now(), s.refreshInterval)
}

// refresh pulls the account's config set, writes every record to its own
// cache entry, and returns key's value. When the gateway has no record for
// key, defaultValue is cached in its place and reported back to the
// gateway. The marker only advances when the gateway answered.
func refresh[T realtime.Primitive](ctx context.Context, s *ConfigService, accountID int, key string, defaultValue T) T {
	start := s.now()

	fallback, err := realtime.Encode(accountID, key, defaultValue)
	if err != nil {
		s.logger.ErrorContext(ctx, "default value cannot be encoded",
			slog.String("operation", "Refresh"),
			logging.Account(accountID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return defaultValue
	}

	records, err := s.gateway.FetchConfigs(ctx, accountID)
	if err != nil {
		s.recordRefresh(ctx, start, telemetry.ResultError)
		s.logger.ErrorContext(ctx, "failed to fetch configs from gateway",
			slog.String("operation", "Refresh"),
			logging.Account(accountID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return defaultValue
	}

	matched, found := s.storeRecords(ctx, accountID, key, records)

	if !found {
		s.logger.WarnContext(ctx, "config key not found for account, using default",
			logging.Account(accountID),
			slog.String("key", key),
		)
		s.storeFallback(ctx, fallback)
	}

	if err := s.cache.Set(ctx, MarkerKey(accountID), realtime.RefreshMarker{LastRefresh: s.now().UTC()}, 0); err != nil {
		s.logger.ErrorContext(ctx, "failed to write refresh marker",
			slog.String("operation", "Refresh"),
			logging.Account(accountID),
			slog.Any("error", err),
		)
	}
	s.recordRefresh(ctx, start, telemetry.ResultSuccess)

	if !found {
		return defaultValue
	}

	val, err := realtime.Decode[T](matched)
	if err != nil {
		s.logger.ErrorContext(ctx, "gateway config could not be decoded",
			slog.String("operation", "Refresh"),
			logging.Account(accountID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return defaultValue
	}
	return val
}

// storeRecords writes each record to its per-key entry and returns the one
// matching key. An empty key never matches.
func (s *ConfigService) storeRecords(ctx context.Context, accountID int, key string, records []realtime.Record) (realtime.Record, bool) {
	var (
		matched realtime.Record
		found   bool
	)
	for _, r := range records {
		if key != "" && r.Key == key {
			matched, found = r, true
		}
	}

	results := fanout.Run(ctx, s.writers, records, func(ctx context.Context, r realtime.Record) (struct{}, error) {
		return struct{}{}, s.cache.Set(ctx, RecordKey(accountID, r.Key), r, s.recordTTL)
	})
	if err := fanout.Errors(results); err != nil {
		s.logger.ErrorContext(ctx, "failed to cache gateway configs",
			slog.String("operation", "Refresh"),
			logging.Account(accountID),
			slog.Int("records", len(records)),
			slog.Any("error", err),
		)
	}

	return matched, found
}

// storeFallback caches the default under its key and reports it to the
// gateway. Failures are logged only.
func (s *ConfigService) storeFallback(ctx context.Context, fallback realtime.Record) {
	if err := s.cache.Set(ctx, RecordKey(fallback.AccountID, fallback.Key), fallback, s.recordTTL); err != nil {
		s.logger.ErrorContext(ctx, "failed to cache default config",
			slog.String("operation", "Refresh"),
			logging.Account(fallback.AccountID),
			slog.String("key", fallback.Key),
			slog.Any("error", err),
		)
	}

	if err := s.gateway.SetDefault(ctx, fallback); err != nil {
		s.logger.ErrorContext(ctx, "failed to report default config to gateway",
			slog.String("operation", "SetDefault"),
			logging.Account(fallback.AccountID),
			slog.String("key", fallback.Key),
			slog.Any("error", err),
		)
		return
	}

	if s.metrics != nil {
		s.metrics.DefaultReportedTotal.Add(ctx, 1)
	}
}

func (s *ConfigService) countLookup(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LookupTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

func (s *ConfigService) recordRefresh(ctx context.Context, start time.Time, result string) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	s.metrics.RefreshTotal.Add(ctx, 1, attrs)
	s.metrics.RefreshDuration.Record(ctx, s.now().Sub(start).Seconds(), attrs)
}
