package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

// DefaultNamespace is prepended to every key when none is configured.
const DefaultNamespace = "realtimeconfig"

var _ ports.CacheProvider = (*Provider)(nil)

// Provider implements ports.CacheProvider over a ports.CacheStore. Every
// key becomes "<namespace>-<key>" before it reaches the store.
type Provider struct {
	store     ports.CacheStore
	namespace string
}

// NewProvider creates a Provider. An empty namespace uses DefaultNamespace.
func NewProvider(store ports.CacheStore, namespace string) *Provider {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Provider{store: store, namespace: namespace}
}

// Key returns the store key for a provider key.
func (p *Provider) Key(key string) string {
	return p.namespace + "-" + key
}

func (p *Provider) GetString(ctx context.Context, key string) (string, bool, error) {
	data, found, err := p.store.Get(ctx, p.Key(key))
	if err != nil {
		return "", false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !found {
		return "", false, nil
	}
	return string(data), true, nil
}

func (p *Provider) SetString(ctx context.Context, key, value string, expiresIn time.Duration) error {
	return p.set(ctx, key, []byte(value), ports.EntryOptions{AbsoluteExpiry: expiresIn})
}

func (p *Provider) SetStringSliding(ctx context.Context, key, value string, sliding time.Duration) error {
	return p.set(ctx, key, []byte(value), ports.EntryOptions{SlidingExpiry: sliding})
}

func (p *Provider) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, found, err := p.store.Get(ctx, p.Key(key))
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decoding cached %s: %w", key, err)
	}
	return true, nil
}

func (p *Provider) Set(ctx context.Context, key string, value any, expiresIn time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s for cache: %w", key, err)
	}
	return p.set(ctx, key, data, ports.EntryOptions{AbsoluteExpiry: expiresIn})
}

func (p *Provider) Clear(ctx context.Context, key string) error {
	if err := p.store.Delete(ctx, p.Key(key)); err != nil {
		return fmt.Errorf("cache clear %s: %w", key, err)
	}
	return nil
}

func (p *Provider) set(ctx context.Context, key string, data []byte, opts ports.EntryOptions) error {
	if opts.AbsoluteExpiry < 0 || opts.SlidingExpiry < 0 {
		return fmt.Errorf("cache set %s: negative expiry", key)
	}
	if err := p.store.Set(ctx, p.Key(key), data, opts); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
