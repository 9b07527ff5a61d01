// Package redis provides a configuration resolver backed by a Redis
// key-value store, for deployments where offer configuration is managed out
// of process.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	gateway "github.com/Forest-Protocols/football-scores-gateway-provider"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "gateway:config"

// Client is the subset of the go-redis API the resolver relies on. Satisfied
// by *redis.Client and friends, abstracted for dependency injection.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type Resolver struct {
	client    Client
	keyPrefix string
}

type Opt func(*Resolver)

// WithKeyPrefix overrides the key namespace configurations are stored under.
func WithKeyPrefix(prefix string) Opt {
	return func(r *Resolver) {
		r.keyPrefix = prefix
	}
}

func New(client Client, opts ...Opt) *Resolver {
	r := Resolver{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

// Resolve fetches and decodes the configuration stored for the offer. The
// stored value is the JSON encoding of gateway.Configuration; whatever is
// found is validated before it is returned, a partially-valid configuration
// is never handed out.
func (r *Resolver) Resolve(ctx context.Context, offerID, providerAddress string) (*gateway.Configuration, error) {
	raw, err := r.client.Get(ctx, r.key(offerID, providerAddress)).Bytes()
	if err == redis.Nil {
		return nil, errors.Wrapf(gateway.ErrConfigurationMissing, "offer '%s'", offerID)
	} else if err != nil {
		return nil, errors.Wrapf(err, "could not fetch configuration for offer '%s'", offerID)
	}

	var cfg gateway.Configuration

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not decode configuration for offer '%s'", offerID)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "stored configuration for offer '%s' is not usable", offerID)
	}

	return &cfg, nil
}

func (r *Resolver) key(offerID, providerAddress string) string {
	return fmt.Sprintf("%s:%s:%s", r.keyPrefix, providerAddress, offerID)
}
