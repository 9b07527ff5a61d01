// Package static provides an in-memory configuration resolver, mainly for
// bootstrap from environment variables and for tests.
package static

import (
	"context"

	gateway "github.com/Forest-Protocols/football-scores-gateway-provider"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type key struct {
	offerID         string
	providerAddress string
}

type Resolver struct {
	configs map[key]gateway.Configuration
}

func New() *Resolver {
	return &Resolver{
		configs: make(map[key]gateway.Configuration),
	}
}

// Register declares the configuration for an offer/provider pair, replacing
// any previous one. Not safe for concurrent use with Resolve, registration
// is expected to happen at bootstrap.
func (r *Resolver) Register(offerID, providerAddress string, cfg gateway.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "refusing configuration for offer '%s'", offerID)
	}

	r.configs[key{offerID, providerAddress}] = cfg

	return nil
}

func (r *Resolver) Resolve(_ context.Context, offerID, providerAddress string) (*gateway.Configuration, error) {
	cfg, ok := r.configs[key{offerID, providerAddress}]
	if !ok {
		return nil, errors.Wrapf(gateway.ErrConfigurationMissing, "offer '%s'", offerID)
	}

	return lo.ToPtr(cfg), nil
}
