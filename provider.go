// Package gateway implements a proxy provider bridging a resource-leasing
// agreement system to an external football prediction API.
//
// For each prediction request the provider resolves the per-offer
// configuration of the virtual provider behind it, normalizes the challenge
// payload, forwards it downstream with bearer authentication and a bounded
// timeout, and maps the outcome into a stable response contract.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const allowanceParam = "params.Number of Predictions.value"

// Provider implements the resource lifecycle hooks invoked by the leasing
// subsystem. It holds no mutable state across invocations, concurrent calls
// are independent.
type Provider struct {
	resolver Resolver
	client   *http.Client
	log      zerolog.Logger
	timeout  time.Duration

	executor *executor
}

// New creates a gateway provider with the given options. A configuration
// resolver is required.
//
// Example usage:
//
//	provider, err := gateway.New(
//		gateway.WithResolver(resolver),
//		gateway.WithLogger(logger),
//	)
func New(opts ...Option) (*Provider, error) {
	p := Provider{
		log:     zerolog.Nop(),
		timeout: RequestTimeout,
	}

	for _, opt := range opts {
		opt(&p)
	}

	if p.resolver == nil {
		return nil, errors.New("a configuration resolver is required")
	}

	if p.client == nil {
		p.client = &http.Client{}
	}

	p.executor = &executor{
		client:  p.client,
		log:     p.log,
		timeout: p.timeout,
	}

	return &p, nil
}

// Create initializes the details of a new resource from the purchased offer.
//
// The offer details must be structured data, any opaque blob is rejected with
// ErrInvalidOfferDetails. The purchased prediction allowance is read from the
// offer params, defaulting to 0 when absent.
func (p *Provider) Create(_ context.Context, _ Agreement, offer Offer) (*ResourceDetails, error) {
	if !gjson.ValidBytes(offer.Details) || !gjson.ParseBytes(offer.Details).IsObject() {
		return nil, errors.Wrapf(ErrInvalidOfferDetails, "offer '%s'", offer.ID)
	}

	allowance := gjson.GetBytes(offer.Details, allowanceParam).Int()

	return &ResourceDetails{
		Status:               StatusRunning,
		PredictionsAllowance: allowance,
		PredictionsCount:     0,
	}, nil
}

// GetDetails returns the resource's stored details merged with its current
// deployment status. Pure projection, no side effects.
func (p *Provider) GetDetails(_ context.Context, _ Agreement, _ Offer, resource Resource) ResourceDetails {
	details := resource.Details
	details.Status = resource.DeploymentStatus

	return details
}

// Delete is a no-op, teardown of the leased resource is owned by the leasing
// subsystem.
func (p *Provider) Delete(_ context.Context, _ Agreement, _ Offer, _ Resource) error {
	return nil
}

// PredictFixtureResults forwards a challenge payload to the prediction API
// configured for the agreement's offer.
//
// The challenge payload is a JSON array of fixture records, each carrying at
// least a kickoffTime. On success the downstream predictions are returned
// re-serialized, with code OK. Any failure surfaces as a typed error whose
// classification is obtained through ResponseCodeFor.
func (p *Provider) PredictFixtureResults(ctx context.Context, agreement Agreement, _ Resource, challenges []byte) (*PredictionResponse, error) {
	cfg, err := p.resolver.Resolve(ctx, agreement.OfferID, agreement.ProviderAddress)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.Wrapf(ErrConfigurationMissing, "offer '%s'", agreement.OfferID)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "configuration for offer '%s' is not usable", agreement.OfferID)
	}

	normalized, err := NormalizeChallenges(challenges)
	if err != nil {
		return nil, err
	}

	predictions, err := p.executor.post(ctx, cfg.APIBaseURL, cfg.APIKey, normalized)
	if err != nil {
		return nil, err
	}

	serialized, err := json.Marshal(predictions)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize predictions")
	}

	return &PredictionResponse{
		Predictions: string(serialized),
		Code:        CodeOK,
	}, nil
}
