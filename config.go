package gateway

import (
	"context"
	"net/url"

	"github.com/Forest-Protocols/football-scores-gateway-provider/internal"
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

// Configuration is the per-offer provider configuration resolved before each
// prediction request. It parameterizes the virtual provider the request is
// forwarded to.
type Configuration struct {
	// APIBaseURL is the endpoint predictions are POSTed to.
	APIBaseURL string `json:"apiBaseURL" jsonschema:"required,format=uri,example=https://api.example.org/v1/predictions,description=Base URL of the prediction API requests are forwarded to"`
	// APIKey is the bearer credential for the prediction API.
	APIKey string `json:"apiKey" jsonschema:"required,example=sk-0000,description=API key used as a bearer token towards the prediction API"`
}

// Validate checks that the configuration is usable before any of it is acted
// upon. A Configuration is either fully valid or rejected, never partially
// valid.
func (c Configuration) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid apiBaseURL '%s'", c.APIBaseURL)
	}

	if !u.IsAbs() || u.Host == "" {
		return errors.Newf("apiBaseURL '%s' is not an absolute URL", c.APIBaseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf("apiBaseURL must use http or https, got '%s'", u.Scheme)
	}

	if c.APIKey == "" {
		return errors.New("apiKey must not be empty")
	}

	return nil
}

// ConfigurationSchema returns the descriptive JSON schema for Configuration.
//
// The example, format and description metadata is advisory, intended for
// configuration UIs. Behavior is enforced by Validate, not by the schema.
func ConfigurationSchema() jsonschema.Schema {
	return internal.GenerateSchema[Configuration]()
}

// Resolver retrieves the provider configuration declared for an offer. The
// storage behind it is an external collaborator, the gateway treats it as an
// opaque lookup keyed by offer identity.
//
// Implementations must return an error wrapping ErrConfigurationMissing when
// no configuration exists for the pair.
type Resolver interface {
	Resolve(ctx context.Context, offerID string, providerAddress string) (*Configuration, error)
}
