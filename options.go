package gateway

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Option func(*Provider)

// WithResolver sets the configuration resolver used to look up per-offer
// provider configuration.
func WithResolver(resolver Resolver) Option {
	return func(p *Provider) {
		p.resolver = resolver
	}
}

// WithHTTPClient overrides the HTTP client used for outbound prediction
// calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// WithLogger sets the logger. Request and response bodies are logged at
// debug level only.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provider) {
		p.log = log
	}
}

// WithRequestTimeout overrides the outbound call timeout. Only intended for
// tests, the production bound is RequestTimeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.timeout = timeout
	}
}
