package gateway

import "github.com/cockroachdb/errors"

// Failure taxonomy for the request path. All of these classify as an internal
// error towards the caller; transport-level failures (network errors,
// timeouts) are passed through unwrapped and classify the same way.
var (
	// ErrConfigurationMissing is returned when no configuration exists for
	// an offer/provider pair.
	ErrConfigurationMissing = errors.New("no configuration found for offer")

	// ErrInvalidOfferDetails is returned by Create when the offer details
	// are not structured data.
	ErrInvalidOfferDetails = errors.New("offer details are not structured")

	// ErrMalformedChallengePayload is returned when a challenge payload is
	// not a JSON array of fixture records with a parseable kickoff time.
	ErrMalformedChallengePayload = errors.New("malformed challenge payload")

	// ErrPredictionRequestFailed wraps non-2xx responses from the prediction
	// API. The downstream status code is logged but not carried on the
	// error.
	ErrPredictionRequestFailed = errors.New("prediction request failed")

	// ErrResponseParse is returned when a successful response body cannot be
	// parsed as a prediction array.
	ErrResponseParse = errors.New("could not parse prediction response")
)

// ResponseCodeFor maps an error from the request path to the response-code
// classification exposed to the leasing subsystem.
func ResponseCodeFor(err error) ResponseCode {
	if err == nil {
		return CodeOK
	}

	return CodeInternalServerError
}
