package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// RequestTimeout bounds a single outbound prediction call, measured from call
// issuance. There is no retry, the caller owns retry policy.
const RequestTimeout = 120 * time.Second

const unreadableBody = "<could not read response body>"

// executor issues a single timed, authenticated POST to the configured
// prediction endpoint and normalizes the outcome.
type executor struct {
	client  *http.Client
	log     zerolog.Logger
	timeout time.Duration
}

// post forwards the serialized challenge payload and returns the parsed
// prediction records.
//
// Transport-level failures are logged then returned unchanged. Non-2xx
// responses are logged with their body and collapsed into
// ErrPredictionRequestFailed; the original status code is deliberately not
// carried on the error.
func (e *executor) post(ctx context.Context, endpoint, apiKey string, body []byte) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "could not build prediction request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Debug().Err(err).Str("url", endpoint).Msg("prediction request transport failure")

		return nil, err
	}

	defer resp.Body.Close()

	// The body is buffered once, both the debug log and the parser read
	// from the same buffer.
	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logged := string(raw)
		if readErr != nil {
			logged = unreadableBody
		}

		e.log.Debug().
			Int("status", resp.StatusCode).
			Str("body", logged).
			Str("url", endpoint).
			Msg("prediction API returned a non-success status")

		return nil, errors.Wrap(ErrPredictionRequestFailed, "prediction API rejected the request")
	}

	if readErr != nil {
		e.log.Debug().Err(readErr).Str("url", endpoint).Msg("could not read prediction response body")

		return nil, readErr
	}

	e.log.Debug().Str("body", string(raw)).Msg("prediction API response")

	var predictions []json.RawMessage

	if err := json.Unmarshal(raw, &predictions); err != nil {
		return nil, errors.Wrapf(ErrResponseParse, "expected an array of predictions: %v", err)
	}

	return predictions, nil
}
