package gateway

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	kickoffTimeField = "kickoffTime"
	kickoffTimeWire  = "2006-01-02T15:04:05Z"
)

// NormalizeChallenges rewrites every record's kickoff time to whole-second
// precision with a forced UTC "Z" suffix, leaving all other fields untouched.
// Some downstream parsers reject sub-second timestamps, so the payload is
// normalized before transmission.
//
// The rewrite is idempotent and never mutates the input slice.
func NormalizeChallenges(challenges []byte) ([]byte, error) {
	if !gjson.ValidBytes(challenges) {
		return nil, errors.Wrap(ErrMalformedChallengePayload, "not valid JSON")
	}

	parsed := gjson.ParseBytes(challenges)
	if !parsed.IsArray() {
		return nil, errors.Wrap(ErrMalformedChallengePayload, "expected an array of fixtures")
	}

	out := challenges

	for idx, record := range parsed.Array() {
		if !record.IsObject() {
			return nil, errors.Wrapf(ErrMalformedChallengePayload, "fixture %d is not an object", idx)
		}

		kickoff := record.Get(kickoffTimeField)
		if kickoff.Type != gjson.String {
			return nil, errors.Wrapf(ErrMalformedChallengePayload, "fixture %d has no kickoff time", idx)
		}

		ts, err := time.Parse(time.RFC3339, kickoff.String())
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedChallengePayload, "fixture %d kickoff time '%s' is not a timestamp", idx, kickoff.String())
		}

		out, err = sjson.SetBytes(out, strconv.Itoa(idx)+"."+kickoffTimeField, ts.UTC().Format(kickoffTimeWire))
		if err != nil {
			return nil, errors.Wrapf(err, "could not rewrite kickoff time of fixture %d", idx)
		}
	}

	return out, nil
}
