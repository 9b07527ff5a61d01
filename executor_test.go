package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/h2non/gock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func newTestExecutor() *executor {
	return &executor{
		client:  &http.Client{},
		log:     zerolog.Nop(),
		timeout: time.Second,
	}
}

func TestExecutorPost(t *testing.T) {
	t.Run("sends an authenticated JSON request", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://prediction.test").
			Post("/predictions").
			MatchHeader("Authorization", "Bearer apikey").
			MatchHeader("Content-Type", "application/json").
			JSON([]map[string]any{{"home": "A"}}).
			Reply(http.StatusOK).
			JSON([]map[string]any{{"winner": "A"}})

		predictions, err := newTestExecutor().post(context.Background(), "http://prediction.test/predictions", "apikey", []byte(`[{"home":"A"}]`))

		assert.Nil(t, err)
		assert.Len(t, predictions, 1)
		assert.Equal(t, "A", gjson.GetBytes(predictions[0], "winner").String())
		assert.False(t, gock.HasUnmatchedRequest())
	})

	t.Run("collapses non-success statuses", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://prediction.test").
			Post("/predictions").
			Reply(http.StatusInternalServerError).
			BodyString(`upstream exploded`)

		predictions, err := newTestExecutor().post(context.Background(), "http://prediction.test/predictions", "apikey", []byte(`[]`))

		assert.Nil(t, predictions)
		assert.True(t, errors.Is(err, ErrPredictionRequestFailed))
		// The downstream body is logged, never surfaced on the error.
		assert.NotContains(t, err.Error(), "upstream exploded")
		assert.NotContains(t, err.Error(), "500")
	})

	t.Run("passes transport failures through unchanged", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://prediction.test").
			Post("/predictions").
			ReplyError(errors.New("connection reset"))

		predictions, err := newTestExecutor().post(context.Background(), "http://prediction.test/predictions", "apikey", []byte(`[]`))

		assert.Nil(t, predictions)
		assert.ErrorContains(t, err, "connection reset")
		assert.False(t, errors.Is(err, ErrPredictionRequestFailed))
	})

	t.Run("aborts on timeout without retrying", func(t *testing.T) {
		var calls atomic.Int32

		stalled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)

			// Unread body bytes keep the server from observing the client
			// abort, drain before stalling.
			_, _ = io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		}))
		defer stalled.Close()

		e := newTestExecutor()
		e.timeout = 50 * time.Millisecond

		start := time.Now()
		predictions, err := e.post(context.Background(), stalled.URL, "apikey", []byte(`[]`))

		assert.Nil(t, predictions)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rejects bodies that are not prediction arrays", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://prediction.test").
			Post("/predictions").
			Reply(http.StatusOK).
			BodyString(`{"not":"an array"}`)

		predictions, err := newTestExecutor().post(context.Background(), "http://prediction.test/predictions", "apikey", []byte(`[]`))

		assert.Nil(t, predictions)
		assert.True(t, errors.Is(err, ErrResponseParse))
	})
}
