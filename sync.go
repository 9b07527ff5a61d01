package gateway

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// PredictionRequest bundles the inputs of one PredictFixtureResults call, so
// several of them can be issued together.
type PredictionRequest struct {
	Agreement  Agreement
	Resource   Resource
	Challenges []byte
}

type AsyncPrediction struct {
	Response *PredictionResponse
	Error    error
}

// All runs the given prediction requests concurrently and returns their
// results in request order. Each call is independent, a failure of one does
// not affect the others.
func All(ctx context.Context, p *Provider, reqs ...PredictionRequest) []AsyncPrediction {
	var wg sync.WaitGroup

	results := make([]AsyncPrediction, len(reqs))

	for idx, req := range reqs {
		idx, req := idx, req
		wg.Add(1)

		go func() {
			defer wg.Done()

			resp, err := p.PredictFixtureResults(ctx, req.Agreement, req.Resource, req.Challenges)
			if err != nil {
				results[idx] = AsyncPrediction{Error: err}
				return
			}

			results[idx] = AsyncPrediction{Response: resp}
		}()
	}

	wg.Wait()

	return results
}

// Race runs the given prediction requests concurrently and returns the first
// successful response, canceling the ones still in flight. It only fails
// once every request has failed.
func Race(ctx context.Context, p *Provider, reqs ...PredictionRequest) AsyncPrediction {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := make(chan AsyncPrediction, len(reqs))

	for _, req := range reqs {
		req := req
		go func() {
			resp, err := p.PredictFixtureResults(ctx, req.Agreement, req.Resource, req.Challenges)
			if err != nil {
				c <- AsyncPrediction{Error: err}
				return
			}

			c <- AsyncPrediction{Response: resp}
		}()
	}

	errored := 0

	for {
		select {
		case <-ctx.Done():
			return AsyncPrediction{Error: ctx.Err()}

		case result := <-c:
			if result.Error == nil {
				return result
			}

			errored += 1

			if errored == len(reqs) {
				return AsyncPrediction{Error: errors.New("all prediction requests failed")}
			}
		}
	}
}
