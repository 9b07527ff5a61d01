package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gateway "github.com/Forest-Protocols/football-scores-gateway-provider"
	redisresolver "github.com/Forest-Protocols/football-scores-gateway-provider/resolvers/redis"
	"github.com/Forest-Protocols/football-scores-gateway-provider/resolvers/static"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type predictPayload struct {
	Agreement  gateway.Agreement `json:"agreement"`
	Resource   gateway.Resource  `json:"resource"`
	Challenges json.RawMessage   `json:"challenges"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger = logger.Level(level)
	}

	resolver, err := buildResolver()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build configuration resolver")
	}

	provider, err := gateway.New(
		gateway.WithResolver(resolver),
		gateway.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create gateway provider")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		var payload predictPayload

		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := provider.PredictFixtureResults(r.Context(), payload.Agreement, payload.Resource, payload.Challenges)
		if err != nil {
			logger.Error().Err(err).Str("agreement", payload.Agreement.ID).Msg("prediction failed")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(gateway.PredictionResponse{
				Code: gateway.ResponseCodeFor(err),
			})

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("GET /configuration/schema", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gateway.ConfigurationSchema())
	})

	addr := getEnv("LISTEN_ADDR", ":8080")
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", addr).Msg("gateway provider listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

// buildResolver wires a Redis-backed resolver when REDIS_ADDR is set, and
// otherwise falls back to a single static configuration from the
// environment.
func buildResolver() (gateway.Resolver, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})

		return redisresolver.New(client), nil
	}

	resolver := static.New()

	err := resolver.Register(
		getEnv("OFFER_ID", "0"),
		getEnv("PROVIDER_ADDRESS", "0x0"),
		gateway.Configuration{
			APIBaseURL: os.Getenv("API_BASE_URL"),
			APIKey:     os.Getenv("API_KEY"),
		},
	)
	if err != nil {
		return nil, err
	}

	return resolver, nil
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}
