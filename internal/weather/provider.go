package weather

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoAPIKey is returned when the upstream key is not configured.
	ErrNoAPIKey = errors.New("weather api key is not configured")
	// ErrUpstream wraps failures fetching from the upstream provider.
	ErrUpstream = errors.New("failed to fetch weather data")
)

// Provider abstracts the upstream forecast source (WeatherAPI.com).
// It returns the raw forecast document.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, loc Location) ([]byte, error)
}

// Store is the contract the forecast caches must satisfy.
type Store interface {
	SaveSnapshot(ctx context.Context, key string, snapshot Snapshot) error
	GetLatest(ctx context.Context, key string) (Snapshot, error)
}

// QuipPicker chooses the quip shown for the current conditions.
type QuipPicker interface {
	Select(obs *Observation, lat, lon float64, today time.Time) string
}
