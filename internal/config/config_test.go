package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/overcast/internal/weather"
)

func TestParseLocations(t *testing.T) {
	locs, err := ParseLocations(" 51.5,-0.1 ; 40.7, -74.0;")
	require.NoError(t, err)
	assert.Equal(t, []weather.Location{{Lat: 51.5, Lon: -0.1}, {Lat: 40.7, Lon: -74}}, locs)

	locs, err = ParseLocations("")
	require.NoError(t, err)
	assert.Empty(t, locs)

	for _, bad := range []string{"51.5", "a,1", "1,b", "1,2,3"} {
		_, err := ParseLocations(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"WEATHERAPI_KEY", "WEATHERAPI_API_KEY", "FORECAST_DAYS", "NOTES_DIR", "PORT",
		"HTTP_TIMEOUT", "CACHE_TTL", "WARM_INTERVAL", "CACHE_BACKEND", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "WARM_LOCATIONS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.WeatherAPIKey)
	assert.Equal(t, 2, cfg.ForecastDays)
	assert.Equal(t, "weather_notes", cfg.NotesDir)
	assert.Equal(t, "8302", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.WarmInterval)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.WarmLocations)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEATHERAPI_KEY", "")
	t.Setenv("WEATHERAPI_API_KEY", "legacy")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FORECAST_DAYS", "not a number")
	t.Setenv("WARM_LOCATIONS", "51.5,-0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.WeatherAPIKey)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2, cfg.ForecastDays)
	assert.Len(t, cfg.WarmLocations, 1)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("CACHE_TTL", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "CACHE_TTL")
}
