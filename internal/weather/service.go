package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Service fetches forecasts through the cache and decorates them with quips
// and derived signals.
type Service struct {
	store    Store
	provider Provider
	quips    QuipPicker
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates a new Service. A zero ttl disables cache reads.
func NewService(store Store, provider Provider, quips QuipPicker, ttl time.Duration) *Service {
	return &Service{
		store:    store,
		provider: provider,
		quips:    quips,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetWeather returns the forecast for loc, served from cache while it is
// younger than the TTL.
func (s *Service) GetWeather(ctx context.Context, loc Location) (*Report, error) {
	snap, age, err := s.snapshot(ctx, loc)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(snap.Body)
	if err != nil {
		// The raw document is still returned, without a quip.
		log.Printf("WARN: %s: %v", loc.Key(), err)
		doc = nil
	}

	return &Report{
		CacheAge: age,
		Quip:     s.quip(doc, loc),
		Weather:  snap.Body,
	}, nil
}

// GetInsights returns the processed 24-hour window for loc.
func (s *Service) GetInsights(ctx context.Context, loc Location) (*Insights, error) {
	snap, age, err := s.snapshot(ctx, loc)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(snap.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	in := BuildInsights(doc, s.now())
	in.CacheAge = age
	in.Quip = s.quip(doc, loc)
	return in, nil
}

// FetchAndStore refreshes the cached forecast for loc regardless of age.
func (s *Service) FetchAndStore(ctx context.Context, loc Location) error {
	_, err := s.fetch(ctx, loc)
	return err
}

func (s *Service) snapshot(ctx context.Context, loc Location) (Snapshot, int64, error) {
	now := s.now()
	if s.ttl > 0 {
		snap, err := s.store.GetLatest(ctx, loc.Key())
		if err == nil {
			age := now.Sub(snap.FetchedAt)
			if age < s.ttl {
				return snap, int64(age / time.Second), nil
			}
		}
	}

	snap, err := s.fetch(ctx, loc)
	if err != nil {
		return Snapshot{}, 0, err
	}
	return snap, 0, nil
}

func (s *Service) fetch(ctx context.Context, loc Location) (Snapshot, error) {
	if s.provider == nil {
		return Snapshot{}, fmt.Errorf("no weather provider configured")
	}

	body, err := s.provider.FetchForecast(ctx, loc)
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			return Snapshot{}, err
		}
		log.Printf("ERROR: provider %s fetch failed for %s: %v", s.provider.Name(), loc.Key(), err)
		return Snapshot{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	snap := Snapshot{FetchedAt: s.now(), Body: body}
	if err := s.store.SaveSnapshot(ctx, loc.Key(), snap); err != nil {
		log.Printf("WARN: failed to cache forecast for %s: %v", loc.Key(), err)
	}
	return snap, nil
}

func (s *Service) quip(doc *Document, loc Location) string {
	if s.quips == nil || doc == nil {
		return ""
	}
	return s.quips.Select(doc.Observation(), loc.Lat, loc.Lon, s.now())
}
