package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Category is a semantic weather class used to pick quips.
type Category string

const (
	CategoryCloudy       Category = "cloudy"
	CategoryCold         Category = "cold"
	CategoryFoggy        Category = "foggy"
	CategoryHot          Category = "hot"
	CategoryHumid        Category = "humid"
	CategoryMild         Category = "mild"
	CategoryRainy        Category = "rainy"
	CategorySnowy        Category = "snowy"
	CategoryStormy       Category = "stormy"
	CategoryThunderstorm Category = "thunderstorm"
	CategoryWindy        Category = "windy"
)

// Categories lists every category in the order notes are loaded and
// offered as fallbacks.
var Categories = []Category{
	CategoryCloudy,
	CategoryCold,
	CategoryFoggy,
	CategoryHot,
	CategoryHumid,
	CategoryMild,
	CategoryRainy,
	CategorySnowy,
	CategoryStormy,
	CategoryThunderstorm,
	CategoryWindy,
}

// Location is the point a client asked about.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Key returns the cache key for this location: coordinates rounded to
// whole degrees.
func (l Location) Key() string {
	return fmt.Sprintf("%d:%d", RoundHalfUp(l.Lat), RoundHalfUp(l.Lon))
}

// RoundHalfUp rounds x to the nearest integer with halves going toward
// positive infinity (so -2.5 rounds to -2).
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// Observation is the "current conditions" part of a forecast document.
// Nil fields are unknown, never zero.
type Observation struct {
	Condition string   `json:"condition,omitempty"`
	TempC     *float64 `json:"temp_c,omitempty"`
	Humidity  *float64 `json:"humidity,omitempty"`
	WindKph   *float64 `json:"wind_kph,omitempty"`
	PrecipMm  *float64 `json:"precip_mm,omitempty"`
	Cloud     *float64 `json:"cloud,omitempty"`
	UV        *float64 `json:"uv,omitempty"`
	IsDay     *bool    `json:"is_day,omitempty"`
}

// Empty reports whether the observation carries no usable data.
func (o *Observation) Empty() bool {
	if o == nil {
		return true
	}
	return o.Condition == "" && o.TempC == nil && o.Humidity == nil &&
		o.WindKph == nil && o.PrecipMm == nil && o.Cloud == nil &&
		o.UV == nil && o.IsDay == nil
}

// NewObservation builds an Observation from a WeatherAPI "current" record.
func NewObservation(r Record) *Observation {
	if r == nil {
		return nil
	}
	obs := &Observation{
		Condition: r.Sub("condition").String("text"),
		TempC:     r.NumberPtr("temp_c"),
		Humidity:  r.NumberPtr("humidity"),
		WindKph:   r.NumberPtr("wind_kph"),
		PrecipMm:  r.NumberPtr("precip_mm"),
		Cloud:     r.NumberPtr("cloud"),
		UV:        r.NumberPtr("uv"),
	}
	if v, ok := r.Number("is_day"); ok {
		day := v != 0
		obs.IsDay = &day
	}
	return obs
}

// Document is the subset of a WeatherAPI forecast.json response the
// service reads. Hourly entries stay generic so field lookups can
// tolerate different upstream spellings.
type Document struct {
	Location LocationInfo  `json:"location"`
	Current  Record        `json:"current"`
	Forecast ForecastBlock `json:"forecast"`
}

// LocationInfo describes the resolved upstream location.
type LocationInfo struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// TimeZone returns the location's zone, falling back to UTC.
func (l LocationInfo) TimeZone() *time.Location {
	if l.TzID == "" {
		return time.UTC
	}
	tz, err := time.LoadLocation(l.TzID)
	if err != nil {
		return time.UTC
	}
	return tz
}

type ForecastBlock struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// ForecastDay is one day of a multi-day forecast.
type ForecastDay struct {
	Date  string   `json:"date"`
	Day   Record   `json:"day"`
	Astro *Astro   `json:"astro,omitempty"`
	Hour  []Record `json:"hour"`
}

// Astro holds textual sunrise/sunset times such as "06:42 AM".
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// ParseDocument decodes a raw forecast document.
func ParseDocument(body []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode forecast document: %w", err)
	}
	return &doc, nil
}

// Observation returns the current conditions of the document.
func (d *Document) Observation() *Observation {
	if d == nil {
		return nil
	}
	return NewObservation(d.Current)
}

// FirstAstro returns the astronomy block of the first forecast day.
func (d *Document) FirstAstro() *Astro {
	if d == nil || len(d.Forecast.ForecastDay) == 0 {
		return nil
	}
	return d.Forecast.ForecastDay[0].Astro
}

// Snapshot is a cached upstream response.
type Snapshot struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Body      json.RawMessage `json:"body"`
}

// Report is what the /api endpoint returns.
type Report struct {
	CacheAge int64           `json:"cache_age"`
	Quip     string          `json:"weather_quip"`
	Weather  json.RawMessage `json:"weather"`
}
