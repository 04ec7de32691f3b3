package quip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/overcast/internal/weather"
)

func fp(v float64) *float64 { return &v }

var june1 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func lightRain() *weather.Observation {
	return &weather.Observation{
		Condition: "Light rain",
		TempC:     fp(18),
		Humidity:  fp(70),
		WindKph:   fp(10),
		PrecipMm:  fp(0.8),
	}
}

func TestDaySeed(t *testing.T) {
	assert.Equal(t, int64(202437), DaySeed(time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, int64(202461), DaySeed(june1))
	assert.Equal(t, int64(20241231), DaySeed(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCoordSeed(t *testing.T) {
	assert.Equal(t, int64(5140), CoordSeed(51.5, -0.1))
	assert.Equal(t, int64(0), CoordSeed(0, 0))
	assert.Equal(t, int64(-2), CoordSeed(-0.025, 0))
}

func TestSelect_SingleQuip(t *testing.T) {
	s := NewSelector(NewNotes(map[weather.Category][]string{
		weather.CategoryRainy: {"Bring an umbrella"},
	}))

	assert.Equal(t, "Bring an umbrella", s.Select(lightRain(), 51.5, -0.1, june1))
}

func TestSelect_SeededIndex(t *testing.T) {
	s := NewSelector(NewNotes(map[weather.Category][]string{
		weather.CategoryRainy: {"r0", "r1", "r2", "r3"},
		weather.CategoryMild:  {"m0", "m1", "m2"},
	}))

	// Seed 202461 + 5140 + len("rainy") draws 0.46 first.
	assert.Equal(t, "r1", s.Select(lightRain(), 51.5, -0.1, june1))

	// Same inputs, same answer.
	for i := 0; i < 5; i++ {
		assert.Equal(t, "r1", s.Select(lightRain(), 51.5, -0.1, june1.Add(time.Duration(i)*time.Hour)))
	}
}

func TestSelect_FallsBackWhenCategoryEmpty(t *testing.T) {
	s := NewSelector(NewNotes(map[weather.Category][]string{
		weather.CategoryCold: {"c0"},
		weather.CategoryHot:  {"h0"},
		weather.CategoryMild: {"m0", "m1", "m2"},
	}))

	// No rainy notes: the base seed 207601 draws 0.859, index 2 of
	// [cold hot mild], then seed 207605 picks index 1 of mild.
	assert.Equal(t, "m1", s.Select(lightRain(), 51.5, -0.1, june1))
}

func TestSelect_UnclassifiedUsesFallback(t *testing.T) {
	s := NewSelector(NewNotes(map[weather.Category][]string{
		weather.CategoryCold: {"c0"},
		weather.CategoryHot:  {"h0"},
		weather.CategoryMild: {"m0", "m1", "m2"},
	}))

	assert.Equal(t, "m1", s.Select(nil, 51.5, -0.1, june1))
	assert.Equal(t, "m1", s.Select(&weather.Observation{}, 51.5, -0.1, june1))
}

func TestSelect_NoNotes(t *testing.T) {
	assert.Equal(t, "", NewSelector(NewNotes(nil)).Select(lightRain(), 51.5, -0.1, june1))
	assert.Equal(t, "", NewSelector(nil).Select(nil, 0, 0, june1))
}

func TestSelect_BundledNotes(t *testing.T) {
	s := NewSelector(LoadNotes("../../weather_notes"))

	assert.Equal(t, "The clouds are having a little cry. Let them.", s.Select(lightRain(), 51.5, -0.1, june1))
}
