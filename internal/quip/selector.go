package quip

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/i474232898/overcast/internal/weather"
)

// Selector picks a quip for the current conditions. The same category,
// coordinates and calendar day always give the same quip.
type Selector struct {
	notes Notes
}

func NewSelector(notes Notes) *Selector {
	return &Selector{notes: notes}
}

// DaySeed concatenates year, month (1-based) and day as decimal text,
// without padding: 2024-03-07 gives 202437.
func DaySeed(t time.Time) int64 {
	y, m, d := t.Date()
	seed, _ := strconv.ParseInt(fmt.Sprintf("%d%d%d", y, int(m), d), 10, 64)
	return seed
}

// CoordSeed is round(lat*100) + round(lon*100).
func CoordSeed(lat, lon float64) int64 {
	return weather.RoundHalfUp(lat*100) + weather.RoundHalfUp(lon*100)
}

// Select returns a quip, or "" when no category has any.
func (s *Selector) Select(obs *weather.Observation, lat, lon float64, today time.Time) string {
	available := s.notes.Available()
	if len(available) == 0 {
		return ""
	}

	base := DaySeed(today) + CoordSeed(lat, lon)

	category, ok := weather.Classify(obs)
	if !ok || len(s.notes[category]) == 0 {
		category = available[pick(base, len(available))]
	}

	list := s.notes[category]
	if len(list) == 0 {
		return ""
	}
	return list[pick(base+int64(len(category)), len(list))]
}

// pick draws one value from a fresh generator and scales it to [0,n).
func pick(seed int64, n int) int {
	i := int(math.Floor(NewMulberry32(seed).Next() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
