package weather

import (
	"strings"

	"github.com/i474232898/overcast/internal/common"
)

// Classify maps current conditions to a quip category. Rules are checked in
// priority order and the first match wins; unknown fields never match.
func Classify(obs *Observation) (Category, bool) {
	if obs.Empty() {
		return "", false
	}

	text := strings.ToLower(obs.Condition)
	temp := obs.TempC

	atLeast := func(v *float64, limit float64) bool { return v != nil && *v >= limit }
	atMost := func(v *float64, limit float64) bool { return v != nil && *v <= limit }

	switch {
	case common.HasAny(text, "thunder"):
		return CategoryThunderstorm, true
	case common.HasAny(text, "storm", "squall"):
		return CategoryStormy, true
	case common.HasAny(text, "snow", "sleet", "blizzard", "ice"):
		return CategorySnowy, true
	case common.HasAny(text, "rain", "drizzle", "shower") || (obs.PrecipMm != nil && *obs.PrecipMm > 0.5):
		return CategoryRainy, true
	case common.HasAny(text, "fog", "mist", "haze", "smoke"):
		return CategoryFoggy, true
	case atLeast(obs.WindKph, 40):
		return CategoryWindy, true
	case atLeast(temp, 30):
		return CategoryHot, true
	case atMost(temp, 0):
		return CategoryCold, true
	case atLeast(obs.Humidity, 85) && atLeast(temp, 20):
		return CategoryHumid, true
	case atLeast(obs.Cloud, 70) || common.HasAny(text, "cloud", "overcast"):
		return CategoryCloudy, true
	case atLeast(temp, 10) && atMost(temp, 25):
		return CategoryMild, true
	case atMost(temp, 5):
		// Only 0 < t <= 5 gets here.
		return CategoryCold, true
	}
	return "", false
}
