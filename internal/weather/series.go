package weather

import (
	"math"
	"time"
)

// Series holds the parallel per-hour values charted for a window.
type Series struct {
	Labels      []string   `json:"labels"`
	Temperature []*float64 `json:"temperature"`
	Humidity    []*float64 `json:"humidity"`
	UV          []*float64 `json:"uv"`
	Rain        []float64  `json:"rain"`
	Sun         []int      `json:"sun"`
}

// BuildSeries extracts the chart series of a window. Sun values are percent
// of the day's peak.
func BuildSeries(w Window, astro *Astro, loc *time.Location) Series {
	s := Series{
		Labels:      make([]string, len(w)),
		Temperature: make([]*float64, len(w)),
		Humidity:    make([]*float64, len(w)),
		UV:          make([]*float64, len(w)),
		Rain:        make([]float64, len(w)),
		Sun:         make([]int, len(w)),
	}
	sun := SolarCurve(w, astro, loc)
	for i, r := range w {
		s.Labels[i] = r.ClockLabel()
		s.Temperature[i] = r.NumberPtr("temp_c")
		s.Humidity[i] = r.NumberPtr("humidity")
		s.UV[i] = r.NumberPtr("uv")
		s.Rain[i] = RainAmount(r)
		s.Sun[i] = int(math.Floor(sun[i]*100 + 0.5))
	}
	return s
}

// HourSummary is one row of the processed window.
type HourSummary struct {
	Time       string   `json:"time"`
	Epoch      int64    `json:"time_epoch"`
	TempC      *float64 `json:"temp_c"`
	Condition  string   `json:"condition,omitempty"`
	RainChance *float64 `json:"rain_chance"`
	RainAmount float64  `json:"rain_amount"`
	Sun        float64  `json:"sun"`
}

// Insights is the processed view of a forecast document.
type Insights struct {
	Location   LocationInfo    `json:"location"`
	CacheAge   int64           `json:"cache_age"`
	Quip       string          `json:"weather_quip"`
	Current    *Observation    `json:"current"`
	RainChance string          `json:"rain_chance"`
	Ranks      map[string]Rank `json:"ranks"`
	Theme      Theme           `json:"theme"`
	Hours      []HourSummary   `json:"hours"`
	Series     Series          `json:"series"`
}

// BuildInsights derives the window, signals, ranks and theme of doc.
func BuildInsights(doc *Document, now time.Time) *Insights {
	obs := doc.Observation()
	loc := doc.Location.TimeZone()
	astro := doc.FirstAstro()

	w := BuildWindow(doc.Forecast.ForecastDay, ReferenceEpoch(doc, now))
	sun := SolarCurve(w, astro, loc)

	hours := make([]HourSummary, len(w))
	for i, r := range w {
		h := HourSummary{
			Time:       r.String("time"),
			Epoch:      r.Epoch(),
			TempC:      r.NumberPtr("temp_c"),
			Condition:  r.Sub("condition").String("text"),
			RainAmount: RainAmount(r),
			Sun:        sun[i],
		}
		if pct, ok := RainChance(r); ok {
			h.RainChance = &pct
		}
		hours[i] = h
	}

	in := &Insights{
		Location:   doc.Location,
		Current:    obs,
		RainChance: RainChanceText(doc.Current),
		Theme:      ThemeFor(obs),
		Hours:      hours,
		Series:     BuildSeries(w, astro, loc),
		Ranks:      map[string]Rank{},
	}
	if obs != nil {
		in.Ranks["uv"] = UVRank(obs.UV)
		in.Ranks["humidity"] = HumidityRank(obs.Humidity)
		in.Ranks["wind"] = WindRank(obs.WindKph)
	}
	return in
}
