package weather

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// Default daylight used when astronomy data is missing or unreadable.
const (
	defaultSunriseHour = 6
	defaultSunsetHour  = 18
)

// ParseClock converts "H:MM AM" style text to a 24-hour hour and minute.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

// SolarCurve estimates relative sun intensity in [0,1] for each record of
// the window: a half sine between sunrise and sunset on the calendar day of
// the first record, zero outside it. loc is the zone the astronomy times are
// expressed in; nil means UTC.
func SolarCurve(w Window, astro *Astro, loc *time.Location) []float64 {
	out := make([]float64, len(w))
	if len(w) == 0 {
		return out
	}
	if loc == nil {
		loc = time.UTC
	}

	riseH, riseM, setH, setM := defaultSunriseHour, 0, defaultSunsetHour, 0
	if astro != nil {
		rh, rm, rok := ParseClock(astro.Sunrise)
		sh, sm, sok := ParseClock(astro.Sunset)
		if rok && sok {
			riseH, riseM, setH, setM = rh, rm, sh, sm
		}
	}

	base := time.Unix(w[0].Epoch(), 0).In(loc)
	y, mo, d := base.Date()
	sunrise := time.Date(y, mo, d, riseH, riseM, 0, 0, loc).Unix()
	sunset := time.Date(y, mo, d, setH, setM, 0, 0, loc).Unix()
	if sunset <= sunrise {
		return out
	}

	span := float64(sunset - sunrise)
	for i, r := range w {
		e := r.Epoch()
		if e >= sunrise && e <= sunset {
			out[i] = math.Sin(math.Pi * float64(e-sunrise) / span)
		}
	}
	return out
}
