package weather

import (
	"math"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in           string
		hour, minute int
		ok           bool
	}{
		{"06:42 AM", 6, 42, true},
		{"6:05 am", 6, 5, true},
		{"12:00 AM", 0, 0, true},
		{"12:30 PM", 12, 30, true},
		{"09:15 PM", 21, 15, true},
		{" 7:59pm ", 19, 59, true},
		{"18:00", 0, 0, false},
		{"No sunrise", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		h, m, ok := ParseClock(tt.in)
		if h != tt.hour || m != tt.minute || ok != tt.ok {
			t.Errorf("ParseClock(%q) = (%d, %d, %v), want (%d, %d, %v)", tt.in, h, m, ok, tt.hour, tt.minute, tt.ok)
		}
	}
}

func utcWindow(day time.Time, hhmm ...[2]int) Window {
	w := make(Window, len(hhmm))
	for i, c := range hhmm {
		at := time.Date(day.Year(), day.Month(), day.Day(), c[0], c[1], 0, 0, time.UTC)
		w[i] = Record{"time_epoch": float64(at.Unix())}
	}
	return w
}

func TestSolarCurve_DefaultDaylight(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	w := utcWindow(day, [2]int{5, 0}, [2]int{6, 0}, [2]int{9, 0}, [2]int{12, 0}, [2]int{18, 0}, [2]int{19, 0})

	got := SolarCurve(w, nil, time.UTC)

	want := []float64{0, 0, math.Sin(math.Pi / 4), 1, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("value %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestSolarCurve_AstroTimes(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	astro := &Astro{Sunrise: "05:30 AM", Sunset: "08:30 PM"}
	w := utcWindow(day, [2]int{5, 29}, [2]int{5, 30}, [2]int{13, 0}, [2]int{20, 30}, [2]int{20, 31})

	got := SolarCurve(w, astro, nil)

	if got[0] != 0 || got[4] != 0 {
		t.Errorf("expected zero outside daylight, got %v", got)
	}
	if got[1] != 0 {
		t.Errorf("expected sin(0) at sunrise, got %f", got[1])
	}
	if math.Abs(got[2]-1) > 1e-9 {
		t.Errorf("expected peak at midpoint, got %f", got[2])
	}
	if math.Abs(got[3]) > 1e-9 {
		t.Errorf("expected ~0 at sunset, got %f", got[3])
	}
}

func TestSolarCurve_MalformedAstroFallsBack(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	w := utcWindow(day, [2]int{12, 0})

	got := SolarCurve(w, &Astro{Sunrise: "dawn", Sunset: "08:30 PM"}, time.UTC)

	if math.Abs(got[0]-1) > 1e-9 {
		t.Errorf("expected default daylight peak at noon, got %f", got[0])
	}
}

func TestSolarCurve_AnchorsOnFirstRecordDay(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	w := utcWindow(day, [2]int{12, 0})
	w = append(w, Record{"time_epoch": float64(day.AddDate(0, 0, 1).Add(12 * time.Hour).Unix())})

	got := SolarCurve(w, nil, time.UTC)

	if got[1] != 0 {
		t.Errorf("expected next-day noon outside the first day's daylight, got %f", got[1])
	}
}

func TestSolarCurve_Empty(t *testing.T) {
	if got := SolarCurve(nil, nil, nil); len(got) != 0 {
		t.Errorf("expected empty curve, got %v", got)
	}
}

func TestSolarCurve_UsesLocationZone(t *testing.T) {
	tz := time.FixedZone("UTC+10", 10*3600)
	// 12:00 local is 02:00 UTC.
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, tz)
	w := Window{Record{"time_epoch": float64(at.Unix())}}

	if got := SolarCurve(w, nil, tz); math.Abs(got[0]-1) > 1e-9 {
		t.Errorf("expected local noon peak, got %f", got[0])
	}
	if got := SolarCurve(w, nil, time.UTC); got[0] != 0 {
		t.Errorf("expected 02:00 UTC to be dark, got %f", got[0])
	}
}
