package weather

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/i474232898/overcast/internal/common"
)

// Theme is the background palette a client paints for the current weather.
type Theme struct {
	Top     string `json:"top"`
	Mid     string `json:"mid"`
	Bottom  string `json:"bottom"`
	Bubble1 string `json:"bubble1"`
	Bubble2 string `json:"bubble2"`
}

var defaultTheme = Theme{
	Top:     "#f3f7ff",
	Mid:     "#fbfdff",
	Bottom:  "#fff6f2",
	Bubble1: "rgba(255,220,180,0.12)",
	Bubble2: "rgba(180,210,255,0.10)",
}

var conditionThemes = []struct {
	keywords []string
	theme    Theme
}{
	{[]string{"sun", "clear"}, Theme{"#fff9f0", "#fffefc", "#fff6e8", "rgba(255,200,100,0.14)", "rgba(255,240,200,0.06)"}},
	{[]string{"cloud", "overcast"}, Theme{"#adadaeff", "#d6d7d7ff", "#d3d5d6ff", "rgba(200,210,230,0.10)", "rgba(180,190,210,0.08)"}},
	{[]string{"rain", "drizzle"}, Theme{"#bed1ebff", "#dcf0ffff", "#f8fbfd", "rgba(160,190,230,0.12)", "rgba(120,160,210,0.10)"}},
	{[]string{"storm", "thunder"}, Theme{"#adadaeff", "#d6d7d7ff", "#d3d5d6ff", "rgba(140,150,180,0.12)", "rgba(100,110,130,0.12)"}},
	{[]string{"snow"}, Theme{"#ffffffff", "#e8eaebff", "#d7d7d7ff", "rgba(220,235,255,0.12)", "rgba(200,220,255,0.08)"}},
	{[]string{"fog", "mist"}, Theme{"#c0cddbff", "#e3e5e7ff", "#f8f8f9", "rgba(200,200,210,0.08)", "rgba(220,220,230,0.06)"}},
}

// ThemeFor derives the palette from the condition text, then warms or cools
// it by temperature and darkens it at night.
func ThemeFor(obs *Observation) Theme {
	t := defaultTheme
	if obs == nil {
		return t
	}

	text := strings.ToLower(obs.Condition)
	for _, ct := range conditionThemes {
		if common.HasAny(text, ct.keywords...) {
			t = ct.theme
			break
		}
	}

	if obs.TempC != nil {
		switch temp := *obs.TempC; {
		case temp >= 28:
			t.Top = ShadeBlend(0.08, t.Top, "#fff0e6")
			t.Mid = ShadeBlend(0.05, t.Mid, "#fff5ee")
		case temp <= 8:
			t.Top = ShadeBlend(0.08, t.Top, "#eaf6ff")
			t.Mid = ShadeBlend(0.05, t.Mid, "#f4fbff")
		}
	}

	if obs.IsDay != nil && !*obs.IsDay {
		t.Top = ShadeBlend(0.9, t.Top, "#0b2540")
		t.Mid = ShadeBlend(0.3, t.Mid, "#071830")
		t.Bottom = ShadeBlend(0.1, t.Bottom, "#061226")
		t.Bubble1 = "rgba(80,110,150,0.10)"
		t.Bubble2 = "rgba(50,80,120,0.06)"
	}
	return t
}

type rgb struct{ r, g, b float64 }

var rgbPattern = regexp.MustCompile(`(?i)rgba?\(\s*([\d.]+%?)\s*[\s,]\s*([\d.]+%?)\s*[\s,]\s*([\d.]+%?)(?:\s*[/,]\s*([\d.]+%?))?\s*\)`)

// parseColor accepts #RGB, #RGBA, #RRGGBB, #RRGGBBAA and rgb()/rgba();
// alpha is ignored.
func parseColor(s string) (rgb, bool) {
	in := strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(in), "rgb") {
		m := rgbPattern.FindStringSubmatch(in)
		if m == nil {
			return rgb{}, false
		}
		return rgb{channel(m[1]), channel(m[2]), channel(m[3])}, true
	}

	hex := strings.TrimPrefix(in, "#")
	switch len(hex) {
	case 3, 4:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
		hex = hex[:6]
	default:
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, true
}

func channel(v string) float64 {
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		f, _ := strconv.ParseFloat(pct, 64)
		return math.Round(clamp(f, 0, 100) * 2.55)
	}
	f, _ := strconv.ParseFloat(v, 64)
	return math.Round(clamp(f, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ShadeBlend moves colour from toward to by t in [0,1] and returns
// #rrggbb. from is returned untouched if either colour can't be read.
func ShadeBlend(t float64, from, to string) string {
	f, ok := parseColor(from)
	if !ok {
		return from
	}
	d, ok := parseColor(to)
	if !ok {
		return from
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	mix := func(a, b float64) int {
		return int(clamp(math.Floor(a+(b-a)*t+0.5), 0, 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(f.r, d.r), mix(f.g, d.g), mix(f.b, d.b))
}
