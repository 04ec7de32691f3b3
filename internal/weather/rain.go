package weather

import "strconv"

type fieldKind int

const (
	fieldNumber fieldKind = iota
	// fieldFlag maps a truthy value to 100 and anything else to 0.
	fieldFlag
)

type rainField struct {
	key  string
	kind fieldKind
}

// Percent-first lookup used for "chance of rain" text.
var rainChanceFields = []rainField{
	{"daily_chance_of_rain", fieldNumber},
	{"chance_of_rain", fieldNumber},
	{"chanceofrain", fieldNumber},
	{"pop", fieldNumber},
	{"will_it_rain", fieldFlag},
}

// Amount-first lookup used for the hourly rain chart.
var rainAmountFields = []rainField{
	{"precip_mm", fieldNumber},
	{"totalprecip_mm", fieldNumber},
	{"chance_of_rain", fieldNumber},
	{"chanceofrain", fieldNumber},
}

func lookupRain(r Record, fields []rainField) (float64, bool) {
	for _, f := range fields {
		if !r.Has(f.key) {
			continue
		}
		switch f.kind {
		case fieldFlag:
			if r.Truthy(f.key) {
				return 100, true
			}
			return 0, true
		default:
			if v, ok := r.Number(f.key); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// RainChance returns the chance of rain in percent, if any field carries one.
func RainChance(r Record) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return lookupRain(r, rainChanceFields)
}

// RainAmount returns the rain signal plotted per hour: millimetres when
// available, otherwise a chance in percent, otherwise 0.
func RainAmount(r Record) float64 {
	if r == nil {
		return 0
	}
	v, _ := lookupRain(r, rainAmountFields)
	return v
}

// RainChanceText renders the chance of rain for display, falling back to
// the precipitation amount.
func RainChanceText(r Record) string {
	if pct, ok := RainChance(r); ok {
		return formatNumber(pct) + "%"
	}
	if mm, ok := r.Number("precip_mm"); ok {
		return formatNumber(mm) + " mm"
	}
	return "—"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
