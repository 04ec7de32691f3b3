package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRainChance(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want float64
		ok   bool
	}{
		{"daily chance wins", Record{"daily_chance_of_rain": 40.0, "chance_of_rain": 90.0, "pop": 10.0}, 40, true},
		{"hourly chance", Record{"chance_of_rain": 90.0, "chanceofrain": "20"}, 90, true},
		{"alternate spelling as text", Record{"chanceofrain": "20", "pop": 70.0}, 20, true},
		{"pop", Record{"pop": 70.0, "will_it_rain": 1.0}, 70, true},
		{"will it rain set", Record{"will_it_rain": 1.0}, 100, true},
		{"will it rain unset", Record{"will_it_rain": 0.0}, 0, true},
		{"null fields are skipped", Record{"daily_chance_of_rain": nil, "pop": 5.0}, 5, true},
		{"amount alone is not a chance", Record{"precip_mm": 2.0}, 0, false},
		{"nothing", Record{}, 0, false},
		{"nil record", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RainChance(tt.rec)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRainAmount(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want float64
	}{
		{"precip wins over chance", Record{"precip_mm": 0.0, "chance_of_rain": 80.0}, 0},
		{"daily total", Record{"totalprecip_mm": 3.1, "chance_of_rain": 80.0}, 3.1},
		{"chance as fallback", Record{"chance_of_rain": 80.0, "chanceofrain": 20.0}, 80},
		{"alternate spelling", Record{"chanceofrain": 20.0}, 20},
		{"will it rain is ignored", Record{"will_it_rain": 1.0, "pop": 50.0}, 0},
		{"nothing", Record{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RainAmount(tt.rec))
		})
	}
}

func TestRainChanceText(t *testing.T) {
	assert.Equal(t, "84%", RainChanceText(Record{"chance_of_rain": 84.0}))
	assert.Equal(t, "0.8 mm", RainChanceText(Record{"precip_mm": 0.8}))
	assert.Equal(t, "—", RainChanceText(Record{}))
}
