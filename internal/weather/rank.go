package weather

// Rank is a labelled band for a single reading.
type Rank struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

// UVRank bands a UV index.
func UVRank(uv *float64) Rank {
	if uv == nil {
		return Rank{}
	}
	switch v := *uv; {
	case v <= 2:
		return Rank{"Low", "Low UV — minimal protection needed", "low"}
	case v <= 5:
		return Rank{"Moderate", "Moderate UV — take precautions", "ok"}
	case v <= 7:
		return Rank{"High", "High UV — protection recommended", "high"}
	case v <= 10:
		return Rank{"Very high", "Very high UV — extra protection required", "very"}
	default:
		return Rank{"Extreme", "Extreme UV — avoid sun exposure", "extreme"}
	}
}

// HumidityRank bands relative humidity in percent.
func HumidityRank(h *float64) Rank {
	if h == nil {
		return Rank{}
	}
	switch v := *h; {
	case v < 30:
		return Rank{"Dry", "Low humidity — air may feel dry", "low"}
	case v < 60:
		return Rank{"Comfortable", "Pleasant humidity", "ok"}
	case v < 75:
		return Rank{"Humid", "Moderately humid — may feel sticky", "high"}
	default:
		return Rank{"Very humid", "High humidity — can feel oppressive", "very"}
	}
}

// WindRank bands wind speed in kph.
func WindRank(w *float64) Rank {
	if w == nil {
		return Rank{}
	}
	switch v := *w; {
	case v < 12:
		return Rank{"Calm", "Little to no wind", "calm"}
	case v < 30:
		return Rank{"Light", "Light breeze", "light"}
	case v < 60:
		return Rank{"Breezy", "Noticeable wind", "breezy"}
	default:
		return Rank{"Windy", "Strong wind — take care", "strong"}
	}
}
