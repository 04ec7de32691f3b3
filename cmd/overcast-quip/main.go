// Command overcast-quip prints the quip and 24-hour window for a saved
// WeatherAPI forecast document.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	flag "github.com/spf13/pflag"

	"github.com/i474232898/overcast/internal/quip"
	"github.com/i474232898/overcast/internal/weather"
)

const flagDateFormat = "2006-01-02"

func main() {
	var forecastFile = flag.StringP("forecast", "f", "", "path to a forecast.json document")
	var notesDir = flag.StringP("notes", "n", "weather_notes", "directory holding <category>.txt quip files")
	var dateFlag = flag.StringP("date", "d", "", "calendar date used to seed the quip (yyyy-mm-dd), default is today")
	var lat = flag.Float64("lat", 0, "latitude used to seed the quip, default is the document's location")
	var lon = flag.Float64("lon", 0, "longitude used to seed the quip, default is the document's location")
	var showWindow = flag.BoolP("window", "w", false, "print the next 24 hours")

	flag.Parse()

	if *forecastFile == "" {
		flag.Usage()
		log.Fatal("please specify a forecast file")
	}

	today := time.Now()
	if *dateFlag != "" {
		t, err := time.ParseInLocation(flagDateFormat, *dateFlag, time.Local)
		if err != nil {
			log.Fatal(err)
		}
		today = t
	}

	body, err := os.ReadFile(*forecastFile)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := weather.ParseDocument(body)
	if err != nil {
		log.Fatal(err)
	}

	if !flag.CommandLine.Changed("lat") {
		*lat = doc.Location.Lat
	}
	if !flag.CommandLine.Changed("lon") {
		*lon = doc.Location.Lon
	}

	notes := quip.LoadNotes(*notesDir)
	obs := doc.Observation()
	category, _ := weather.Classify(obs)

	fmt.Printf("category: %s\n", orDash(string(category)))
	fmt.Printf("quip:     %s\n", orDash(quip.NewSelector(notes).Select(obs, *lat, *lon, today)))
	fmt.Printf("rain:     %s\n", weather.RainChanceText(doc.Current))

	if *showWindow {
		printWindow(os.Stdout, doc, today)
	}
}

func printWindow(w io.Writer, doc *weather.Document, now time.Time) {
	in := weather.BuildInsights(doc, now)
	fmt.Fprintf(w, "\n%-17s %7s %8s %7s %5s\n", "time", "temp", "rain", "chance", "sun")
	for _, h := range in.Hours {
		temp, chance := "—", "—"
		if h.TempC != nil {
			temp = fmt.Sprintf("%.1f°C", *h.TempC)
		}
		if h.RainChance != nil {
			chance = fmt.Sprintf("%.0f%%", *h.RainChance)
		}
		fmt.Fprintf(w, "%-17s %7s %8.1f %7s %4.0f%%\n", h.Time, temp, h.RainAmount, chance, h.Sun*100)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
