package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/i474232898/overcast/internal/weather"
)

// Render writes an HTML page charting the 24-hour series: temperature,
// rain, relative sun, UV index and humidity.
func Render(w io.Writer, title string, s weather.Series) error {
	page := components.NewPage()
	page.PageTitle = title

	page.AddCharts(
		lineChart("Temperature (°C)", "Temp (°C)", s.Labels, nullable(s.Temperature)),
		rainChart(s.Labels, s.Rain),
		lineChart("Sun (relative)", "Sun (relative)", s.Labels, ints(s.Sun)),
		lineChart("UV index", "UV index", s.Labels, nullable(s.UV)),
		lineChart("Humidity (%)", "Humidity (%)", s.Labels, nullable(s.Humidity)),
	)

	return page.Render(w)
}

func lineChart(title, name string, labels []string, data []opts.LineData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "280px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(labels).AddSeries(name, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

func rainChart(labels []string, rain []float64) *charts.Bar {
	data := make([]opts.BarData, len(rain))
	for i, v := range rain {
		data[i] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "280px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Rain (mm)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels).AddSeries("Rain (mm)", data)
	return bar
}

// nullable leaves gaps where a reading is missing.
func nullable(values []*float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: *v}
	}
	return data
}

func ints(values []int) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
