package weather

import (
	"sort"
	"time"
)

// WindowSize is the number of hourly entries in a forecast window.
const WindowSize = 24

// Window is an ordered run of hourly records. It shares the records of the
// source document.
type Window []Record

// BuildWindow flattens the hourly records of days, orders them by epoch and
// returns up to WindowSize entries starting at the first record at or after
// ref. When no record is that late the window starts at the earliest one.
func BuildWindow(days []ForecastDay, ref int64) Window {
	var hours []Record
	for _, d := range days {
		hours = append(hours, d.Hour...)
	}
	if len(hours) == 0 {
		return Window{}
	}

	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Epoch() < hours[j].Epoch()
	})

	start := sort.Search(len(hours), func(i int) bool {
		return hours[i].Epoch() >= ref
	})
	if start == len(hours) {
		start = 0
	}

	end := start + WindowSize
	if end > len(hours) {
		end = len(hours)
	}
	return Window(hours[start:end])
}

// ReferenceEpoch picks the instant a window starts from: the upstream's
// last update, then the location's local time, then now.
func ReferenceEpoch(doc *Document, now time.Time) int64 {
	if doc != nil {
		if v, ok := doc.Current.Number("last_updated_epoch"); ok && v != 0 {
			return int64(v)
		}
		if doc.Location.LocaltimeEpoch != 0 {
			return doc.Location.LocaltimeEpoch
		}
	}
	return now.Unix()
}

// Epochs returns the timestamps of the window's records.
func (w Window) Epochs() []int64 {
	out := make([]int64, len(w))
	for i, r := range w {
		out[i] = r.Epoch()
	}
	return out
}
