package weather

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a loosely typed JSON object such as an hourly forecast entry.
type Record map[string]any

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Number returns key as a float64. Strings holding numbers are accepted;
// booleans count as 1 and 0.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// NumberPtr is Number returning nil when the field is unknown.
func (r Record) NumberPtr(key string) *float64 {
	v, ok := r.Number(key)
	if !ok {
		return nil
	}
	return &v
}

// Truthy follows the upstream's loose flags: non-zero numbers, non-empty
// strings and true are all set.
func (r Record) Truthy(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	n, ok := r.Number(key)
	return ok && n != 0
}

func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Sub returns a nested object, or nil.
func (r Record) Sub(key string) Record {
	switch m := r[key].(type) {
	case map[string]any:
		return Record(m)
	case Record:
		return m
	}
	return nil
}

// Epoch returns the record's time_epoch, 0 when absent.
func (r Record) Epoch() int64 {
	n, ok := r.Number("time_epoch")
	if !ok {
		return 0
	}
	return int64(n)
}

// ClockLabel returns the "HH:MM" part of the record's "YYYY-MM-DD HH:MM" time.
func (r Record) ClockLabel() string {
	t := r.String("time")
	if i := strings.IndexByte(t, ' '); i >= 0 {
		return t[i+1:]
	}
	return ""
}
