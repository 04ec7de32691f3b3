package quip

import (
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/i474232898/overcast/internal/weather"
)

// Notes maps every category to its quips. Built once, then only read.
type Notes map[weather.Category][]string

var lineBreak = regexp.MustCompile(`\r?\n`)

// NewNotes returns a collection holding every category, copying the lists
// given in m.
func NewNotes(m map[weather.Category][]string) Notes {
	n := make(Notes, len(weather.Categories))
	for _, c := range weather.Categories {
		n[c] = append([]string(nil), m[c]...)
	}
	return n
}

// LoadNotes reads <dir>/<category>.txt for every category. Blank lines are
// dropped; a missing file leaves the category empty.
func LoadNotes(dir string) Notes {
	n := make(Notes, len(weather.Categories))
	for _, c := range weather.Categories {
		file := filepath.Join(dir, string(c)+".txt")
		raw, err := os.ReadFile(file)
		if err != nil {
			log.Printf("WARN: could not read notes file for %s: %s", c, file)
			n[c] = []string{}
			continue
		}
		n[c] = ParseNotes(string(raw))
	}
	return n
}

// ParseNotes splits a notes file into quips.
func ParseNotes(raw string) []string {
	lines := []string{}
	for _, l := range lineBreak.Split(raw, -1) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Available returns the categories that have at least one quip, in
// canonical order.
func (n Notes) Available() []weather.Category {
	var out []weather.Category
	for _, c := range weather.Categories {
		if len(n[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the total number of quips loaded.
func (n Notes) Count() int {
	total := 0
	for _, l := range n {
		total += len(l)
	}
	return total
}
