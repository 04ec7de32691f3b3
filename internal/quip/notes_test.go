package quip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/overcast/internal/weather"
)

func TestParseNotes(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, ParseNotes("one\n\ntwo\r\nthree\n"))
	assert.Equal(t, []string{"  indented  "}, ParseNotes("  indented  \n"))
	assert.Empty(t, ParseNotes(""))
	assert.Empty(t, ParseNotes("\n\r\n\n"))
}

func TestLoadNotes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rainy.txt"), []byte("Wet.\n\nVery wet.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cold.txt"), []byte("Brr.\r\n"), 0o644))

	n := LoadNotes(dir)

	assert.Len(t, n, len(weather.Categories))
	assert.Equal(t, []string{"Wet.", "Very wet."}, n[weather.CategoryRainy])
	assert.Equal(t, []string{"Brr."}, n[weather.CategoryCold])
	assert.NotNil(t, n[weather.CategoryHot])
	assert.Empty(t, n[weather.CategoryHot])
	assert.Equal(t, []weather.Category{weather.CategoryCold, weather.CategoryRainy}, n.Available())
	assert.Equal(t, 3, n.Count())
}

func TestLoadNotes_MissingDirectory(t *testing.T) {
	n := LoadNotes(filepath.Join(t.TempDir(), "nope"))

	assert.Len(t, n, len(weather.Categories))
	assert.Empty(t, n.Available())
	assert.Zero(t, n.Count())
}

func TestLoadNotes_BundledFiles(t *testing.T) {
	n := LoadNotes("../../weather_notes")

	assert.Equal(t, weather.Categories, n.Available())
	assert.Equal(t, "Bring an umbrella. Then forget it somewhere. Classic.", n[weather.CategoryRainy][0])
}

func TestNewNotes_Copies(t *testing.T) {
	src := map[weather.Category][]string{weather.CategoryMild: {"a"}}
	n := NewNotes(src)
	src[weather.CategoryMild][0] = "changed"

	assert.Equal(t, []string{"a"}, n[weather.CategoryMild])
	assert.Len(t, n, len(weather.Categories))
}
