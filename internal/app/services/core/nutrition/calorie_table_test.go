package nutrition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCalories = `{
	"Fruits": {"Apple": 52, "Banana": 89},
	"Grains": {"Rice": {"White": 130, "Brown": 111.5}},
	"Water": 0,
	"Note": "per 100g"
}`

func TestParseCalorieTable(t *testing.T) {
	table, err := ParseCalorieTable([]byte(sampleCalories))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"Fruits > Apple":        52,
		"Fruits > Banana":       89,
		"Grains > Rice > White": 130,
		"Grains > Rice > Brown": 111.5,
		"Water":                 0,
	}, table.Meals())

	calories, ok := table.Lookup("Grains > Rice > Brown")
	assert.True(t, ok)
	assert.Equal(t, 111.5, calories)

	_, ok = table.Lookup("Apple")
	assert.False(t, ok)
}

func TestParseCalorieTable_Invalid(t *testing.T) {
	_, err := ParseCalorieTable([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestLoadCalorieTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calories.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCalories), 0o600))

	table, err := LoadCalorieTable(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	_, err = LoadCalorieTable(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCalorieTable_IsImmutable(t *testing.T) {
	source := map[string]float64{"Fruits > Apple": 52}
	table := NewCalorieTable(source)

	source["Fruits > Apple"] = 1
	meals := table.Meals()
	meals["Fruits > Apple"] = 2

	calories, _ := table.Lookup("Fruits > Apple")
	assert.Equal(t, float64(52), calories)
}
