package nutrition

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// MealKeySeparator joins nested category names into a flat meal key,
// e.g. "Fruits > Apple".
const MealKeySeparator = " > "

// CalorieTable maps a flat meal key to kilocalories per 100 units.
// It is built once and never modified.
type CalorieTable struct {
	meals map[string]float64
}

func LoadCalorieTable(path string) (*CalorieTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calorie data %s: %w", path, err)
	}
	return ParseCalorieTable(data)
}

func ParseCalorieTable(data []byte) (*CalorieTable, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]interface{}
	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decode calorie data: %w", err)
	}

	meals := map[string]float64{}
	flattenMeals(raw, "", meals)
	return &CalorieTable{meals: meals}, nil
}

// NewCalorieTable copies meals so later changes by the caller are not seen.
func NewCalorieTable(meals map[string]float64) *CalorieTable {
	copied := make(map[string]float64, len(meals))
	for name, calories := range meals {
		copied[name] = calories
	}
	return &CalorieTable{meals: copied}
}

func flattenMeals(data map[string]interface{}, prefix string, out map[string]float64) {
	for key, value := range data {
		switch v := value.(type) {
		case map[string]interface{}:
			flattenMeals(v, prefix+key+MealKeySeparator, out)
		case json.Number:
			if calories, err := v.Float64(); err == nil {
				out[prefix+key] = calories
			}
		case float64:
			out[prefix+key] = v
		}
	}
}

func (t *CalorieTable) Lookup(meal string) (float64, bool) {
	calories, ok := t.meals[meal]
	return calories, ok
}

func (t *CalorieTable) Len() int {
	return len(t.meals)
}

// Meals returns a copy of the flattened table.
func (t *CalorieTable) Meals() map[string]float64 {
	meals := make(map[string]float64, len(t.meals))
	for name, calories := range t.meals {
		meals[name] = calories
	}
	return meals
}
