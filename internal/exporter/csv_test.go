// internal/exporter/csv_test.go
package exporter

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastfood-insights/internal/ingest"
	"fastfood-insights/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func enrichedDataset() *models.Dataset {
	return &models.Dataset{
		Columns: []string{
			models.ColRestaurant, models.ColItem, models.ColCalories, models.ColTotalCarb, "sodium",
		},
		Records: []models.FoodRecord{
			{
				Restaurant:    "Burger Barn",
				Item:          "Beef and Pork Burger",
				Calories:      "540",
				TotalCarb:     "45",
				Extra:         map[string]string{"sodium": "980"},
				Category:      models.CategoryMain,
				SubCategories: []models.SubCategory{models.SubBeef, models.SubPork},
			},
			{
				Restaurant: "Salad Stop",
				Item:       "Side Salad",
				Calories:   "120",
				TotalCarb:  "10",
				Extra:      map[string]string{"sodium": "300"},
				Category:   models.CategorySide,
			},
		},
	}
}

func TestWriteEnriched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := NewCSVWriter(discardLogger())

	require.NoError(t, w.WriteEnriched(path, enrichedDataset()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"restaurant", "item", "calories", "total_carb", "sodium", "category", "sub_category",
	}, rows[0])
	assert.Equal(t, []string{
		"Burger Barn", "Beef and Pork Burger", "540", "45", "980", "Main", "Beef,Pork",
	}, rows[1])
	assert.Equal(t, []string{
		"Salad Stop", "Side Salad", "120", "10", "300", "Side", "",
	}, rows[2])
}

// Exporting and re-importing must preserve category and subcategory
// membership exactly.
func TestWriteEnriched_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	ds := enrichedDataset()

	require.NoError(t, NewCSVWriter(discardLogger()).WriteEnriched(path, ds))

	reloaded, err := ingest.NewReader(discardLogger()).ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, ds.Columns, reloaded.Columns)
	require.Len(t, reloaded.Records, len(ds.Records))
	for i := range ds.Records {
		assert.Equal(t, ds.Records[i].Category, reloaded.Records[i].Category)
		assert.Equal(t, ds.Records[i].SubCategories, reloaded.Records[i].SubCategories)
	}
}

func TestWriteEnriched_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	ds := &models.Dataset{
		Columns: []string{models.ColRestaurant, models.ColItem, models.ColCalories, models.ColTotalCarb},
	}

	require.NoError(t, NewCSVWriter(discardLogger()).WriteEnriched(path, ds))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWriteEnriched_UnwritablePath(t *testing.T) {
	w := NewCSVWriter(discardLogger())
	err := w.WriteEnriched(filepath.Join(t.TempDir(), "missing", "\x00bad", "out.csv"), enrichedDataset())
	require.Error(t, err)
}
