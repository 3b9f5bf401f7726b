// internal/exporter/chart_test.go
package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fastfood-insights/internal/models"
)

func TestWriteCarbChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	ranks := []models.CarbRank{
		{Restaurant: "D", AvgCarbs: 1},
		{Restaurant: "B", AvgCarbs: 5},
		{Restaurant: "F", AvgCarbs: 8},
	}

	require.NoError(t, NewChartWriter(discardLogger()).WriteCarbChart(path, ranks))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), chartSheet)

	name, err := f.GetCellValue(chartSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "D", name)

	avg, err := f.GetCellValue(chartSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "8", avg)
}

func TestWriteCarbChart_EmptyRanking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")

	require.NoError(t, NewChartWriter(discardLogger()).WriteCarbChart(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(chartSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Restaurant", header)
}
