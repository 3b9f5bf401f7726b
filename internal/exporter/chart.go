// internal/exporter/chart.go
package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "fastfood-insights/internal/errors"
	"fastfood-insights/internal/models"
)

const chartSheet = "Top Restaurants"

// ChartWriter renders the carb ranking as an xlsx workbook: one data sheet
// and a column chart over it. The ranking arrives already ordered; the chart
// only presents it.
type ChartWriter struct {
	logger *slog.Logger
}

func NewChartWriter(logger *slog.Logger) *ChartWriter {
	return &ChartWriter{logger: logger}
}

func (w *ChartWriter) WriteCarbChart(path string, ranks []models.CarbRank) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", chartSheet); err != nil {
		return apperrors.NewIOError(stage, "cannot name chart sheet", err)
	}
	if err := f.SetCellValue(chartSheet, "A1", "Restaurant"); err != nil {
		return apperrors.NewIOError(stage, "cannot write chart header", err)
	}
	if err := f.SetCellValue(chartSheet, "B1", "Average Carbs"); err != nil {
		return apperrors.NewIOError(stage, "cannot write chart header", err)
	}
	for i, r := range ranks {
		row := i + 2
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("A%d", row), r.Restaurant); err != nil {
			return apperrors.NewIOError(stage, fmt.Sprintf("cannot write chart row %d", i), err)
		}
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("B%d", row), r.AvgCarbs); err != nil {
			return apperrors.NewIOError(stage, fmt.Sprintf("cannot write chart row %d", i), err)
		}
	}

	// An empty ranking still produces a workbook, just without a chart:
	// a chart over an empty range is not representable.
	if len(ranks) > 0 {
		chart := &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("'%s'!$B$1", chartSheet),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", chartSheet, len(ranks)+1),
				Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", chartSheet, len(ranks)+1),
			}},
			Title: []excelize.RichTextRun{
				{Text: "Top 5 Restaurants by Average Carbs"},
			},
		}
		if err := f.AddChart(chartSheet, "D2", chart); err != nil {
			return apperrors.NewIOError(stage, "cannot add chart", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewIOError(stage, fmt.Sprintf("cannot create output directory for %q", path), err)
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewIOError(stage, fmt.Sprintf("cannot save chart workbook %q", path), err)
	}

	w.logger.Info("carb ranking chart exported",
		slog.String("path", path),
		slog.Int("entries", len(ranks)))
	return nil
}
