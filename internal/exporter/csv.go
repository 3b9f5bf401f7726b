// internal/exporter/csv.go
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "fastfood-insights/internal/errors"
	"fastfood-insights/internal/models"
)

const stage = "export"

// CSVWriter writes the enriched dataset: every ingested column in its
// original order, followed by category and sub_category.
type CSVWriter struct {
	logger *slog.Logger
}

func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	return &CSVWriter{logger: logger}
}

func (w *CSVWriter) WriteEnriched(path string, ds *models.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewIOError(stage, fmt.Sprintf("cannot create output directory for %q", path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewIOError(stage, fmt.Sprintf("cannot create output %q", path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := append(append([]string{}, ds.Columns...), models.ColCategory, models.ColSubCategory)
	if err := cw.Write(header); err != nil {
		return apperrors.NewIOError(stage, "cannot write header", err)
	}

	for i := range ds.Records {
		rec := &ds.Records[i]
		row := append(rec.Row(ds.Columns),
			string(rec.Category),
			models.JoinSubCategories(rec.SubCategories))
		if err := cw.Write(row); err != nil {
			return apperrors.NewIOError(stage, fmt.Sprintf("cannot write row %d", i), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.NewIOError(stage, "cannot flush output", err)
	}

	w.logger.Info("enriched dataset exported",
		slog.String("path", path),
		slog.Int("records", len(ds.Records)))
	return nil
}
