// internal/ingest/csv.go
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	apperrors "fastfood-insights/internal/errors"
	"fastfood-insights/internal/models"
)

const stage = "ingest"

var requiredColumns = []string{
	models.ColRestaurant,
	models.ColItem,
	models.ColCalories,
	models.ColTotalCarb,
}

// Reader loads a delimited dataset from disk.
type Reader struct {
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadCSV loads the dataset at path. The header must contain the four
// required columns; every other column is carried through untouched. The
// derived columns are recognized too, so an enriched export can be read back.
// A header with zero data rows is a valid empty dataset.
func (r *Reader) ReadCSV(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError(stage, fmt.Sprintf("cannot open input %q", path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, apperrors.NewSchemaError(stage, "input has no header row", nil)
	}
	if err != nil {
		return nil, apperrors.NewSchemaError(stage, "cannot read header row", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, apperrors.NewSchemaError(stage, fmt.Sprintf("required column %q is missing", col), nil)
		}
	}

	// Base columns exclude the derived pair; SetValue routes those back into
	// the typed fields when an enriched file is re-imported.
	columns := make([]string, 0, len(header))
	for _, col := range header {
		if col != models.ColCategory && col != models.ColSubCategory {
			columns = append(columns, col)
		}
	}

	ds := &models.Dataset{Columns: columns}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, apperrors.NewSchemaError(stage,
					fmt.Sprintf("malformed row %d", parseErr.Line), err)
			}
			return nil, apperrors.NewIOError(stage, "cannot read input rows", err)
		}

		var rec models.FoodRecord
		for i, value := range row {
			rec.SetValue(header[i], value)
		}
		ds.Records = append(ds.Records, rec)
	}

	r.logger.Info("dataset ingested",
		slog.String("path", path),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("records", len(ds.Records)))

	return ds, nil
}
