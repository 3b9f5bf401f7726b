// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	apperrors "fastfood-insights/internal/errors"
	"fastfood-insights/internal/models"
)

const (
	stage = "storage"

	tableName   = "fastfood"
	columnsName = "fastfood_columns"
)

// SQLiteStore persists the raw dataset in a single SQLite table. Every run
// replaces the table's prior contents; there is no incremental merge. The
// ingested column order is recorded in a companion table so a load returns
// the dataset exactly as it was stored.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewIOError(stage, fmt.Sprintf("cannot open database %q", dbPath), err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.NewIOError(stage, fmt.Sprintf("cannot reach database %q", dbPath), err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// quoteIdent makes a column name safe to embed in DDL. Column names come
// from the input header, so they are data, not trusted identifiers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ReplaceDataset drops and recreates the backing table from the dataset,
// storing every ingested column verbatim as TEXT. The whole replacement runs
// in one transaction so a failed run never leaves a half-written table.
func (s *SQLiteStore) ReplaceDataset(ctx context.Context, ds *models.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewIOError(stage, "cannot start transaction", err)
	}
	defer tx.Rollback()

	for _, ddl := range []string{
		`DROP TABLE IF EXISTS ` + tableName,
		`DROP TABLE IF EXISTS ` + columnsName,
		`CREATE TABLE ` + columnsName + ` (position INTEGER PRIMARY KEY, name TEXT NOT NULL)`,
	} {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return apperrors.NewIOError(stage, "cannot reset backing tables", err)
		}
	}

	quoted := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		quoted[i] = quoteIdent(col)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+columnsName+` (position, name) VALUES (?, ?)`, i, col); err != nil {
			return apperrors.NewIOError(stage, "cannot record column order", err)
		}
	}

	create := fmt.Sprintf(`CREATE TABLE %s (%s TEXT)`, tableName, strings.Join(quoted, " TEXT, "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return apperrors.NewIOError(stage, "cannot create backing table", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ds.Columns)), ", ")
	insert := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		tableName, strings.Join(quoted, ", "), placeholders)

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return apperrors.NewIOError(stage, "cannot prepare insert", err)
	}
	defer stmt.Close()

	for i := range ds.Records {
		row := ds.Records[i].Row(ds.Columns)
		args := make([]interface{}, len(row))
		for j, v := range row {
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return apperrors.NewIOError(stage, fmt.Sprintf("cannot insert row %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewIOError(stage, "cannot commit replacement", err)
	}
	return nil
}

// LoadDataset reads the backing table back into memory, preserving the
// ingested column order and row order.
func (s *SQLiteStore) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	colRows, err := s.db.QueryContext(ctx,
		`SELECT name FROM `+columnsName+` ORDER BY position`)
	if err != nil {
		return nil, apperrors.NewIOError(stage, "cannot read column order", err)
	}
	defer colRows.Close()

	var columns []string
	for colRows.Next() {
		var name string
		if err := colRows.Scan(&name); err != nil {
			return nil, apperrors.NewIOError(stage, "cannot scan column name", err)
		}
		columns = append(columns, name)
	}
	if err := colRows.Err(); err != nil {
		return nil, apperrors.NewIOError(stage, "cannot iterate column order", err)
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`, strings.Join(quoted, ", "), tableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewIOError(stage, "cannot read backing table", err)
	}
	defer rows.Close()

	ds := &models.Dataset{Columns: columns}
	values := make([]string, len(columns))
	scanArgs := make([]interface{}, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, apperrors.NewIOError(stage, "cannot scan row", err)
		}
		var rec models.FoodRecord
		for i, col := range columns {
			rec.SetValue(col, values[i])
		}
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewIOError(stage, "cannot iterate backing table", err)
	}
	return ds, nil
}
