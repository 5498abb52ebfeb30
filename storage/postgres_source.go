package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bikeshare/config"
	"bikeshare/models"
	"bikeshare/utils"
)

// PostgresSource reads trips from one table per city.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource opens a connection to PostgreSQL and waits until the
// server answers, retrying with back-off.
func NewPostgresSource(dsn string, retry *utils.RetryConfig) (*PostgresSource, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: postgres: %s", ErrSourceUnavailable, err)
	}

	return &PostgresSource{db: db}, nil
}

// Fetch selects every trip of the city's table. Columns are discovered first
// so tables without gender or birth year data are read as such, and every
// value is selected as text to share parsing with the CSV source.
func (s *PostgresSource) Fetch(ctx context.Context, city config.City) (*models.RawTripTable, error) {
	var columns []string
	err := s.db.SelectContext(ctx, &columns, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position
	`, city.Table)
	if err != nil {
		return nil, fmt.Errorf("postgres: list columns of %q: %w", city.Table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: postgres: table %q not found", ErrSourceUnavailable, city.Table)
	}

	query, fields := buildSelect(city.Table, columns)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: postgres: table %q has no trip columns", ErrSourceUnavailable, city.Table)
	}

	rows := []*models.RawTrip{}
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("postgres: fetch %q: %w", city.Table, err)
	}

	return &models.RawTripTable{Fields: fields, Rows: rows}, nil
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// buildSelect returns the query reading the known trip fields among columns.
// Rows are ordered by an "id" column when the table has one.
func buildSelect(table string, columns []string) (string, []models.Field) {
	var fields []models.Field
	var selects []string
	hasID := false

	for _, column := range columns {
		if column == "id" {
			hasID = true
			continue
		}
		f, ok := models.ParseField(column)
		if !ok {
			continue
		}
		fields = append(fields, f)
		selects = append(selects, fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '') AS %s",
			pq.QuoteIdentifier(column), f.Column()))
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), pq.QuoteIdentifier(table))
	if hasID {
		query += " ORDER BY id"
	}
	return query, fields
}
