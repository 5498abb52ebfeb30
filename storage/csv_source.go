package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"bikeshare/config"
	"bikeshare/models"
)

// CSVSource reads one CSV file per city from a data directory.
type CSVSource struct {
	dataDir string
}

// NewCSVSource returns a source resolving city files relative to dataDir.
func NewCSVSource(dataDir string) *CSVSource {
	return &CSVSource{dataDir: dataDir}
}

// Fetch decodes the city's CSV file. The header decides which fields the
// table carries; columns that are not trip fields, such as the unnamed index
// column, are ignored.
func (s *CSVSource) Fetch(ctx context.Context, city config.City) (*models.RawTripTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dataDir, city.File)
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: csv: read %q: %s", ErrSourceUnavailable, path, err)
	}

	return DecodeCSV(body)
}

func (s *CSVSource) Close() error {
	return nil
}

// DecodeCSV parses CSV trip data held in memory.
func DecodeCSV(body []byte) (*models.RawTripTable, error) {
	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))

	header, err := csv.NewReader(bytes.NewReader(body)).Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	var fields []models.Field
	for _, column := range header {
		if f, ok := models.ParseField(column); ok {
			fields = append(fields, f)
		}
	}

	// Allow us to keep rows with a short trailing column
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	rows := []*models.RawTrip{}
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("csv: decode rows: %w", err)
	}

	return &models.RawTripTable{Fields: fields, Rows: rows}, nil
}
