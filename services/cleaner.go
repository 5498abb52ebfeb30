package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"bikeshare/models"
	"bikeshare/utils"
)

// timestampLayouts are tried in order when parsing start and end times.
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04",
}

// Cleaner transforms RawTrips into parsed Trips with their calendar fields.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean parses every row of the table. Only the fields present in the table
// are parsed. A blank end time or duration leaves that value unknown; the
// first malformed row aborts cleaning with an error wrapping ErrInvalidTripData.
func (c *Cleaner) Clean(table *models.RawTripTable) ([]*models.Trip, error) {
	present := make(map[models.Field]bool, len(table.Fields))
	for _, f := range table.Fields {
		present[f] = true
	}

	result := make([]*models.Trip, 0, len(table.Rows))
	for i, r := range table.Rows {
		trip, err := c.cleanRow(i, r, present)
		if err != nil {
			c.logger.Debug("[cleaner] Row %d rejected: %v", i, err)
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		result = append(result, trip)
	}

	c.logger.Debug("[cleaner] Cleaned %d trips", len(result))
	return result, nil
}

func (c *Cleaner) cleanRow(row int, r *models.RawTrip, present map[models.Field]bool) (*models.Trip, error) {
	trip := &models.Trip{
		Row:          row,
		StartStation: normaliseText(r.StartStation),
		EndStation:   normaliseText(r.EndStation),
		UserType:     normaliseText(r.UserType),
		Gender:       normaliseText(r.Gender),
	}

	var err error
	if present[models.FieldStartTime] {
		trip.StartTime, err = parseTimestamp(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrInvalidDate, r.StartTime, ErrInvalidTripData)
		}
		trip.Month = trip.StartTime.Month()
		trip.DayOfWeek = trip.StartTime.Weekday()
	}

	if present[models.FieldEndTime] && !isBlank(r.EndTime) {
		trip.EndTime, err = parseTimestamp(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrInvalidDate, r.EndTime, ErrInvalidTripData)
		}
	}

	if present[models.FieldTripDuration] && !isBlank(r.TripDuration) {
		trip.Duration, err = parseDuration(r.TripDuration)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrInvalidDurationType, r.TripDuration, ErrInvalidTripData)
		}
		trip.DurationKnown = true
	}

	if present[models.FieldBirthYear] {
		trip.BirthYear, err = parseBirthYear(r.BirthYear)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrInvalidBirthYear, r.BirthYear, ErrInvalidTripData)
		}
	}

	return trip, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

// parseDuration accepts whole or fractional seconds, e.g. "321" or "489.066".
func parseDuration(raw string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return d, nil
}

// parseBirthYear accepts "1992" and "1992.0"; an empty value means unknown (0).
func parseBirthYear(raw string) (int, error) {
	if isBlank(raw) {
		return 0, nil
	}
	raw = strings.TrimSpace(raw)
	year, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if year != math.Trunc(year) || year < 1 {
		return 0, fmt.Errorf("not a year")
	}
	return int(year), nil
}

// isBlank reports an empty cell, or one holding "nan" as written by exports
// of the original datasets.
func isBlank(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || strings.EqualFold(raw, "nan")
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
