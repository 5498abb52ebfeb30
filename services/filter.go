package services

import (
	"fmt"
	"strings"

	"bikeshare/models"
)

// FilterByMonth keeps the trips that started in the given month (january..june).
// "all" returns the set unchanged.
func FilterByMonth(set *models.TripSet, month string) (*models.TripSet, error) {
	month = strings.ToLower(strings.TrimSpace(month))
	if month == models.All {
		return set, nil
	}

	monthNumber, ok := models.MonthNumber(month)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	return set.Filter(func(t *models.Trip) bool {
		return t.Month == monthNumber
	}), nil
}

// FilterByDay keeps the trips that started on the given day of the week,
// matched case-insensitively. "all" returns the set unchanged.
func FilterByDay(set *models.TripSet, day string) (*models.TripSet, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if day == models.All {
		return set, nil
	}

	if !models.ValidDay(day) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	return set.Filter(func(t *models.Trip) bool {
		return strings.EqualFold(t.DayOfWeek.String(), day)
	}), nil
}

// ApplyFilters narrows the set by month and then by day.
func ApplyFilters(set *models.TripSet, month string, day string) (*models.TripSet, error) {
	filtered, err := FilterByMonth(set, month)
	if err != nil {
		return nil, err
	}
	return FilterByDay(filtered, day)
}
