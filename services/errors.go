package services

import (
	"errors"
	"fmt"

	"bikeshare/models"
)

var (
	ErrUnknownCity         = errors.New("unknown city")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidDay          = errors.New("invalid day")
	ErrMissingColumn       = errors.New("missing required column")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrEmptyTripSet        = errors.New("no trips match the selected filters")
	ErrNoValues            = errors.New("no values recorded")
)

// MissingFieldError reports a statistic that needs a field the trip set
// does not carry, e.g. gender for a city without demographic data.
type MissingFieldError struct {
	Field models.Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("key is not available: '%s'", e.Field)
}

func missingField(f models.Field) error {
	return &MissingFieldError{Field: f}
}
