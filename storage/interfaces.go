package storage

import (
	"context"
	"errors"

	"bikeshare/config"
	"bikeshare/models"
)

// ErrSourceUnavailable is returned when a city's trips cannot be read at all.
var ErrSourceUnavailable = errors.New("trip source unavailable")

// TripSource is the interface any trip storage backend must satisfy. Fetch
// reads the whole table of one city; it keeps no handle open afterwards.
type TripSource interface {
	Fetch(ctx context.Context, city config.City) (*models.RawTripTable, error)
	Close() error
}
