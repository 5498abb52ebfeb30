package services

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"bikeshare/config"
	"bikeshare/models"
	"bikeshare/storage"
	"bikeshare/utils"
)

// requiredFields must be present in every source: calendar fields are derived from them.
var requiredFields = []models.Field{models.FieldStartTime, models.FieldEndTime}

// Loader reads the trips of a city and narrows them to a FilterSelection.
type Loader struct {
	source  storage.TripSource
	cities  *config.CityTable
	cleaner *Cleaner
	logger  *utils.Logger
}

// NewLoader creates a Loader reading from source the cities declared in cities.
func NewLoader(source storage.TripSource, cities *config.CityTable, logger *utils.Logger) *Loader {
	return &Loader{
		source:  source,
		cities:  cities,
		cleaner: NewCleaner(logger),
		logger:  logger,
	}
}

// Load returns the trips of the selected city that match the month and day
// filters. Source, schema and parse failures are returned as errors.
func (l *Loader) Load(ctx context.Context, sel models.FilterSelection) (*models.TripSet, error) {
	city, ok := l.cities.Lookup(sel.City)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, sel.City)
	}

	table, err := l.source.Fetch(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", city.Name, err)
	}

	for _, required := range requiredFields {
		if !slices.Contains(table.Fields, required) {
			return nil, fmt.Errorf("loading %s: %w: %q", city.Name, ErrMissingColumn, required)
		}
	}

	trips, err := l.cleaner.Clean(table)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", city.Name, err)
	}

	set := models.NewTripSet(city.Name, table.Fields, trips)
	filtered, err := ApplyFilters(set, sel.Month, sel.Day)
	if err != nil {
		return nil, err
	}

	l.logger.Info("[loader] %s: %d trips loaded, %d match month=%s day=%s",
		city.Name, set.Len(), filtered.Len(), sel.Month, sel.Day)
	return filtered, nil
}
