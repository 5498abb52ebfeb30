package services

import (
	"time"

	"bikeshare/models"
	"bikeshare/utils"
)

// StatsService computes the descriptive statistics of a trip set. Its methods
// never print; rendering is left to a Printer.
type StatsService struct {
	logger *utils.Logger
}

func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// TimeStats finds the most frequent month, day of week and start hour.
func (s *StatsService) TimeStats(set *models.TripSet) (*models.TimeStats, error) {
	start := time.Now()
	if err := s.require(set, models.FieldStartTime); err != nil {
		return nil, err
	}

	months := make([]time.Month, 0, set.Len())
	days := make([]time.Weekday, 0, set.Len())
	hours := make([]int, 0, set.Len())
	for _, t := range set.Trips {
		months = append(months, t.Month)
		days = append(days, t.DayOfWeek)
		hours = append(hours, t.Hour())
	}

	// The slices share the length of a non-empty set, so Mode cannot fail.
	month, _ := Mode(months)
	day, _ := Mode(days)
	hour, _ := Mode(hours)

	stats := &models.TimeStats{
		PopularMonth: month,
		PopularDay:   day,
		PopularHour:  hour,
		Elapsed:      time.Since(start),
	}
	s.logger.Debug("[stats] time stats for %s computed in %v", set.City, stats.Elapsed)
	return stats, nil
}

// StationStats finds the most used start station, end station and route.
func (s *StatsService) StationStats(set *models.TripSet) (*models.StationStats, error) {
	start := time.Now()
	if err := s.require(set, models.FieldStartStation, models.FieldEndStation); err != nil {
		return nil, err
	}

	starts := make([]string, 0, set.Len())
	ends := make([]string, 0, set.Len())
	routes := make([]string, 0, set.Len())
	for _, t := range set.Trips {
		starts = append(starts, t.StartStation)
		ends = append(ends, t.EndStation)
		routes = append(routes, t.Route())
	}

	startStation, _ := Mode(starts)
	endStation, _ := Mode(ends)
	route, _ := Mode(routes)

	stats := &models.StationStats{
		PopularStartStation: startStation,
		PopularEndStation:   endStation,
		PopularRoute:        route,
		Elapsed:             time.Since(start),
	}
	s.logger.Debug("[stats] station stats for %s computed in %v", set.City, stats.Elapsed)
	return stats, nil
}

// DurationStats sums and averages the trip durations. Trips without a
// recorded duration are left out of both the total and the average.
func (s *StatsService) DurationStats(set *models.TripSet) (*models.DurationStats, error) {
	start := time.Now()
	if err := s.require(set, models.FieldTripDuration); err != nil {
		return nil, err
	}

	var total float64
	known := 0
	for _, t := range set.Trips {
		if !t.DurationKnown {
			continue
		}
		total += t.Duration
		known++
	}
	if known == 0 {
		return nil, ErrNoValues
	}

	stats := &models.DurationStats{
		Trips:   known,
		Total:   total,
		Mean:    total / float64(known),
		Elapsed: time.Since(start),
	}
	s.logger.Debug("[stats] duration stats for %s computed in %v (%d of %d trips timed)",
		set.City, stats.Elapsed, known, set.Len())
	return stats, nil
}

// UserStats counts user types and genders and summarises birth years. A
// section whose field is missing, or holds no value, carries an error while
// the other sections are still computed.
func (s *StatsService) UserStats(set *models.TripSet) (*models.UserStats, error) {
	start := time.Now()
	if err := s.require(set); err != nil {
		return nil, err
	}

	stats := &models.UserStats{}
	stats.UserTypes, stats.UserTypesErr = countField(set, models.FieldUserType, func(t *models.Trip) string {
		return t.UserType
	})
	stats.Genders, stats.GendersErr = countField(set, models.FieldGender, func(t *models.Trip) string {
		return t.Gender
	})
	stats.BirthYears, stats.BirthYearsErr = birthYearStats(set)
	stats.Elapsed = time.Since(start)

	s.logger.Debug("[stats] user stats for %s computed in %v", set.City, stats.Elapsed)
	return stats, nil
}

// require checks the set is not empty and carries every field.
func (s *StatsService) require(set *models.TripSet, fields ...models.Field) error {
	for _, f := range fields {
		if !set.Has(f) {
			s.logger.Debug("[stats] %s has no %q field", set.City, f)
			return missingField(f)
		}
	}
	if set.Len() == 0 {
		return ErrEmptyTripSet
	}
	return nil
}

func countField(set *models.TripSet, f models.Field, value func(*models.Trip) string) ([]models.ValueCount, error) {
	if !set.Has(f) {
		return nil, missingField(f)
	}

	values := make([]string, 0, set.Len())
	for _, t := range set.Trips {
		if v := value(t); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	counts := CountValues(values)
	result := make([]models.ValueCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, models.ValueCount{Value: c.Value, Count: c.Count})
	}
	return result, nil
}

func birthYearStats(set *models.TripSet) (*models.BirthYearStats, error) {
	if !set.Has(models.FieldBirthYear) {
		return nil, missingField(models.FieldBirthYear)
	}

	years := make([]int, 0, set.Len())
	for _, t := range set.Trips {
		if t.BirthYear != 0 {
			years = append(years, t.BirthYear)
		}
	}

	earliest, mostRecent, err := MinMax(years)
	if err != nil {
		return nil, err
	}
	mostCommon, err := Mode(years)
	if err != nil {
		return nil, err
	}

	return &models.BirthYearStats{
		Earliest:   earliest,
		MostRecent: mostRecent,
		MostCommon: mostCommon,
	}, nil
}
