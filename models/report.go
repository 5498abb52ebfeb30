package models

import "time"

// ValueCount is the number of trips carrying a given value.
type ValueCount struct {
	Value string
	Count int
}

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	PopularMonth time.Month
	PopularDay   time.Weekday
	PopularHour  int
	Elapsed      time.Duration
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	PopularStartStation string
	PopularEndStation   string
	PopularRoute        string
	Elapsed             time.Duration
}

// DurationStats holds total and average trip duration, in seconds.
type DurationStats struct {
	Trips   int
	Total   float64
	Mean    float64
	Elapsed time.Duration
}

type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds the user demographics. Every section is computed on its
// own: when a section cannot be computed its error field is set and the
// other sections are still filled in.
type UserStats struct {
	UserTypes     []ValueCount
	UserTypesErr  error
	Genders       []ValueCount
	GendersErr    error
	BirthYears    *BirthYearStats
	BirthYearsErr error
	Elapsed       time.Duration
}
