package models

import (
	"time"

	"golang.org/x/exp/slices"
)

// All disables a month or day filter.
const All = "all"

// Time filter modes offered to the user.
const (
	TimeFilterMonth = "month"
	TimeFilterDay   = "day"
	TimeFilterBoth  = "both"
	TimeFilterNone  = "none"
)

var (
	// Months are the filterable months; the datasets cover January to June.
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Days are the filterable days of the week.
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	// TimeFilters are the accepted answers to the time filter question.
	TimeFilters = []string{TimeFilterMonth, TimeFilterDay, TimeFilterBoth, TimeFilterNone}
)

// FilterSelection is what the user asked to analyse in one session iteration.
type FilterSelection struct {
	City  string
	Month string
	Day   string
}

// NewFilterSelection returns a selection for city with no time filter.
func NewFilterSelection(city string) FilterSelection {
	return FilterSelection{City: city, Month: All, Day: All}
}

// MonthNumber translates a month name into its ordinal (january = 1).
func MonthNumber(month string) (time.Month, bool) {
	idx := slices.Index(Months, month)
	if idx < 0 {
		return 0, false
	}
	return time.Month(idx + 1), true
}

// ValidDay reports whether day is one of the filterable days.
func ValidDay(day string) bool {
	return slices.Contains(Days, day)
}

// WantsMonth reports whether the time filter mode asks for a month.
func WantsMonth(timeFilter string) bool {
	return timeFilter == TimeFilterMonth || timeFilter == TimeFilterBoth
}

// WantsDay reports whether the time filter mode asks for a day.
func WantsDay(timeFilter string) bool {
	return timeFilter == TimeFilterDay || timeFilter == TimeFilterBoth
}
