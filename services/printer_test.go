package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"bikeshare/models"
)

func TestPrintTimeStats(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.PrintTimeStats(&models.TimeStats{PopularMonth: time.June, PopularDay: time.Wednesday, PopularHour: 17}, nil)

	for _, want := range []string{
		"Most popular month: 6 (June)",
		"Most popular day of the week: Wednesday",
		"Most popular start hour: 17",
		Separator,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintDurationStats(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.PrintDurationStats(&models.DurationStats{Trips: 3, Total: 360, Mean: 120}, nil)

	if !strings.Contains(out.String(), "Total travel duration: 360 seconds (6m0s)") {
		t.Errorf("unexpected total line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Average travel duration: 120 seconds (2m0s)") {
		t.Errorf("unexpected average line:\n%s", out.String())
	}
}

func TestPrintUserStatsSkipsMissingGender(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.PrintUserStats(&models.UserStats{
		UserTypes:  []models.ValueCount{{Value: "Subscriber", Count: 3}, {Value: "Customer", Count: 1}},
		GendersErr: &MissingFieldError{Field: models.FieldGender},
		BirthYears: &models.BirthYearStats{Earliest: 1980, MostRecent: 2000, MostCommon: 1995},
	}, nil)

	for _, want := range []string{
		"Subscriber: 3 Customer: 1",
		"key is not available: 'Gender'",
		"Earliest: 1980 Most recent: 2000 Most common: 1995",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintGenericError(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.PrintStationStats(nil, ErrEmptyTripSet)

	if !strings.Contains(out.String(), ErrEmptyTripSet.Error()) {
		t.Errorf("output missing error text:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Most popular") {
		t.Errorf("no statistics should be printed on error:\n%s", out.String())
	}
}

func TestPrintErrorWrappedMissingField(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.PrintError(errors.Join(errors.New("station stats"), &MissingFieldError{Field: models.FieldEndStation}))

	if strings.TrimSpace(out.String()) != "key is not available: 'End Station'" {
		t.Errorf("got %q", out.String())
	}
}
