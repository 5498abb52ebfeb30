package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bikeshare/config"
	"bikeshare/models"
	"bikeshare/storage"
)

// sampleStarts spreads trips over every month and day of the week.
var sampleStarts = []string{
	"2017-01-01 00:07:57", "2017-01-02 08:15:00", "2017-01-05 17:20:11",
	"2017-02-07 09:01:33", "2017-02-11 12:40:00", "2017-02-14 18:02:45",
	"2017-03-03 07:55:10", "2017-03-15 16:30:00", "2017-03-26 11:11:11",
	"2017-04-04 08:45:00", "2017-04-19 19:05:59", "2017-04-29 14:14:14",
	"2017-05-01 06:30:00", "2017-05-12 17:45:30", "2017-05-20 10:00:00",
	"2017-06-06 07:07:07", "2017-06-16 15:09:32", "2017-06-23 15:10:00",
}

func writeCityCSV(t *testing.T, dir, file string, withDemographics bool) {
	t.Helper()

	var b strings.Builder
	if withDemographics {
		b.WriteString(",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n")
	} else {
		b.WriteString(",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n")
	}

	for i, start := range sampleStarts {
		ts, _ := time.Parse(time.DateTime, start)
		end := ts.Add(10 * time.Minute).Format(time.DateTime)
		fmt.Fprintf(&b, "%d,%s,%s,%d,Station %d,Station %d,Subscriber", 1000+i, start, end, 600, i%3, i%4)
		if withDemographics {
			fmt.Fprintf(&b, ",Female,%d.0", 1980+i%5)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(filepath.Join(dir, file), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	dir := t.TempDir()
	writeCityCSV(t, dir, "chicago.csv", true)
	writeCityCSV(t, dir, "new_york_city.csv", true)
	writeCityCSV(t, dir, "washington.csv", false)

	return NewLoader(storage.NewCSVSource(dir), config.DefaultCityTable(), newTestLogger())
}

func TestLoadAllReturnsEveryRow(t *testing.T) {
	loader := newTestLoader(t)

	for _, city := range []string{"chicago", "new york city", "washington"} {
		set, err := loader.Load(context.Background(), models.NewFilterSelection(city))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", city, err)
		}
		if set.Len() != len(sampleStarts) {
			t.Errorf("%s: got %d trips, want %d", city, set.Len(), len(sampleStarts))
		}
	}
}

func TestLoadCapabilities(t *testing.T) {
	loader := newTestLoader(t)

	chicago, err := loader.Load(context.Background(), models.NewFilterSelection("chicago"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !chicago.Has(models.FieldGender) || !chicago.Has(models.FieldBirthYear) {
		t.Error("chicago should carry gender and birth year")
	}

	washington, err := loader.Load(context.Background(), models.NewFilterSelection("washington"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if washington.Has(models.FieldGender) || washington.Has(models.FieldBirthYear) {
		t.Error("washington should not carry gender or birth year")
	}
}

func TestLoadFiltersByMonth(t *testing.T) {
	loader := newTestLoader(t)
	all, err := loader.Load(context.Background(), models.NewFilterSelection("chicago"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, month := range models.Months {
		sel := models.FilterSelection{City: "chicago", Month: month, Day: models.All}
		set, err := loader.Load(context.Background(), sel)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", month, err)
		}

		want := 0
		for _, trip := range all.Trips {
			if int(trip.Month) == i+1 {
				want++
			}
		}
		if set.Len() != want {
			t.Errorf("%s: got %d trips, want %d", month, set.Len(), want)
		}
		for _, trip := range set.Trips {
			if int(trip.Month) != i+1 {
				t.Errorf("%s: kept a trip from %v", month, trip.Month)
			}
		}
	}
}

func TestLoadFiltersByDay(t *testing.T) {
	loader := newTestLoader(t)
	all, err := loader.Load(context.Background(), models.NewFilterSelection("washington"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, day := range models.Days {
		set, err := loader.Load(context.Background(), models.FilterSelection{City: "washington", Month: models.All, Day: day})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", day, err)
		}

		want := 0
		for _, trip := range all.Trips {
			if strings.EqualFold(trip.DayOfWeek.String(), day) {
				want++
			}
		}
		if set.Len() != want {
			t.Errorf("%s: got %d trips, want %d", day, set.Len(), want)
		}
		for _, trip := range set.Trips {
			if !strings.EqualFold(trip.DayOfWeek.String(), day) {
				t.Errorf("%s: kept a trip from %v", day, trip.DayOfWeek)
			}
		}
	}
}

func TestLoadBothFilters(t *testing.T) {
	loader := newTestLoader(t)

	// 2017-06-16 and 2017-06-23 are Fridays.
	set, err := loader.Load(context.Background(), models.FilterSelection{City: "new york city", Month: "june", Day: "friday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("got %d trips, want 2", set.Len())
	}
}

func TestLoadUnknownCity(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.Load(context.Background(), models.NewFilterSelection("boston"))
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(storage.NewCSVSource(t.TempDir()), config.DefaultCityTable(), newTestLogger())

	_, err := loader.Load(context.Background(), models.NewFilterSelection("chicago"))
	if !errors.Is(err, storage.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestLoadRequiresStartTime(t *testing.T) {
	dir := t.TempDir()
	content := "Trip Duration,Start Station\n60,Canal St\n"
	if err := os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader(storage.NewCSVSource(dir), config.DefaultCityTable(), newTestLogger())

	_, err := loader.Load(context.Background(), models.NewFilterSelection("chicago"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadMalformedRow(t *testing.T) {
	dir := t.TempDir()
	content := "Start Time,End Time,Trip Duration\n2017-01-01 00:07:57,2017-01-01 00:20:53,776\nnot a date,2017-01-01 00:20:53,1\n"
	if err := os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader(storage.NewCSVSource(dir), config.DefaultCityTable(), newTestLogger())

	_, err := loader.Load(context.Background(), models.NewFilterSelection("chicago"))
	if !errors.Is(err, ErrInvalidTripData) {
		t.Errorf("expected ErrInvalidTripData, got %v", err)
	}
}

func TestLoadBlankDurationCell(t *testing.T) {
	dir := t.TempDir()
	content := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"0,2017-01-02 08:00:00,2017-01-02 08:10:00,600,A,B,Subscriber\n" +
		"1,2017-01-03 09:00:00,,,A,C,Customer\n"
	if err := os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader(storage.NewCSVSource(dir), config.DefaultCityTable(), newTestLogger())

	set, err := loader.Load(context.Background(), models.NewFilterSelection("washington"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("trips: got %d, want 2", set.Len())
	}

	stats, err := NewStatsService(newTestLogger()).DurationStats(set)
	if err != nil {
		t.Fatalf("DurationStats: unexpected error: %v", err)
	}
	if stats.Total != 600 || stats.Mean != 600 {
		t.Errorf("durations: got total %v mean %v, want 600 and 600", stats.Total, stats.Mean)
	}
}
