package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bikeshare/models"
)

// Separator closes every report section.
var Separator = strings.Repeat("-", 40)

// Printer renders statistics, or the error that prevented them, to a terminal.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) PrintTimeStats(stats *models.TimeStats, err error) {
	fmt.Fprintf(p.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if err != nil {
		p.PrintError(err)
		return
	}

	fmt.Fprintf(p.out, "Most popular month: %d (%s)\n", int(stats.PopularMonth), stats.PopularMonth)
	fmt.Fprintf(p.out, "Most popular day of the week: %s\n", stats.PopularDay)
	fmt.Fprintf(p.out, "Most popular start hour: %d\n", stats.PopularHour)
	p.printElapsed(stats.Elapsed)
}

func (p *Printer) PrintStationStats(stats *models.StationStats, err error) {
	fmt.Fprintf(p.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	if err != nil {
		p.PrintError(err)
		return
	}

	fmt.Fprintf(p.out, "Most popular start station: %s\n", stats.PopularStartStation)
	fmt.Fprintf(p.out, "Most popular end station: %s\n", stats.PopularEndStation)
	fmt.Fprintf(p.out, "Most popular trip: %s\n", stats.PopularRoute)
	p.printElapsed(stats.Elapsed)
}

func (p *Printer) PrintDurationStats(stats *models.DurationStats, err error) {
	fmt.Fprintf(p.out, "\nCalculating Trip Duration...\n\n")
	if err != nil {
		p.PrintError(err)
		return
	}

	fmt.Fprintf(p.out, "Total travel duration: %s seconds (%s)\n", formatSeconds(stats.Total), humanDuration(stats.Total))
	fmt.Fprintf(p.out, "Average travel duration: %s seconds (%s)\n", formatSeconds(stats.Mean), humanDuration(stats.Mean))
	p.printElapsed(stats.Elapsed)
}

func (p *Printer) PrintUserStats(stats *models.UserStats, err error) {
	fmt.Fprintf(p.out, "\nCalculating User Stats...\n\n")
	if err != nil {
		p.PrintError(err)
		return
	}

	fmt.Fprintln(p.out, "User Types")
	p.printCounts(stats.UserTypes, stats.UserTypesErr)

	fmt.Fprintln(p.out, "Gender")
	p.printCounts(stats.Genders, stats.GendersErr)

	fmt.Fprintln(p.out, "Birth Years")
	if stats.BirthYearsErr != nil {
		p.PrintError(stats.BirthYearsErr)
	} else {
		fmt.Fprintf(p.out, "Earliest: %d Most recent: %d Most common: %d\n",
			stats.BirthYears.Earliest, stats.BirthYears.MostRecent, stats.BirthYears.MostCommon)
	}
	p.printElapsed(stats.Elapsed)
}

// PrintError renders a reporter error: a notice naming the field for a
// missing field, the error text otherwise.
func (p *Printer) PrintError(err error) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		fmt.Fprintf(p.out, "key is not available: '%s'\n", missing.Field)
		return
	}
	fmt.Fprintln(p.out, err.Error())
}

func (p *Printer) printCounts(counts []models.ValueCount, err error) {
	if err != nil {
		p.PrintError(err)
		return
	}

	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", c.Value, c.Count))
	}
	fmt.Fprintln(p.out, strings.Join(parts, " "))
}

func (p *Printer) printElapsed(elapsed time.Duration) {
	fmt.Fprintf(p.out, "\nThis took %f seconds.\n", elapsed.Seconds())
	fmt.Fprintln(p.out, Separator)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// humanDuration renders seconds as e.g. "1h2m3s", dropping sub-second parts.
func humanDuration(seconds float64) string {
	return (time.Duration(seconds) * time.Second).String()
}
