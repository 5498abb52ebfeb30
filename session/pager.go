package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/models"
)

// Pager walks through the rows of a trip set, one window at a time.
type Pager struct {
	set    *models.TripSet
	size   int
	cursor int
}

// NewPager starts paging set from its first row, size rows per window.
func NewPager(set *models.TripSet, size int) *Pager {
	return &Pager{set: set, size: size}
}

// Next returns the next window and advances the cursor. The last window may
// be shorter than the page size; past the end an empty window is returned.
func (p *Pager) Next() []*models.Trip {
	n := p.set.Len()
	start := p.cursor
	if start > n {
		start = n
	}
	end := start + p.size
	if end > n {
		end = n
	}
	p.cursor += p.size
	return p.set.Trips[start:end]
}

func (p *Pager) Done() bool {
	return p.cursor >= p.set.Len()
}

// Browse shows windows while the user answers yes. It stops on any other
// answer. A yes once the rows are exhausted prints a notice and stops
// instead of showing an empty window.
func (p *Pager) Browse(prompter *Prompter) error {
	question := fmt.Sprintf("\nWould you like to see %d lines of data? Enter yes or no.\n", p.size)
	for {
		more, err := prompter.Confirm(question)
		if err != nil || !more {
			return err
		}
		if p.Done() {
			fmt.Fprintln(prompter.out, "No more trip data to show.")
			return nil
		}
		if err := p.Render(prompter.out, p.Next()); err != nil {
			return err
		}
	}
}

// Render prints trips as an aligned table of the set's fields.
func (p *Pager) Render(out io.Writer, trips []*models.Trip) error {
	fields := p.set.Fields()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(fields)+1)
	header = append(header, "")
	for _, f := range fields {
		header = append(header, string(f))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, trip := range trips {
		row := make([]string, 0, len(fields)+1)
		row = append(row, strconv.Itoa(trip.Row))
		for _, f := range fields {
			row = append(row, trip.Value(f))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
