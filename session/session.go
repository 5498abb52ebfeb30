// Package session runs the interactive exploration loop: collect filters,
// load trips, print statistics, page through rows, offer a restart.
package session

import (
	"context"
	"errors"
	"io"

	"bikeshare/models"
	"bikeshare/services"
	"bikeshare/utils"
)

type state int

const (
	stateCollecting state = iota
	stateDecidingRestart
	stateTerminated
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// TripLoader loads the trip set matching a selection.
type TripLoader interface {
	Load(ctx context.Context, sel models.FilterSelection) (*models.TripSet, error)
}

// Options wires a Session to its collaborators.
type Options struct {
	Prompter *Prompter
	Cities   []string
	Loader   TripLoader
	Stats    *services.StatsService
	Printer  *services.Printer
	PageSize int
	Logger   *utils.Logger
}

type Session struct {
	prompter  *Prompter
	collector *Collector
	loader    TripLoader
	stats     *services.StatsService
	printer   *services.Printer
	pageSize  int
	logger    *utils.Logger
}

func New(opts Options) *Session {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 5
	}
	return &Session{
		prompter:  opts.Prompter,
		collector: NewCollector(opts.Prompter, opts.Cities),
		loader:    opts.Loader,
		stats:     opts.Stats,
		printer:   opts.Printer,
		pageSize:  pageSize,
		logger:    opts.Logger,
	}
}

// Run loops until the user declines to restart or the input ends. A load
// failure stops the loop and is returned.
func (s *Session) Run(ctx context.Context) error {
	current := stateCollecting
	for current != stateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch current {
		case stateCollecting:
			err := s.iterate(ctx)
			if errors.Is(err, io.EOF) {
				current = stateTerminated
				continue
			}
			if err != nil {
				return err
			}
			current = stateDecidingRestart

		case stateDecidingRestart:
			restart, err := s.prompter.Confirm(restartQuestion)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if restart {
				current = stateCollecting
			} else {
				current = stateTerminated
			}
		}
	}

	s.logger.Debug("[session] terminated")
	return nil
}

// iterate runs one pass: collect, load, report, page.
func (s *Session) iterate(ctx context.Context) error {
	selection, err := s.collector.Collect()
	if err != nil {
		return err
	}

	set, err := s.loader.Load(ctx, selection)
	if err != nil {
		return err
	}

	timeStats, err := s.stats.TimeStats(set)
	s.printer.PrintTimeStats(timeStats, err)

	stationStats, err := s.stats.StationStats(set)
	s.printer.PrintStationStats(stationStats, err)

	durationStats, err := s.stats.DurationStats(set)
	s.printer.PrintDurationStats(durationStats, err)

	userStats, err := s.stats.UserStats(set)
	s.printer.PrintUserStats(userStats, err)

	err = NewPager(set, s.pageSize).Browse(s.prompter)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
