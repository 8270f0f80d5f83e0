// Package scheduler runs a job on a cron schedule for the long-running mode.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adhocore/gronx"
	"github.com/dmitrijs2005/puzzlepost/internal/logging"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// Job is one scheduled run; tick is the cron time it was started for.
type Job func(ctx context.Context, tick time.Time) error

// Validate accepts standard 5-field cron expressions only. gronx.IsValid
// also accepts a 6-field form with seconds, which we reject.
func Validate(expr string) error {
	if len(strings.Fields(expr)) != 5 && !strings.HasPrefix(strings.TrimSpace(expr), "@") {
		return fmt.Errorf("%w: %q must have 5 fields", ErrInvalidSchedule, expr)
	}
	if !gronx.IsValid(expr) {
		return fmt.Errorf("%w: %q", ErrInvalidSchedule, expr)
	}
	return nil
}

// Next returns the first tick strictly after from, evaluated in loc.
func Next(expr string, from time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	next, err := gronx.NextTickAfter(expr, from.In(loc), false)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return next, nil
}

type Scheduler struct {
	expr   string
	loc    *time.Location
	logger logging.Logger

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

func New(expr string, loc *time.Location, logger logging.Logger) (*Scheduler, error) {
	if err := Validate(expr); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Scheduler{expr: expr, loc: loc, logger: logger, now: time.Now, wait: sleep}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run sleeps until each tick and runs job, until ctx is cancelled. A failed
// job is logged and the loop carries on with the next tick.
func (s *Scheduler) Run(ctx context.Context, job Job) error {
	for {
		next, err := Next(s.expr, s.now(), s.loc)
		if err != nil {
			return err
		}
		s.logger.Info(ctx, "next run scheduled", "at", next.Format(time.RFC3339))

		if err := s.wait(ctx, time.Until(next)); err != nil {
			s.logger.Info(ctx, "scheduler stopped")
			return nil
		}

		if err := job(ctx, next); err != nil {
			s.logger.Error(ctx, "scheduled run failed", "error", err)
		}
	}
}
