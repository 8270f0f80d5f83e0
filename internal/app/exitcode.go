package app

import (
	"errors"

	"github.com/dmitrijs2005/puzzlepost/internal/calendar"
	"github.com/dmitrijs2005/puzzlepost/internal/config"
	"github.com/dmitrijs2005/puzzlepost/internal/scheduler"
)

const (
	ExitOK            = 0
	ExitConfig        = 1
	ExitSetup         = 2
	ExitPartialFailed = 3
)

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrMissingCredentials),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, calendar.ErrUnknownTimeZone),
		errors.Is(err, scheduler.ErrInvalidSchedule):
		return ExitConfig
	case errors.Is(err, ErrDeliveryFailed):
		return ExitPartialFailed
	default:
		return ExitSetup
	}
}
