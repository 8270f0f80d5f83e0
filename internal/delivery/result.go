package delivery

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puzzlepost/internal/puzzle"
)

type Status int

const (
	StatusDelivered Status = iota
	StatusAlreadyDelivered
	StatusNotPublished
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusAlreadyDelivered:
		return "already_delivered"
	case StatusNotPublished:
		return "not_published"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the settled outcome of one puzzle's pipeline.
type Result struct {
	Spec   puzzle.DeliverySpec
	Status Status
	Size   int64
	Err    error
}

// Report collects the results of one run, in the order puzzles were given.
type Report struct {
	Results []Result
}

func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Err joins the errors of every failed puzzle, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			errs = append(errs, fmt.Errorf("%s: %w", res.Spec.Identity.Kind, res.Err))
		}
	}
	return errors.Join(errs...)
}
