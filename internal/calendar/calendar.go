// Package calendar resolves "today" in the delivery time zone and decides
// which puzzles are due on that day.
package calendar

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/dmitrijs2005/puzzlepost/internal/puzzle"
)

var ErrUnknownTimeZone = errors.New("unknown time zone")

// Day is a calendar day in a particular zone. Date and Weekday are both read
// off one zoned instant; Date is stored as UTC midnight of that local date so
// no second instant in the zone is ever built.
type Day struct {
	Date    time.Time
	Weekday time.Weekday
}

// LoadLocation resolves a zone name; the empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownTimeZone, name, err)
	}
	return loc, nil
}

// Resolve converts now into loc and takes its local calendar date.
// A nil loc means UTC.
func Resolve(now time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	zoned := now.In(loc)
	y, m, d := zoned.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return Day{Date: date, Weekday: zoned.Weekday()}
}

// MDY is the MMDDYYYY stamp used by the WSJ legacy file names.
func (d Day) MDY() string {
	return d.identity(puzzle.Kind{}).MDY()
}

// ISO is the canonical YYYY-MM-DD stamp.
func (d Day) ISO() string {
	return d.identity(puzzle.Kind{}).ISO()
}

func (d Day) identity(k puzzle.Kind) puzzle.Identity {
	return puzzle.Identity{Kind: k, Date: d.Date}
}

// DueKinds is the enabled-variant policy: nothing on Sunday, the daily set on
// weekdays, and the daily set plus the WSJ weekend puzzles on Saturday.
func DueKinds(w time.Weekday) []puzzle.Kind {
	switch w {
	case time.Sunday:
		return nil
	case time.Saturday:
		return []puzzle.Kind{
			puzzle.WSJStandard, puzzle.GuardianCryptic, puzzle.GuardianQuick,
			puzzle.WSJNumber, puzzle.WSJVariety,
		}
	default:
		return []puzzle.Kind{puzzle.WSJStandard, puzzle.GuardianCryptic, puzzle.GuardianQuick}
	}
}

// Due returns the identities due on d, in policy order.
func (d Day) Due() []puzzle.Identity {
	kinds := DueKinds(d.Weekday)
	ids := make([]puzzle.Identity, 0, len(kinds))
	for _, k := range kinds {
		ids = append(ids, d.identity(k))
	}
	return ids
}
