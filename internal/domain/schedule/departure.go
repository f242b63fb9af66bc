package schedule

import (
	"errors"
	"time"

	"tourbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrZeroDate = errors.New("departure date must be set")

type Pattern string

const (
	PatternDaily    Pattern = "daily"
	PatternWeekly   Pattern = "weekly"
	PatternBiweekly Pattern = "biweekly"
	PatternMonthly  Pattern = "monthly"
)

func (p Pattern) IsValid() bool {
	switch p {
	case PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly:
		return true
	default:
		return false
	}
}

// Next advances one recurrence step. Unrecognized patterns step a week;
// authored data has been seen carrying free-form pattern strings and a
// weekly step keeps the loop finite instead of failing the whole calendar.
func (p Pattern) Next(t time.Time) time.Time {
	switch p {
	case PatternDaily:
		return t.AddDate(0, 0, 1)
	case PatternWeekly:
		return t.AddDate(0, 0, 7)
	case PatternBiweekly:
		return t.AddDate(0, 0, 14)
	case PatternMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 7)
	}
}

// Departure is one schedule entry of a tour: either a single date range or
// a recurrence rule between two dates.
type Departure struct {
	id              uuid.UUID
	tourID          uuid.UUID
	recurring       bool
	pattern         Pattern
	startDate       time.Time
	endDate         time.Time
	selectedOptions []uuid.UUID
}

func NewOneOff(tourID uuid.UUID, from, to time.Time, selectedOptions []uuid.UUID) (*Departure, error) {
	if from.IsZero() {
		return nil, ErrZeroDate
	}
	return &Departure{
		id:              uuid.New(),
		tourID:          tourID,
		recurring:       false,
		startDate:       clock.Today(from),
		endDate:         clock.Today(to),
		selectedOptions: selectedOptions,
	}, nil
}

func NewRecurring(tourID uuid.UUID, pattern Pattern, startDate, endDate time.Time, selectedOptions []uuid.UUID) (*Departure, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrZeroDate
	}
	if pattern == "" {
		pattern = PatternWeekly
	}
	return &Departure{
		id:              uuid.New(),
		tourID:          tourID,
		recurring:       true,
		pattern:         pattern,
		startDate:       clock.Today(startDate),
		endDate:         clock.Today(endDate),
		selectedOptions: selectedOptions,
	}, nil
}

func ReconstructDeparture(
	id, tourID uuid.UUID,
	recurring bool,
	pattern Pattern,
	startDate, endDate time.Time,
	selectedOptions []uuid.UUID,
) *Departure {
	return &Departure{
		id:              id,
		tourID:          tourID,
		recurring:       recurring,
		pattern:         pattern,
		startDate:       clock.Today(startDate),
		endDate:         clock.Today(endDate),
		selectedOptions: selectedOptions,
	}
}

func (d *Departure) ID() uuid.UUID                { return d.id }
func (d *Departure) TourID() uuid.UUID            { return d.tourID }
func (d *Departure) Recurring() bool              { return d.recurring }
func (d *Departure) Pattern() Pattern             { return d.pattern }
func (d *Departure) StartDate() time.Time         { return d.startDate }
func (d *Departure) EndDate() time.Time           { return d.endDate }
func (d *Departure) SelectedOptions() []uuid.UUID { return d.selectedOptions }
