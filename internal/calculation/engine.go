// Package calculation implements the obstetric date estimates: the estimated
// due date via Naegele's rule and the elapsed weeks of amenorrhea.
package calculation

import (
	"time"

	"github.com/rgehrsitz/naegele/internal/calendar"
	"github.com/rgehrsitz/naegele/internal/domain"
)

const (
	// Naegele's rule: LNMP + 7 days - 3 months + 1 year.
	dayOffset   = 7
	monthOffset = 3

	secondsPerDay = 86400
	daysPerWeek   = 7
)

// Engine computes EDD and WOA from an LNMP date string. The clock is
// injected so WOA results are reproducible in tests; NewEngine wires the
// system clock.
type Engine struct {
	Now func() time.Time
}

// NewEngine returns an engine backed by the system clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// NewEngineAt returns an engine whose clock is frozen at the given instant.
func NewEngineAt(now time.Time) *Engine {
	return &Engine{Now: func() time.Time { return now }}
}

// ComputeEDD applies Naegele's rule to the LNMP and returns the estimated
// due date formatted as dd/mm/yyyy.
func (e *Engine) ComputeEDD(lnmp string) (string, error) {
	d, err := calendar.ParseDate(lnmp)
	if err != nil {
		return "", err
	}
	return dueDate(d).String(), nil
}

// dueDate applies Naegele's rule. The day-overflow normalization borrows the
// ORIGINAL month's length for the first comparison and only then walks
// forward month by month; the loop can advance more than one month when the
// +7 offset lands past a short month. The trailing year increment completes
// the rule for both branches of the month shift.
func dueDate(d domain.Date) domain.Date {
	day, month, year := d.Day, d.Month, d.Year

	maxDays := calendar.DaysInMonth(month, year)
	day += dayOffset

	if month > monthOffset {
		month -= monthOffset
	} else {
		month += 12 - monthOffset
		year--
	}

	for day > maxDays {
		day -= maxDays
		month++
		if month > 12 {
			month = 1
			year++
		}
		maxDays = calendar.DaysInMonth(month, year)
	}

	year++

	return domain.Date{Day: day, Month: month, Year: year}
}

// ComputeWOA returns the gestational age elapsed between the LNMP (taken at
// local midnight) and the engine's current instant.
func (e *Engine) ComputeWOA(lnmp string) (domain.GestationalAge, error) {
	d, err := calendar.ParseDate(lnmp)
	if err != nil {
		return domain.GestationalAge{}, err
	}

	if e.Now == nil {
		return domain.GestationalAge{}, domain.NewError(domain.KindSystemTimeUnavailable)
	}

	start := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
	elapsed := e.Now().Sub(start)
	if elapsed < 0 {
		return domain.GestationalAge{}, domain.NewError(domain.KindFutureDateError)
	}

	totalDays := int(elapsed / (secondsPerDay * time.Second))
	return domain.GestationalAge{
		Weeks: totalDays / daysPerWeek,
		Days:  totalDays % daysPerWeek,
	}, nil
}

// Compute runs the EDD and WOA calculations, each re-parsing the input
// independently, and stops at the first failure.
func (e *Engine) Compute(lnmp string) (*domain.Result, error) {
	edd, err := e.ComputeEDD(lnmp)
	if err != nil {
		return nil, err
	}

	age, err := e.ComputeWOA(lnmp)
	if err != nil {
		return nil, err
	}

	return &domain.Result{
		LNMP: lnmp,
		EDD:  edd,
		WOA:  age.String(),
		Age:  age,
	}, nil
}
