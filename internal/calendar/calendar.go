// Package calendar parses and validates dd/mm/yyyy date strings against the
// Gregorian calendar. All functions are pure; the supported year range is
// 1900-2100.
package calendar

import (
	"github.com/rgehrsitz/naegele/internal/domain"
)

const (
	MinYear = 1900
	MaxYear = 2100

	// dd/mm/yyyy
	dateStrLen = 10
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap-year February. Months outside [1, 12] return 0.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// IsValidDate reports whether day/month/year is a real calendar date within
// the supported year range.
func IsValidDate(day, month, year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > DaysInMonth(month, year) {
		return false
	}
	return true
}

// ParseDate parses a dd/mm/yyyy string into a validated Date. The format is
// strict: exactly 10 characters, two-digit day, two-digit month, four-digit
// year, '/' separators.
func ParseDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, domain.NewError(domain.KindNullOrEmptyInput)
	}
	if len(s) != dateStrLen || s[2] != '/' || s[5] != '/' {
		return domain.Date{}, domain.NewError(domain.KindInvalidFormat)
	}

	day, ok := parseDigits(s[0:2])
	if !ok {
		return domain.Date{}, domain.NewError(domain.KindInvalidFormat)
	}
	month, ok := parseDigits(s[3:5])
	if !ok {
		return domain.Date{}, domain.NewError(domain.KindInvalidFormat)
	}
	year, ok := parseDigits(s[6:10])
	if !ok {
		return domain.Date{}, domain.NewError(domain.KindInvalidFormat)
	}

	if !IsValidDate(day, month, year) {
		return domain.Date{}, domain.NewError(domain.KindInvalidDate)
	}

	return domain.Date{Day: day, Month: month, Year: year}, nil
}

// parseDigits parses a fixed-width run of ASCII digits. Unlike strconv.Atoi
// it rejects signs and whitespace, which the strict format forbids.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
