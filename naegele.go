// Package naegele computes obstetric date estimates from a Last Normal
// Menstrual Period (LNMP) date given in dd/mm/yyyy form: the Estimated Due
// Date (EDD) via Naegele's rule and the elapsed Weeks of Amenorrhea (WOA).
//
// The package is a thin string-in/string-out facade over the calculation
// engine, suitable for embedding in other hosts (CLI, web bindings). Callers
// needing a deterministic clock should use calculation.NewEngineAt via the
// internal packages; this facade always reads the system clock for WOA.
package naegele

import (
	"errors"

	"github.com/rgehrsitz/naegele/internal/calculation"
	"github.com/rgehrsitz/naegele/internal/domain"
)

// Sentinel errors for each failure class. All errors returned by this
// package match exactly one of these under errors.Is.
var (
	ErrNullOrEmptyInput      error = domain.NewError(domain.KindNullOrEmptyInput)
	ErrInvalidFormat         error = domain.NewError(domain.KindInvalidFormat)
	ErrInvalidDate           error = domain.NewError(domain.KindInvalidDate)
	ErrDateConversion        error = domain.NewError(domain.KindDateConversionError)
	ErrSystemTimeUnavailable error = domain.NewError(domain.KindSystemTimeUnavailable)
	ErrFutureDate            error = domain.NewError(domain.KindFutureDateError)
)

// ComputeEDD returns the estimated due date (dd/mm/yyyy) for the given LNMP.
func ComputeEDD(lnmp string) (string, error) {
	return calculation.NewEngine().ComputeEDD(lnmp)
}

// ComputeWOA returns the elapsed weeks of amenorrhea for the given LNMP,
// formatted as "N week(s)" or "N week(s), M day(s)".
func ComputeWOA(lnmp string) (string, error) {
	age, err := calculation.NewEngine().ComputeWOA(lnmp)
	if err != nil {
		return "", err
	}
	return age.String(), nil
}

// Compute returns both the due date and the weeks of amenorrhea. The two
// computations each re-validate the input; the first failure wins and no
// partial result is returned.
func Compute(lnmp string) (edd, woa string, err error) {
	res, err := calculation.NewEngine().Compute(lnmp)
	if err != nil {
		return "", "", err
	}
	return res.EDD, res.WOA, nil
}

// ErrorMessage maps an error returned by this package to its fixed
// human-readable message. Any other error maps to "Unknown error".
func ErrorMessage(err error) string {
	return domain.MessageFor(err)
}

// IsCalculatorError reports whether err originated from this package's
// closed error enumeration.
func IsCalculatorError(err error) bool {
	var cerr *domain.Error
	return errors.As(err, &cerr)
}
