package domain

import "fmt"

// Date is a validated Gregorian calendar date. Instances are only created by
// the calendar parser, so Day always fits the month length for Month/Year.
type Date struct {
	Day   int
	Month int
	Year  int
}

// String formats the date as dd/mm/yyyy with zero-padded day and month.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// GestationalAge is the elapsed time since the LNMP expressed as complete
// weeks plus remaining days. Weeks is non-negative; Days is in [0, 6].
type GestationalAge struct {
	Weeks int `json:"weeks" yaml:"weeks"`
	Days  int `json:"days" yaml:"days"`
}

// String renders the age as "N week(s)" or "N week(s), M day(s)". The day
// component is omitted when zero; units are singular exactly at value 1.
func (g GestationalAge) String() string {
	s := fmt.Sprintf("%d %s", g.Weeks, pluralize(g.Weeks, "week"))
	if g.Days > 0 {
		s += fmt.Sprintf(", %d %s", g.Days, pluralize(g.Days, "day"))
	}
	return s
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// Result is the success payload of a combined computation.
type Result struct {
	LNMP string         `json:"lnmp" yaml:"lnmp"`
	EDD  string         `json:"edd" yaml:"edd"`
	WOA  string         `json:"woa" yaml:"woa"`
	Age  GestationalAge `json:"gestational_age" yaml:"gestational_age"`
}
