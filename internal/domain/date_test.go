package domain

import "testing"

func TestDateString(t *testing.T) {
	cases := []struct {
		date Date
		want string
	}{
		{Date{Day: 8, Month: 10, Year: 2024}, "08/10/2024"},
		{Date{Day: 31, Month: 12, Year: 1900}, "31/12/1900"},
		{Date{Day: 1, Month: 1, Year: 2100}, "01/01/2100"},
	}

	for _, tc := range cases {
		if got := tc.date.String(); got != tc.want {
			t.Errorf("Date%+v.String() = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestGestationalAgeString(t *testing.T) {
	cases := []struct {
		age  GestationalAge
		want string
	}{
		{GestationalAge{Weeks: 10, Days: 0}, "10 weeks"},
		{GestationalAge{Weeks: 10, Days: 3}, "10 weeks, 3 days"},
		{GestationalAge{Weeks: 1, Days: 0}, "1 week"},
		{GestationalAge{Weeks: 0, Days: 1}, "0 weeks, 1 day"},
		{GestationalAge{Weeks: 1, Days: 1}, "1 week, 1 day"},
		{GestationalAge{Weeks: 0, Days: 0}, "0 weeks"},
		{GestationalAge{Weeks: 2, Days: 6}, "2 weeks, 6 days"},
	}

	for _, tc := range cases {
		if got := tc.age.String(); got != tc.want {
			t.Errorf("GestationalAge%+v.String() = %q, want %q", tc.age, got, tc.want)
		}
	}
}
