// Package calendar holds the timezone aware day and season arithmetic used by
// the frequency calculations. All functions are pure; "now" is always passed in.
package calendar

import (
	"time"
)

type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

var AllSeasons = []Season{Winter, Spring, Summer, Fall}

func (s Season) String() string {
	return string(s)
}

func (s Season) Valid() bool {
	switch s {
	case Winter, Spring, Summer, Fall:
		return true
	}
	return false
}

// SeasonOf returns the meteorological season of t, using the month of t in its own location.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}

// LocalMidnight returns 00:00 of the local calendar day containing now.
func LocalMidnight(loc *time.Location, now time.Time) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DaysBefore returns local midnight of the day that is `days` calendar days before today.
// AddDate is used instead of subtracting 24h chunks, so DST transitions keep the result on midnight.
func DaysBefore(loc *time.Location, now time.Time, days int) time.Time {
	return LocalMidnight(loc, now).AddDate(0, 0, -days)
}

// SeasonStart returns 00:00 local of the first day of the season now falls into.
// In January and February that is December 1st of the previous year.
func SeasonStart(loc *time.Location, now time.Time) time.Time {
	local := now.In(loc)
	year := local.Year()

	var month time.Month
	switch SeasonOf(local) {
	case Spring:
		month = time.March
	case Summer:
		month = time.June
	case Fall:
		month = time.September
	default:
		month = time.December
		if local.Month() < time.March {
			year--
		}
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// DaysAgo returns how many local calendar days ago ts happened, seen from now.
// Anything after today's local midnight counts as 0 days ago, including future timestamps.
func DaysAgo(ts time.Time, loc *time.Location, now time.Time) int {
	midnight := LocalMidnight(loc, now)
	if !ts.Before(midnight) {
		return 0
	}

	return civilDaysBetween(ts.In(loc), midnight)
}

// SameLocalDay reports whether a and b fall on the same calendar day in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// civilDaysBetween counts calendar dates from a's date up to b's date.
// Both dates are moved to UTC noon, where every day is exactly 24h long.
func civilDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
