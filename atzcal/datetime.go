// Package atzcal provides the calendar primitives the zone resolver is built
// on: a neutral civil-seconds DateTime and the Gregorian arithmetic needed to
// place relative-day rules (the "last Sunday of October" family) on the
// calendar.
package atzcal

import "time"

// DateTime is a civil-seconds timestamp. It wraps time.Time pinned to UTC,
// used purely as bookkeeping for year/month/day/seconds-of-day arithmetic; it
// is never interpreted as a real-world UTC instant.
type DateTime struct {
	t time.Time
}

// EncodeDate builds a DateTime at midnight on the given Gregorian date.
func EncodeDate(year, month, day int) DateTime {
	return DateTime{t: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// EncodeDateTime builds a DateTime at the given Gregorian date and
// seconds-of-day offset.
func EncodeDateTime(year, month, day int, secondsOfDay int64) DateTime {
	return AddSeconds(EncodeDate(year, month, day), secondsOfDay)
}

// FromTime wraps an existing time.Time as a DateTime, normalizing to UTC.
func FromTime(t time.Time) DateTime {
	return DateTime{t: t.UTC()}
}

// Time returns the underlying time.Time (UTC-pinned).
func (dt DateTime) Time() time.Time {
	return dt.t
}

// Year returns the Gregorian year.
func (dt DateTime) Year() int {
	return dt.t.Year()
}

// Month returns the Gregorian month, 1..12.
func (dt DateTime) Month() int {
	return int(dt.t.Month())
}

// Day returns the day of month, 1..31.
func (dt DateTime) Day() int {
	return dt.t.Day()
}

// SecondsOfDay returns the number of seconds elapsed since local midnight.
func (dt DateTime) SecondsOfDay() int64 {
	h, m, s := dt.t.Clock()
	return int64(h)*3600 + int64(m)*60 + int64(s)
}

// IsZero reports whether this is the zero DateTime.
func (dt DateTime) IsZero() bool {
	return dt.t.IsZero()
}

// String formats the DateTime for logging and test failure messages.
func (dt DateTime) String() string {
	return dt.t.Format("2006-01-02T15:04:05")
}

// YearOf returns the Gregorian year of dt. Provided alongside the DateTime.Year
// method to match the free-function style used by the rest of the resolver.
func YearOf(dt DateTime) int {
	return dt.Year()
}

// DayOfWeek returns the ISO day of week for dt: Monday=1 .. Sunday=7.
func DayOfWeek(dt DateTime) int {
	wd := int(dt.t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DaysInMonth returns the number of days in the given Gregorian month.
func DaysInMonth(year, month int) int {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// AddSeconds returns dt shifted by n civil seconds.
func AddSeconds(dt DateTime, n int64) DateTime {
	return DateTime{t: dt.t.Add(time.Duration(n) * time.Second)}
}

// Compare returns -1, 0, or 1 as a is before, equal to, or after b.
func Compare(a, b DateTime) int {
	switch {
	case a.t.Before(b.t):
		return -1
	case a.t.After(b.t):
		return 1
	default:
		return 0
	}
}

// DomainMin is the sentinel DateTime before which no period can begin.
func DomainMin() DateTime {
	return DateTime{t: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// DomainMax is the sentinel DateTime at which the final period never ends.
func DomainMax() DateTime {
	return DateTime{t: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)}
}
