package atz

import (
	"time"

	"github.com/jpfluger/atzresolve/atzcal"
	"github.com/jpfluger/atzresolve/atzdata"
	"github.com/teambition/rrule-go"
)

// isoWeekdays maps 1..7 (Monday=1..Sunday=7) to rrule-go's weekday
// constants directly. atz cannot import atime: atime's wall-clock helpers
// (atime/zones.go) resolve offsets through this package's process-wide
// cache, so the dependency runs atime -> atz and a reverse import here would
// cycle.
var isoWeekdays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// resolveRelativeDay turns a (year, month, relative day, seconds-of-day)
// tuple into an absolute DateTime, interpreted in whatever reference frame
// the caller later applies (local, standard, or universal).
//
// LastOfMonth is computed through github.com/teambition/rrule-go's
// byweekday-nth recurrence engine rather than a hand-rolled backward day
// walk. NthOfMonth's "on or after a
// given day of month" semantics is not what an rrule nth-weekday ordinal
// means (a 2nd-Sunday rrule counts from the 1st of the month regardless of
// where that weekday first lands, which only coincides with "first Sunday
// >= afterDay" when afterDay is 7n+1) so that branch still walks the
// day-of-week/day-of-month relationship directly.
func resolveRelativeDay(year, month int, rel *atzdata.RelativeDay, secondsOfDay int64) atzcal.DateTime {
	if rel == nil {
		return atzcal.EncodeDateTime(year, month, 1, secondsOfDay)
	}

	switch rel.Kind {
	case atzdata.RelativeDayFixed:
		return atzcal.EncodeDateTime(year, month, rel.Day, secondsOfDay)

	case atzdata.RelativeDayLastOfMonth:
		day := lastWeekdayOfMonth(year, month, rel.Weekday)
		return atzcal.EncodeDateTime(year, month, day, secondsOfDay)

	case atzdata.RelativeDayNthOfMonth:
		day := firstWeekdayOnOrAfter(year, month, rel.Weekday, rel.AfterDay)
		return atzcal.EncodeDateTime(year, month, day, secondsOfDay)

	default:
		return atzcal.EncodeDateTime(year, month, 1, secondsOfDay)
	}
}

// lastWeekdayOfMonth returns the day-of-month of the last occurrence of
// weekday (1..7, Monday=1) in (year, month).
func lastWeekdayOfMonth(year, month, weekday int) int {
	rrWeekday := isoWeekdays[weekday-1]
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.MONTHLY,
		Dtstart:   first,
		Byweekday: []rrule.Weekday{rrWeekday.Nth(-1)},
		Count:     1,
	})
	if err != nil {
		return atzcal.DaysInMonth(year, month)
	}
	occurrences := rule.All()
	if len(occurrences) == 0 {
		return atzcal.DaysInMonth(year, month)
	}
	return occurrences[0].Day()
}

// firstWeekdayOnOrAfter returns the smallest day-of-month >= afterDay whose
// day-of-week is weekday (1..7, Monday=1), staying within (year, month).
func firstWeekdayOnOrAfter(year, month, weekday, afterDay int) int {
	daysInMonth := atzcal.DaysInMonth(year, month)
	if afterDay < 1 {
		afterDay = 1
	}
	for day := afterDay; day <= daysInMonth; day++ {
		if atzcal.DayOfWeek(atzcal.EncodeDate(year, month, day)) == weekday {
			return day
		}
	}
	// Well-formed rule families always find a match within the month; fall
	// back to the last matching weekday if the bound was set unreasonably
	// high.
	return lastWeekdayOfMonth(year, month, weekday)
}
