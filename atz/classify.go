package atz

import (
	"github.com/jpfluger/atzresolve/atzcal"
)

// Classification is the kind of local instant a query resolves to.
type Classification int

const (
	// Standard means no daylight adjustment is in force.
	Standard Classification = iota
	// Daylight means a daylight adjustment is in force.
	Daylight
	// Ambiguous means the instant falls in a fall-back overlap and could
	// belong to either of two offsets.
	Ambiguous
	// Invalid means the instant falls in a spring-forward gap that never
	// occurred on the wall clock.
	Invalid
)

// String renders the Classification for logging and test failure messages.
func (c Classification) String() string {
	switch c {
	case Standard:
		return "Standard"
	case Daylight:
		return "Daylight"
	case Ambiguous:
		return "Ambiguous"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// findPeriod scans compiled periods from latest to earliest and returns the
// first whose [From, Until) interval contains dt, matching the expectation
// that queries cluster near the present. Returns nil if no period covers
// dt.
func findPeriod(periods []*CompiledPeriod, dt atzcal.DateTime) *CompiledPeriod {
	for i := len(periods) - 1; i >= 0; i-- {
		if periods[i].Contains(dt) {
			return periods[i]
		}
	}
	return nil
}

// classification holds everything one query resolves to.
type classification struct {
	Offset     int64
	DSTSave    int64
	Type       Classification
	Display    string
	DSTDisplay string
}

// classify applies the gap/fold/daylight/standard tests from the active
// compiled rule (if any) against dt, in the order the tests must be
// evaluated: the first matching branch wins.
func classify(period *CompiledPeriod, rule *CompiledRule, dt atzcal.DateTime) classification {
	offset := period.Period.Offset

	if rule == nil {
		return classification{
			Offset:     offset,
			DSTSave:    0,
			Type:       Standard,
			Display:    formatAbbrev(period.Period, nil),
			DSTDisplay: formatAbbrev(period.Period, nil),
		}
	}

	// Invalid (gap): the next rule's offset is larger, and dt lies in the
	// span just before it starts that the wall clock skipped.
	if rule.Next != nil && rule.Next.Offset > rule.Offset {
		gapStart := atzcal.AddSeconds(rule.Next.StartsOn, rule.Offset-rule.Next.Offset)
		if atzcal.Compare(dt, gapStart) >= 0 {
			return classification{
				Offset:     offset,
				DSTSave:    rule.Next.Offset - rule.Offset,
				Type:       Invalid,
				Display:    formatAbbrev(period.Period, rule.Rule),
				DSTDisplay: formatAbbrev(period.Period, rule.Rule),
			}
		}
	}

	// Ambiguous (fold), case 1: a year-opening carry-over rule with a
	// negative offset whose fold window has not yet elapsed.
	if rule.Prev == nil && rule.Offset < 0 {
		foldEnd := atzcal.AddSeconds(rule.StartsOn, -rule.Offset)
		if atzcal.Compare(dt, foldEnd) < 0 {
			return classification{
				Offset:     offset,
				DSTSave:    rule.Offset,
				Type:       Ambiguous,
				Display:    formatAbbrev(period.Period, rule.Rule),
				DSTDisplay: formatAbbrev(period.Period, rule.Rule),
			}
		}
	}

	// Ambiguous (fold), case 2: the previous rule's offset is larger, and
	// dt lies within the repeated span at the start of this rule.
	if rule.Prev != nil && rule.Prev.Offset > rule.Offset {
		foldEnd := atzcal.AddSeconds(rule.StartsOn, rule.Prev.Offset-rule.Offset)
		if atzcal.Compare(dt, foldEnd) < 0 {
			return classification{
				Offset:     offset,
				DSTSave:    rule.Prev.Offset - rule.Offset,
				Type:       Ambiguous,
				Display:    formatAbbrev(period.Period, rule.Rule),
				DSTDisplay: formatAbbrev(period.Period, rule.Prev.Rule),
			}
		}
	}

	if rule.Offset != 0 {
		return classification{
			Offset:     offset,
			DSTSave:    rule.Offset,
			Type:       Daylight,
			Display:    formatAbbrev(period.Period, rule.Rule),
			DSTDisplay: formatAbbrev(period.Period, rule.Rule),
		}
	}

	return classification{
		Offset:     offset,
		DSTSave:    0,
		Type:       Standard,
		Display:    formatAbbrev(period.Period, rule.Rule),
		DSTDisplay: formatAbbrev(period.Period, rule.Rule),
	}
}
