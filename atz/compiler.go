package atz

import (
	"sort"
	"sync"

	"github.com/jpfluger/atzresolve/atzcal"
	"github.com/jpfluger/atzresolve/atzdata"
)

// CompiledRule is one activation of a Rule within a specific year: the
// clock reading at which it takes effect (already adjusted for AtMode) and
// the offset it contributes. Prev/Next link neighbours within the same
// year's list and are never populated across year boundaries.
type CompiledRule struct {
	Rule     *atzdata.Rule
	StartsOn atzcal.DateTime
	Offset   int64
	Prev     *CompiledRule
	Next     *CompiledRule
}

// compiledRuleList is a year's worth of compiled rules, sorted ascending by
// StartsOn and linked Prev/Next.
type compiledRuleList []*CompiledRule

// CompiledPeriod is a Period materialized with a resolved local interval and
// a lazily populated, per-year cache of compiled rules. It is the only
// mutable state owned by a Resolver.
type CompiledPeriod struct {
	Period *atzdata.Period
	From   atzcal.DateTime
	Until  atzcal.DateTime

	mu    sync.Mutex
	years map[int]compiledRuleList
}

// Contains reports whether dt falls in this period's half-open [From, Until) interval.
func (cp *CompiledPeriod) Contains(dt atzcal.DateTime) bool {
	return atzcal.Compare(dt, cp.From) >= 0 && atzcal.Compare(dt, cp.Until) < 0
}

// compilePeriods materializes a zone's periods in order, resolving each
// period's Until boundary and chaining From to the previous period's Until.
// The final period in the slice never ends; its Until is forced to
// atzcal.DomainMax regardless of its declared Until fields.
func compilePeriods(zone *atzdata.Zone) []*CompiledPeriod {
	compiled := make([]*CompiledPeriod, 0, len(zone.Periods))
	prevUntil := atzcal.DomainMin()

	for i, period := range zone.Periods {
		cp := &CompiledPeriod{
			Period: period,
			From:   prevUntil,
			years:  make(map[int]compiledRuleList),
		}

		if i == len(zone.Periods)-1 {
			cp.Until = atzcal.DomainMax()
		} else {
			cp.Until = resolvePeriodUntil(cp)
		}

		compiled = append(compiled, cp)
		prevUntil = cp.Until
	}

	sort.Slice(compiled, func(i, j int) bool {
		return atzcal.Compare(compiled[i].Until, compiled[j].Until) < 0
	})

	return compiled
}

// resolvePeriodUntil computes a non-final period's Until boundary, applying
// the until_time_mode adjustment against the last rule active in
// until_year.
func resolvePeriodUntil(cp *CompiledPeriod) atzcal.DateTime {
	p := cp.Period
	untilLocal := resolveRelativeDay(p.UntilYear, p.UntilMonth, p.UntilDay, p.UntilTime)

	if p.UntilDay == nil {
		return untilLocal
	}

	rule := lastRuleForYear(cp, p.UntilYear)
	if rule == nil {
		return untilLocal
	}

	switch p.UntilTimeMode {
	case atzdata.AtModeStandard:
		return atzcal.AddSeconds(untilLocal, rule.Offset)
	case atzdata.AtModeUniversal:
		return atzcal.AddSeconds(untilLocal, p.Offset+rule.Offset)
	default:
		return untilLocal
	}
}

// lastRuleForYear returns the Rule (from a YearBoundRule applicable to
// year) whose absolute activation in year is the latest, with no AtMode
// adjustment applied. It returns nil if the period has no rule family or no
// rule applies in year.
func lastRuleForYear(cp *CompiledPeriod, year int) *atzdata.Rule {
	family := cp.Period.RuleFamily
	if family == nil {
		return nil
	}

	var best *atzdata.Rule
	var bestAt atzcal.DateTime
	found := false

	for _, ybr := range family.Rules {
		if !ybr.Applies(year) {
			continue
		}
		at := resolveRelativeDay(year, ybr.Rule.InMonth, ybr.Rule.OnDay, ybr.Rule.At)
		if !found || atzcal.Compare(at, bestAt) >= 0 {
			best = ybr.Rule
			bestAt = at
			found = true
		}
	}

	return best
}

// compileRulesForYear lazily builds and caches the compiled rule list for
// (cp, year), including the carry-over rule seeded from the previous year's
// last-active rule. Callers must hold cp.mu.
func (cp *CompiledPeriod) compileRulesForYear(year int) compiledRuleList {
	if list, ok := cp.years[year]; ok {
		return list
	}

	var list compiledRuleList

	if seed := lastRuleForYear(cp, year-1); seed != nil {
		list = append(list, &CompiledRule{
			Rule:     seed,
			StartsOn: atzcal.EncodeDate(year, 1, 1),
			Offset:   seed.Offset,
		})
	}

	if family := cp.Period.RuleFamily; family != nil {
		for _, ybr := range family.Rules {
			if !ybr.Applies(year) {
				continue
			}
			abs := resolveRelativeDay(year, ybr.Rule.InMonth, ybr.Rule.OnDay, ybr.Rule.At)
			switch ybr.Rule.AtMode {
			case atzdata.AtModeStandard:
				abs = atzcal.AddSeconds(abs, ybr.Rule.Offset)
			case atzdata.AtModeUniversal:
				abs = atzcal.AddSeconds(abs, cp.Period.Offset+ybr.Rule.Offset)
			}
			list = append(list, &CompiledRule{
				Rule:     ybr.Rule,
				StartsOn: abs,
				Offset:   ybr.Rule.Offset,
			})
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return atzcal.Compare(list[i].StartsOn, list[j].StartsOn) < 0
	})

	for i := range list {
		if i > 0 {
			list[i].Prev = list[i-1]
		}
		if i < len(list)-1 {
			list[i].Next = list[i+1]
		}
	}

	cp.years[year] = list
	return list
}

// findMatchingRule returns the last compiled rule active at or before dt
// within dt's year, or nil if none qualifies (the period's base offset
// applies with no daylight adjustment).
func (cp *CompiledPeriod) findMatchingRule(dt atzcal.DateTime) *CompiledRule {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	list := cp.compileRulesForYear(atzcal.YearOf(dt))

	var match *CompiledRule
	for _, r := range list {
		if atzcal.Compare(r.StartsOn, dt) <= 0 {
			match = r
		} else {
			break
		}
	}
	return match
}
