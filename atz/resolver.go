// Package atz compiles the bundled static time-zone database (package
// atzdata) into per-zone resolvers that classify a local instant as
// standard, daylight, ambiguous, or invalid, and report its UTC offset and
// display abbreviation.
package atz

import (
	"strings"

	"github.com/jpfluger/atzresolve/alog"
	"github.com/jpfluger/atzresolve/atzcal"
	"github.com/jpfluger/atzresolve/atzdata"
)

// Resolver answers offset, classification, and display-name queries for one
// canonical zone. A Resolver is safe for concurrent use: its only mutable
// state is each CompiledPeriod's lazily-populated per-year rule cache,
// guarded by that period's own mutex.
type Resolver struct {
	zone    *atzdata.Zone
	periods []*CompiledPeriod
}

// New builds a Resolver for id, matching zone names then alias names,
// case-insensitively. Returns an UnknownZoneError if id matches neither.
func New(id string) (*Resolver, error) {
	zone := findZone(id)
	if zone == nil {
		return nil, UnknownZoneError(id)
	}

	r := &Resolver{
		zone:    zone,
		periods: compilePeriods(zone),
	}

	alog.LOGGER(alog.LOGGER_ATZ).Debug().
		Str("requested_id", id).
		Str("resolved_id", zone.Name).
		Int("periods", len(r.periods)).
		Msg("atz resolver compiled")

	return r, nil
}

// findZone looks up id case-insensitively against zone names, then alias
// names.
func findZone(id string) *atzdata.Zone {
	lower := strings.ToLower(strings.TrimSpace(id))
	for _, z := range atzdata.CZones {
		if strings.ToLower(z.Name) == lower {
			return z
		}
	}
	for _, a := range atzdata.CAliases {
		if strings.ToLower(a.Name) == lower {
			return a.Target
		}
	}
	return nil
}

// ID returns the canonical zone name, never the alias spelling a Resolver
// may have been constructed from.
func (r *Resolver) ID() string {
	return r.zone.Name
}

// OffsetsAndType locates the period and active rule covering dt and returns
// its base offset, daylight-saving contribution, and classification.
// Returns an OutOfRangeError wrapped as *aerr.Error if no compiled period
// covers dt.
func (r *Resolver) OffsetsAndType(dt atzcal.DateTime) (offset int64, dstSave int64, kind Classification, err error) {
	period := findPeriod(r.periods, dt)
	if period == nil {
		aerrErr := OutOfRangeError(r.zone.Name, dt)
		return 0, 0, Standard, aerrErr
	}

	rule := period.findMatchingRule(dt)
	c := classify(period, rule, dt)
	return c.Offset, c.DSTSave, c.Type, nil
}

// DisplayName returns the abbreviation in force at dt. When the
// classification is Ambiguous and forceDaylight is true, it returns the
// other side of the fold (the daylight abbreviation) instead of the
// standard one.
func (r *Resolver) DisplayName(dt atzcal.DateTime, forceDaylight bool) (string, error) {
	period := findPeriod(r.periods, dt)
	if period == nil {
		return "", OutOfRangeError(r.zone.Name, dt)
	}

	rule := period.findMatchingRule(dt)
	c := classify(period, rule, dt)

	if c.Type == Ambiguous && forceDaylight {
		return c.DSTDisplay, nil
	}
	return c.Display, nil
}

// KnownZones returns every canonical zone name, plus every alias name when
// includeAliases is true.
func KnownZones(includeAliases bool) []string {
	names := make([]string, 0, len(atzdata.CZones)+len(atzdata.CAliases))
	for _, z := range atzdata.CZones {
		names = append(names, z.Name)
	}
	if includeAliases {
		for _, a := range atzdata.CAliases {
			names = append(names, a.Name)
		}
	}
	return names
}
