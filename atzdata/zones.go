package atzdata

// ruleFamilyEU models the EU-wide daylight-saving rule in force since 1996:
// clocks move forward one hour at 01:00 UTC on the last Sunday of March, and
// back at 01:00 UTC on the last Sunday of October. Because both readings are
// literal UTC instants (AtModeUniversal), one family can be shared by every
// EU zone regardless of each zone's own base offset.
var ruleFamilyEU = &RuleFamily{
	Name: "EU",
	Rules: []*YearBoundRule{
		{
			StartYear: 1996,
			EndYear:   9999,
			Rule: &Rule{
				InMonth: 3,
				OnDay:   ptrRelativeDay(LastWeekday(7)),
				At:      3600, // 01:00 UTC
				AtMode:  AtModeUniversal,
				Offset:  3600,
				FmtPart: "S",
			},
		},
		{
			StartYear: 1996,
			EndYear:   9999,
			Rule: &Rule{
				InMonth: 10,
				OnDay:   ptrRelativeDay(LastWeekday(7)),
				At:      3600, // 01:00 UTC
				AtMode:  AtModeUniversal,
				Offset:  0,
				FmtPart: "",
			},
		},
	},
}

// ruleFamilyUS models the current United States daylight-saving rule (in
// force since the Energy Policy Act of 2005 took effect in 2007): clocks
// move forward one hour at 02:00 standard time on the second Sunday of
// March, and back at 02:00 daylight time (01:00 standard time) on the first
// Sunday of November. Both readings are expressed in standard time
// (AtModeStandard) rather than UTC, because the transition happens at the
// same local clock reading in every US zone even though each zone crosses
// that reading at a different UTC instant.
var ruleFamilyUS = &RuleFamily{
	Name: "US",
	Rules: []*YearBoundRule{
		{
			StartYear: 2007,
			EndYear:   9999,
			Rule: &Rule{
				InMonth: 3,
				OnDay:   ptrRelativeDay(NthWeekday(7, 8)), // 2nd Sunday
				At:      7200,                             // 02:00 standard time
				AtMode:  AtModeStandard,
				Offset:  3600,
				FmtPart: "D",
			},
		},
		{
			StartYear: 2007,
			EndYear:   9999,
			Rule: &Rule{
				InMonth: 11,
				OnDay:   ptrRelativeDay(NthWeekday(7, 1)), // 1st Sunday
				At:      3600,                             // 01:00 standard time
				AtMode:  AtModeStandard,
				Offset:  0,
				FmtPart: "S",
			},
		},
	},
}

func ptrRelativeDay(rd RelativeDay) *RelativeDay {
	return &rd
}

var zoneUTC = &Zone{
	Name: "UTC",
	Periods: []*Period{
		{Offset: 0, Fmt: "UTC"},
	},
}

var zoneBucharest = &Zone{
	Name: "Europe/Bucharest",
	Periods: []*Period{
		{
			Offset:        7200,
			Fmt:           "EET",
			UntilYear:     1997,
			UntilMonth:    1,
			UntilDay:      ptrRelativeDay(FixedDay(1)),
			UntilTime:     0,
			UntilTimeMode: AtModeLocal,
		},
		{
			Offset:     7200,
			RuleFamily: ruleFamilyEU,
			Fmt:        "EE%sT",
		},
	},
}

var zoneParis = &Zone{
	Name: "Europe/Paris",
	Periods: []*Period{
		{
			Offset:     3600,
			RuleFamily: ruleFamilyEU,
			Fmt:        "CE%sT",
		},
	},
}

var zoneNewYork = &Zone{
	Name: "America/New_York",
	Periods: []*Period{
		{
			Offset:        -18000,
			Fmt:           "EST",
			UntilYear:     2007,
			UntilMonth:    1,
			UntilDay:      ptrRelativeDay(FixedDay(1)),
			UntilTime:     0,
			UntilTimeMode: AtModeLocal,
		},
		{
			Offset:     -18000,
			RuleFamily: ruleFamilyUS,
			Fmt:        "E%sT",
		},
	},
}

var zoneLosAngeles = &Zone{
	Name: "America/Los_Angeles",
	Periods: []*Period{
		{
			Offset:     -28800,
			RuleFamily: ruleFamilyUS,
			Fmt:        "P%sT",
		},
	},
}

var zoneTokyo = &Zone{
	Name: "Asia/Tokyo",
	Periods: []*Period{
		{Offset: 32400, Fmt: "JST"},
	},
}

// CZones is the bundled, illustrative zone database. It is representative
// rather than a full mirror of the upstream IANA tables: six zones sharing
// two rule families, enough to exercise period compilation, lazy per-year
// rule compilation, and every classification (standard, daylight, invalid,
// ambiguous).
var CZones = []*Zone{
	zoneUTC,
	zoneBucharest,
	zoneParis,
	zoneNewYork,
	zoneLosAngeles,
	zoneTokyo,
}

// CAliases maps alternate zone spellings to their canonical Zone.
var CAliases = []*Alias{
	{Name: "US/Eastern", Target: zoneNewYork},
	{Name: "US/Pacific", Target: zoneLosAngeles},
}
