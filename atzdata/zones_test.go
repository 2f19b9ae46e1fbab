package atzdata

import (
	"strings"
	"testing"
)

func TestCZonesNonEmpty(t *testing.T) {
	if len(CZones) == 0 {
		t.Fatalf("CZones must not be empty")
	}
	for _, z := range CZones {
		if strings.TrimSpace(z.Name) == "" {
			t.Errorf("zone has empty name")
		}
		if len(z.Periods) == 0 {
			t.Errorf("zone %s has no periods", z.Name)
		}
	}
}

func TestLastPeriodHasNoUntilDay(t *testing.T) {
	for _, z := range CZones {
		last := z.Periods[len(z.Periods)-1]
		if last.UntilDay != nil {
			t.Errorf("zone %s: last period must never end (UntilDay must be nil), got %+v", z.Name, last.UntilDay)
		}
	}
}

func TestNonLastPeriodsHaveUntilDay(t *testing.T) {
	for _, z := range CZones {
		for i, p := range z.Periods[:len(z.Periods)-1] {
			if p.UntilDay == nil {
				t.Errorf("zone %s: period %d is not last but has no UntilDay", z.Name, i)
			}
		}
	}
}

func TestAliasesResolveToKnownZones(t *testing.T) {
	known := map[*Zone]bool{}
	for _, z := range CZones {
		known[z] = true
	}
	for _, a := range CAliases {
		if a.Target == nil || !known[a.Target] {
			t.Errorf("alias %s targets a zone not present in CZones", a.Name)
		}
	}
}

func TestRuleFamiliesNonEmpty(t *testing.T) {
	seen := map[*RuleFamily]bool{}
	for _, z := range CZones {
		for _, p := range z.Periods {
			if p.RuleFamily == nil {
				continue
			}
			if seen[p.RuleFamily] {
				continue
			}
			seen[p.RuleFamily] = true
			if len(p.RuleFamily.Rules) == 0 {
				t.Errorf("rule family %s has no rules", p.RuleFamily.Name)
			}
		}
	}
}

func TestRuleFamilySharedAcrossZones(t *testing.T) {
	// ruleFamilyEU backs both Europe/Bucharest (its second period) and Europe/Paris.
	bucharestFamily := zoneBucharest.Periods[len(zoneBucharest.Periods)-1].RuleFamily
	parisFamily := zoneParis.Periods[0].RuleFamily
	if bucharestFamily == nil || parisFamily == nil || bucharestFamily != parisFamily {
		t.Errorf("expected Europe/Bucharest and Europe/Paris to share one RuleFamily by pointer")
	}

	nyFamily := zoneNewYork.Periods[len(zoneNewYork.Periods)-1].RuleFamily
	laFamily := zoneLosAngeles.Periods[0].RuleFamily
	if nyFamily == nil || laFamily == nil || nyFamily != laFamily {
		t.Errorf("expected America/New_York and America/Los_Angeles to share one RuleFamily by pointer")
	}
}

func TestYearBoundRuleApplies(t *testing.T) {
	ybr := &YearBoundRule{StartYear: 2007, EndYear: 9999, Rule: &Rule{}}
	if !ybr.Applies(2007) {
		t.Errorf("expected 2007 to be within range")
	}
	if !ybr.Applies(2023) {
		t.Errorf("expected 2023 to be within range")
	}
	if ybr.Applies(2006) {
		t.Errorf("expected 2006 to be outside range")
	}
}

func TestPeriodFormatsContainPlaceholderWhenRuleFamilyPresent(t *testing.T) {
	for _, z := range CZones {
		for _, p := range z.Periods {
			if p.RuleFamily != nil && !strings.Contains(p.Fmt, "%s") {
				t.Errorf("zone %s: period with a rule family should carry a %%s placeholder in its format, got %q", z.Name, p.Fmt)
			}
		}
	}
}
