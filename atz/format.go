package atz

import (
	"strings"

	"github.com/jpfluger/atzresolve/atzdata"
)

// formatAbbrev substitutes rule's FmtPart into period's Fmt at the first
// "%s" occurrence. If Fmt has no "%s", it is returned unchanged. If rule is
// nil, the empty string is substituted.
func formatAbbrev(period *atzdata.Period, rule *atzdata.Rule) string {
	if !strings.Contains(period.Fmt, "%s") {
		return period.Fmt
	}
	fmtPart := ""
	if rule != nil {
		fmtPart = rule.FmtPart
	}
	return strings.Replace(period.Fmt, "%s", fmtPart, 1)
}
