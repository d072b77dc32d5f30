package domain

import (
	"fmt"
	"strings"
)

// SummaryReport is the human-facing digest of a Porutham.
type SummaryReport struct {
	Percentage int      `json:"percentage"`
	Verdict    string   `json:"verdict"`
	Pros       []string `json:"pros"`
	Cons       []string `json:"cons"`
	Narrative  string   `json:"narrative,omitempty"`
}

// Verdict tiers by percentage.
const (
	VerdictExcellent = "Excellent Match"
	VerdictGood      = "Good Match"
	VerdictAverage   = "Average Match"
	VerdictPoor      = "Not Recommended"
)

// VerdictTier maps a percentage onto a verdict tier.
func VerdictTier(pct int) string {
	switch {
	case pct >= 75:
		return VerdictExcellent
	case pct >= 60:
		return VerdictGood
	case pct >= 50:
		return VerdictAverage
	default:
		return VerdictPoor
	}
}

func buildSummary(p Porutham, bride, groom Star) SummaryReport {
	pct := Percentage(p.Score)
	s := SummaryReport{
		Percentage: pct,
		Verdict:    VerdictTier(pct),
		Pros:       []string{},
		Cons:       []string{},
	}

	if p.Results[RuleRajju].Status == StatusMatch {
		s.Pros = append(s.Pros, fmt.Sprintf("Rajju porutham matches (%s and %s)", bride.Rajju, groom.Rajju))
	} else {
		s.Cons = append(s.Cons, fmt.Sprintf("Both stars share the %s rajju", bride.Rajju))
	}

	if p.Results[RuleRasi].Status == StatusMatch {
		s.Pros = append(s.Pros, "Rasi porutham matches")
	} else {
		s.Cons = append(s.Cons, "Rasi porutham does not match")
	}

	if p.Results[RuleYoni].Status == StatusMatch {
		s.Pros = append(s.Pros, fmt.Sprintf("Yoni porutham matches (%s and %s)", bride.Yoni, groom.Yoni))
	} else {
		s.Cons = append(s.Cons, fmt.Sprintf("Yoni animals %s and %s are enemies", bride.Yoni, groom.Yoni))
	}

	switch {
	case p.Dosham.Status == StatusMatch && p.Dosham.Bride.HasDosham:
		s.Pros = append(s.Pros, "Both horoscopes carry Chevvai Dosham, which balances out")
	case p.Dosham.Status == StatusMatch:
		s.Pros = append(s.Pros, "No Chevvai Dosham in either horoscope")
	case p.Dosham.Bride.HasDosham:
		s.Cons = append(s.Cons, "Chevvai Dosham is present only in the bride's horoscope")
	default:
		s.Cons = append(s.Cons, "Chevvai Dosham is present only in the groom's horoscope")
	}

	s.Narrative = narrative(p, pct, bride, groom)
	return s
}

func narrative(p Porutham, pct int, bride, groom Star) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The bride's star %s (%s) and the groom's star %s (%s) score %.1f out of %.0f, or %d%%. ",
		bride.Name, bride.TamilName, groom.Name, groom.TamilName, p.Score, MaxScore, pct)
	fmt.Fprintf(&b, "%d of %d important poruthams match. ", p.ImportantMatches, len(ImportantRules))
	b.WriteString(p.Recommendation)
	return b.String()
}
