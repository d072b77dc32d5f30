package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Seeking is the side of the match being searched for.
type Seeking string

const (
	SeekingGroom Seeking = "groom" // the known profile is the bride
	SeekingBride Seeking = "bride" // the known profile is the groom
)

// ParseSeeking reads a direction flag, case-insensitively.
func ParseSeeking(s string) (Seeking, error) {
	switch Seeking(strings.ToLower(strings.TrimSpace(s))) {
	case SeekingGroom:
		return SeekingGroom, nil
	case SeekingBride:
		return SeekingBride, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeek, s)
	}
}

// Bounds every search honors, whatever the caller asks for.
const (
	MatchScoreFloor = 6.0
	MaxMatchResults = 10
)

// MatchOptions bounds a match search.
type MatchOptions struct {
	MinScore float64
	Limit    int
}

// DefaultMatchOptions keeps candidates scoring at least 6 and returns the top 10.
var DefaultMatchOptions = MatchOptions{MinScore: MatchScoreFloor, Limit: MaxMatchResults}

// Clamp raises MinScore to MatchScoreFloor and pins Limit to
// 1..MaxMatchResults. A zero or oversized Limit becomes MaxMatchResults.
func (o MatchOptions) Clamp() MatchOptions {
	if o.MinScore < MatchScoreFloor || math.IsNaN(o.MinScore) {
		o.MinScore = MatchScoreFloor
	}
	if o.Limit < 1 || o.Limit > MaxMatchResults {
		o.Limit = MaxMatchResults
	}
	return o
}

// MatchCandidate is one ranked counterpart.
type MatchCandidate struct {
	Star           Star    `json:"star"`
	Rasi           Rasi    `json:"rasi"`
	Percentage     int     `json:"percentage"`
	TotalScore     float64 `json:"total_score"`
	ImportantScore int     `json:"important_score"`
	CanMarry       bool    `json:"can_marry"`
	Details        Results `json:"details"`
	Padas          []int   `json:"padas"`
}

// FindMatches scores the known (star, rasi) against every reachable
// (star, rasi) span and returns the best candidates. Ranking is by total
// score, then important matches, then percentage; ties keep span order.
// Options are clamped first.
func FindMatches(starID, rasiID int, seeking Seeking, opts MatchOptions) ([]MatchCandidate, error) {
	opts = opts.Clamp()
	if _, ok := StarByID(starID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStar, starID)
	}
	if _, ok := RasiByID(rasiID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRasi, rasiID)
	}
	if seeking != SeekingGroom && seeking != SeekingBride {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeek, seeking)
	}

	known := Party{StarID: starID, RasiID: rasiID}
	candidates := make([]MatchCandidate, 0, len(starRasiSpans))

	for _, span := range starRasiSpans {
		other := Party{StarID: span.StarID, RasiID: span.RasiID}
		bride, groom := known, other
		if seeking == SeekingBride {
			bride, groom = other, known
		}

		p, ok := Evaluate(bride, groom)
		if !ok || p.Score < opts.MinScore {
			continue
		}

		star, _ := StarByID(span.StarID)
		rasi, _ := RasiByID(span.RasiID)
		candidates = append(candidates, MatchCandidate{
			Star:           star,
			Rasi:           rasi,
			Percentage:     p.Summary.Percentage,
			TotalScore:     p.Score,
			ImportantScore: p.ImportantMatches,
			CanMarry:       p.CanMarry,
			Details:        p.Results,
			Padas:          append([]int(nil), span.Padas...),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.ImportantScore != b.ImportantScore {
			return a.ImportantScore > b.ImportantScore
		}
		return a.Percentage > b.Percentage
	})

	if len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	return candidates, nil
}
