// Command matchfind prints the ranked list of compatible (star, rasi)
// counterparts for a known star and rasi.
//
// Usage:
//
//	go run ./cmd/matchfind -star 1 -rasi 1 -seeking groom
//	go run ./cmd/matchfind -star 12 -rasi 6 -seeking bride -min-score 7 -limit 5 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/couchcryptid/porutham-service/internal/domain"
)

func main() {
	star := flag.Int("star", 0, "known star ID (1-27)")
	rasi := flag.Int("rasi", 0, "known rasi ID (1-12)")
	seeking := flag.String("seeking", "groom", "side being searched for: groom or bride")
	minScore := flag.Float64("min-score", domain.DefaultMatchOptions.MinScore, "minimum total score (at least 6)")
	limit := flag.Int("limit", domain.DefaultMatchOptions.Limit, "maximum number of candidates (at most 10)")
	asJSON := flag.Bool("json", false, "print JSON instead of a table")
	flag.Parse()

	side, err := domain.ParseSeeking(*seeking)
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchfind:", err)
		os.Exit(2)
	}

	candidates, err := domain.FindMatches(*star, *rasi, side, domain.MatchOptions{MinScore: *minScore, Limit: *limit})
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchfind:", err)
		os.Exit(2)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(candidates)
	} else {
		err = printTable(os.Stdout, candidates)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchfind:", err)
		os.Exit(1)
	}
}

func printTable(w io.Writer, candidates []domain.MatchCandidate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSTAR\tRASI\tPADAS\tSCORE\tIMPORTANT\t%\tCAN MARRY")
	for i, c := range candidates {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%.1f\t%d\t%d\t%t\n",
			i+1, c.Star.Name, c.Rasi.Name, c.Padas, c.TotalScore, c.ImportantScore, c.Percentage, c.CanMarry)
	}
	return tw.Flush()
}
