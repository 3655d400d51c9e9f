// Package aggregate derives counting statistics from a fetched collection.
package aggregate

import (
	"sort"

	"github.com/mspanwala8/pokestat/internal/domain"
)

// Apply tallies records by name.
//
// Policy:
// - Names compare case-sensitively with no normalization.
// - Ranking sorts by count descending; equal counts keep the order in
//   which the name first appeared in the input.
// - Empty input yields a zero summary, not an error.
func Apply(records []domain.Record) domain.Summary {
	summary := domain.Summary{
		Total:        len(records),
		Distribution: domain.Distribution{},
		Ranking:      domain.Ranking{},
	}

	firstSeen := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := summary.Distribution[r.Name]; !ok {
			firstSeen[r.Name] = i
		}
		summary.Distribution[r.Name]++
	}

	summary.Ranking = make(domain.Ranking, 0, len(summary.Distribution))
	for name, count := range summary.Distribution {
		summary.Ranking = append(summary.Ranking, domain.RankEntry{Name: name, Count: count})
	}
	sort.Slice(summary.Ranking, func(i, j int) bool {
		a, b := summary.Ranking[i], summary.Ranking[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return firstSeen[a.Name] < firstSeen[b.Name]
	})

	return summary
}
