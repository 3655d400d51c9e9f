package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mspanwala8/pokestat/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

const rankingBarWidth = 24

// miniBar scales a count against the ranking maximum so the widest bar
// always fills rankingBarWidth cells.
func miniBar(count, max int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	n := count * rankingBarWidth / max
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

const maxRankingRows = 12

func renderReport(r domain.Report) string {
	var b strings.Builder

	b.WriteString("Job: ")
	b.WriteString(r.Job)
	b.WriteString("\nURL: ")
	b.WriteString(r.URL)
	b.WriteString(fmt.Sprintf("\nDuration: %s\n\n", r.Duration().Round(time.Millisecond)))

	b.WriteString(fmt.Sprintf("Entries: %d total, %d distinct\n", r.Summary.Total, r.Summary.Distinct()))
	if top, ok := r.Summary.Top(); ok {
		b.WriteString(fmt.Sprintf("Top: %s (%d)\n", top.Name, top.Count))
	}

	if len(r.Summary.Ranking) > 0 {
		b.WriteString("\n")

		maxCount := r.Summary.Ranking[0].Count
		shown := r.Summary.Ranking
		var more int
		if len(shown) > maxRankingRows {
			more = len(shown) - maxRankingRows
			shown = shown[:maxRankingRows]
		}
		for _, e := range shown {
			b.WriteString(fmt.Sprintf("  %-16s %-*s %d\n",
				clampString(e.Name, 16), rankingBarWidth, miniBar(e.Count, maxCount), e.Count))
		}
		if more > 0 {
			b.WriteString(fmt.Sprintf("  (+%d more)\n", more))
		}
	}

	b.WriteString("\n")
	if r.ChartPath != "" {
		b.WriteString("Chart: ")
		b.WriteString(r.ChartPath)
		b.WriteString("\n")
	}
	if r.Notified {
		b.WriteString("Notified: yes\n")
	} else {
		b.WriteString("Notified: no\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			b.WriteString("  - [")
			b.WriteString(string(w.Stage))
			b.WriteString("] ")
			b.WriteString(w.Message)
			b.WriteString("\n")
		}
	}

	return b.String()
}
