package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mspanwala8/pokestat/internal/domain"
)

var (
	reLine     = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reKeyQuote = regexp.MustCompile(`key "([^"]+)"`)
	reKeyBare  = regexp.MustCompile(`key ([A-Za-z0-9_.-]+):`)
)

// userMessage turns pipeline errors into short, human phrasing for the UI;
// the full error goes to the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			if strings.Contains(oe.Op, "config.list_jobs") {
				return "Jobs directory not found"
			}
			return "Not found"

		case domain.KindMissingOption:
			k := extractKeyName(err.Error())
			if k == "" {
				return "Missing config key"
			}
			return "Missing config key " + k

		case domain.KindConfigLoad:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Cannot read " + base

		case domain.KindInvalidConfig:
			if k := extractKeyName(err.Error()); k != "" {
				return "Invalid value for " + k
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindFetch:
			return "Fetch failed (see logs)"

		case domain.KindRender:
			return "Chart rendering failed (see logs)"

		case domain.KindNotify:
			return "Notification failed (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractKeyName(s string) string {
	if m := reKeyQuote.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	if m := reKeyBare.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
