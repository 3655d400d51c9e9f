package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mspanwala8/pokestat/internal/domain"
)

func TestLoadSettings_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial settings (no paths)
	content := []byte("pokestat:\n  defaults:\n    job: water-types\n")
	if err := os.WriteFile(filepath.Join(root, "pokestat.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings(root)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}

	if settings.Defaults.Job != "water-types" {
		t.Fatalf("expected default job=water-types, got=%s", settings.Defaults.Job)
	}
	if settings.Paths.ConfigsDir != "configs" {
		t.Fatalf("expected configs dir=configs, got=%s", settings.Paths.ConfigsDir)
	}
	if settings.Paths.JobsDir != "jobs" {
		t.Fatalf("expected jobs dir=jobs, got=%s", settings.Paths.JobsDir)
	}
}

func TestLoadSettings_OverridesPaths(t *testing.T) {
	tmp := t.TempDir()
	content := []byte("pokestat:\n  paths:\n    configs_dir: conf\n    jobs_dir: tasks\n")
	if err := os.WriteFile(filepath.Join(tmp, "pokestat.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings(tmp)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}

	if settings.Paths.ConfigsDir != "conf" {
		t.Fatalf("expected configs dir=conf, got=%s", settings.Paths.ConfigsDir)
	}
	if settings.Paths.JobsDir != "tasks" {
		t.Fatalf("expected jobs dir=tasks, got=%s", settings.Paths.JobsDir)
	}
	if settings.Defaults.Job != "pokemon-types" {
		t.Fatalf("expected default job=pokemon-types, got=%s", settings.Defaults.Job)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	tmp := t.TempDir()

	_, err := LoadSettings(tmp)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoadSettings_MalformedYAML(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "pokestat.yaml"), []byte("pokestat: [broken\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadSettings(tmp)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
