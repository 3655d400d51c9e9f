package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mspanwala8/pokestat/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create pokestat.yaml at root
	if err := os.WriteFile(filepath.Join(root, "pokestat.yaml"), []byte("pokestat:\n  defaults:\n    job: pokemon-types\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_AcceptsFilePathAsStart(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(filepath.Join(root, "jobs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "pokestat.yaml"), []byte("pokestat: {}\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	jobPath := filepath.Join(root, "jobs", "pokemon-types.yaml")
	if err := os.WriteFile(jobPath, []byte("param_type: type\n"), 0o644); err != nil {
		t.Fatalf("write job: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(jobPath)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStartDir(t *testing.T) {
	f := NewFinder()
	_, err := f.FindRoot("")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
