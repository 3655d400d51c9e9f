package artifact

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveChart_WritesImageUnderRoot(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	image := []byte{0x89, 'P', 'N', 'G'}
	saved, err := store.SaveChart(filepath.Join("out", "types.png"), image)
	if err != nil {
		t.Fatalf("SaveChart error: %v", err)
	}

	want := filepath.Join(root, "out", "types.png")
	if saved != want {
		t.Fatalf("expected saved path %q, got %q", want, saved)
	}
	if !filepath.IsAbs(saved) {
		t.Fatalf("expected absolute saved path, got %q", saved)
	}

	got, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("reading saved chart: %v", err)
	}
	if !bytes.Equal(got, image) {
		t.Fatalf("saved bytes differ: got %v, want %v", got, image)
	}
}

func TestSaveChart_CreatesNestedDirectories(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	saved, err := store.SaveChart(filepath.Join("out", "charts", "2026", "types.png"), []byte("img"))
	if err != nil {
		t.Fatalf("SaveChart error: %v", err)
	}
	if _, err := os.Stat(saved); err != nil {
		t.Fatalf("expected chart file at %s: %v", saved, err)
	}
}

func TestSaveChart_OverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	if _, err := store.SaveChart("types.png", []byte("old")); err != nil {
		t.Fatalf("first SaveChart error: %v", err)
	}
	saved, err := store.SaveChart("types.png", []byte("new"))
	if err != nil {
		t.Fatalf("second SaveChart error: %v", err)
	}

	got, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("reading saved chart: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("expected overwritten content %q, got %q", "new", string(got))
	}
}

func TestSaveChart_RespectsAbsolutePath(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	store := NewStore(root)

	target := filepath.Join(other, "elsewhere.png")
	saved, err := store.SaveChart(target, []byte("img"))
	if err != nil {
		t.Fatalf("SaveChart error: %v", err)
	}
	if saved != target {
		t.Fatalf("expected saved path %q, got %q", target, saved)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected chart file at %s: %v", target, err)
	}
}

func TestSaveChart_LeavesNoTempFileBehind(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	saved, err := store.SaveChart("types.png", []byte("img"))
	if err != nil {
		t.Fatalf("SaveChart error: %v", err)
	}
	if _, err := os.Stat(saved + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, stat err=%v", err)
	}
}
