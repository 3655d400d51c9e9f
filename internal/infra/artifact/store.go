// Package artifact persists rendered chart images on the local filesystem.
package artifact

import (
	"os"
	"path/filepath"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

// Store writes chart images under a workspace root. Relative save paths
// are resolved against the root; absolute paths are used as-is.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

var _ ports.ArtifactStore = (*Store)(nil)

func (s *Store) SaveChart(path string, image []byte) (string, error) {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.root, target)
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "artifact.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, image, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "artifact.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "artifact.rename",
			Kind: domain.KindExecution,
			Path: target,
			Err:  err,
		}
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return target, nil
	}
	return abs, nil
}
