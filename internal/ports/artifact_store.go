package ports

// ArtifactStore persists rendered chart images.
type ArtifactStore interface {
	// SaveChart writes the image to path, overwriting any existing file,
	// and returns the absolute location of the artifact.
	SaveChart(path string, image []byte) (savedPath string, err error)
}
