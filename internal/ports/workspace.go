package ports

// WorkspaceInitializer scaffolds a new workspace on disk.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
