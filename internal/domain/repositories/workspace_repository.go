package repositories

// WorkspaceRepository hands out scratch directories for repository clones.
type WorkspaceRepository interface {
	// Acquire creates a new empty directory.
	Acquire() (string, error)

	// Release removes a directory returned by Acquire and everything under it.
	Release(dir string) error
}
