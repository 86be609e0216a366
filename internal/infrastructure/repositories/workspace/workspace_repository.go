package workspace

import (
	"fmt"
	"os"

	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

const dirPattern = "cisync-*"

// WorkspaceRepository implements repositories.WorkspaceRepository with
// temporary directories under baseDir ("" means the OS default).
type WorkspaceRepository struct {
	baseDir string
}

// NewWorkspaceRepository creates a workspace in the OS temporary directory.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

// NewWorkspaceRepositoryIn creates a workspace rooted at baseDir.
func NewWorkspaceRepositoryIn(baseDir string) repositories.WorkspaceRepository {
	return &WorkspaceRepository{baseDir: baseDir}
}

// Acquire creates a new empty temporary directory.
func (w *WorkspaceRepository) Acquire() (string, error) {
	dir, err := os.MkdirTemp(w.baseDir, dirPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	return dir, nil
}

// Release removes dir and its content.
func (w *WorkspaceRepository) Release(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	return nil
}
