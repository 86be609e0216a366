//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// SpyWorkspaceRepository implements repositories.WorkspaceRepository under Root.
// Released directories are recorded but left on disk so tests can inspect them.
type SpyWorkspaceRepository struct {
	Root       string
	AcquireErr error
	Acquired   []string
	Released   []string
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (s *SpyWorkspaceRepository) Acquire() (string, error) {
	if s.AcquireErr != nil {
		return "", s.AcquireErr
	}
	dir := filepath.Join(s.Root, fmt.Sprintf("workspace-%d", len(s.Acquired)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	s.Acquired = append(s.Acquired, dir)
	return dir, nil
}

func (s *SpyWorkspaceRepository) Release(dir string) error {
	s.Released = append(s.Released, dir)
	return nil
}

// Outstanding returns the acquired directories that were never released.
func (s *SpyWorkspaceRepository) Outstanding() []string {
	released := make(map[string]bool, len(s.Released))
	for _, dir := range s.Released {
		released[dir] = true
	}
	var outstanding []string
	for _, dir := range s.Acquired {
		if !released[dir] {
			outstanding = append(outstanding, dir)
		}
	}
	return outstanding
}

// ErrWorkspace is a canned Acquire failure.
var ErrWorkspace = errors.New("no space left on device")
