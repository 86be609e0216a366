//go:build unit

package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cisync/internal/infrastructure/repositories/workspace"
)

func TestWorkspaceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should create distinct empty directories", func(t *testing.T) {
		t.Parallel()

		// given
		repo := workspace.NewWorkspaceRepositoryIn(t.TempDir())

		// when
		first, firstErr := repo.Acquire()
		second, secondErr := repo.Acquire()

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.NotEqual(t, first, second)
		assert.DirExists(t, first)
		entries, err := os.ReadDir(first)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should remove a populated directory on release", func(t *testing.T) {
		t.Parallel()

		// given
		repo := workspace.NewWorkspaceRepositoryIn(t.TempDir())
		dir, err := repo.Acquire()
		require.NoError(t, err)
		nested := filepath.Join(dir, "repo", ".github", "workflows")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, "ci.yml"), []byte("name: CI\n"), 0o644))

		// when
		releaseErr := repo.Release(dir)

		// then
		require.NoError(t, releaseErr)
		assert.NoDirExists(t, dir)
	})

	t.Run("should fail when the base directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := workspace.NewWorkspaceRepositoryIn(filepath.Join(t.TempDir(), "missing"))

		// when
		dir, err := repo.Acquire()

		// then
		require.Error(t, err)
		assert.Empty(t, dir)
	})
}
