//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

func TestNormalizeRepositoryName(t *testing.T) {
	t.Parallel()

	t.Run("should remove the organization prefix", func(t *testing.T) {
		t.Parallel()

		// given
		id := "vostok.hercules.client"

		// when
		result := entities.NormalizeRepositoryName(id, "vostok")

		// then
		assert.Equal(t, "hercules.client", result)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		ids := []string{"vostok.logging.abstractions", "vostok.vostok.x", "devtools", "vostokx.a", ""}

		for _, id := range ids {
			// when
			once := entities.NormalizeRepositoryName(id, "vostok")
			twice := entities.NormalizeRepositoryName(once, "vostok")

			// then
			assert.Equal(t, once, twice, "identifier %q", id)
		}
	})

	t.Run("should leave identifiers without the prefix unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		id := "other.repo"

		// when
		result := entities.NormalizeRepositoryName(id, "vostok")

		// then
		assert.Equal(t, "other.repo", result)
	})

	t.Run("should return the identifier when no organization is given", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.NormalizeRepositoryName("vostok.a", "")

		// then
		assert.Equal(t, "vostok.a", result)
	})
}

func TestRepositoryIDFromFullName(t *testing.T) {
	t.Parallel()

	t.Run("should replace the owner separator with a dot", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.RepositoryIDFromFullName("vostok/commons.time")

		// then
		assert.Equal(t, "vostok.commons.time", result)
	})
}

func TestRepositoryDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should list identifiers in lexicographic order", func(t *testing.T) {
		t.Parallel()

		// given
		directory := entities.RepositoryDirectory{
			"vostok.c": {Name: "c"},
			"vostok.a": {Name: "a"},
			"vostok.b": {Name: "b"},
		}

		// when
		ids := directory.IDs()

		// then
		assert.Equal(t, []string{"vostok.a", "vostok.b", "vostok.c"}, ids)
	})

	t.Run("should return the clone URL of a known identifier", func(t *testing.T) {
		t.Parallel()

		// given
		directory := entities.RepositoryDirectory{
			"vostok.a": {Name: "a", RemoteURL: "https://github.com/vostok/a"},
		}

		// when / then
		assert.Equal(t, "https://github.com/vostok/a", directory.URL("vostok.a"))
		assert.Empty(t, directory.URL("vostok.missing"))
	})

	t.Run("should keep a repository name that starts with the organization", func(t *testing.T) {
		t.Parallel()

		// given
		directory := entities.RepositoryDirectory{
			"vostok.vostok.x": {Name: "vostok.x"},
		}

		// when
		name := directory.RepoName("vostok.vostok.x", "vostok")

		// then
		assert.Equal(t, "vostok.x", name)
	})

	t.Run("should fall back to the normalized identifier without a recorded name", func(t *testing.T) {
		t.Parallel()

		// given
		directory := entities.RepositoryDirectory{}

		// when
		name := directory.RepoName("vostok.a", "vostok")

		// then
		assert.Equal(t, "a", name)
	})
}
