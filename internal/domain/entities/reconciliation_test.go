//go:build unit

package entities_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

func TestIntersect(t *testing.T) {
	t.Parallel()

	t.Run("should keep repositories known to AppVeyor and skip the rest", func(t *testing.T) {
		t.Parallel()

		// given
		github := entities.RepositoryDirectory{
			"vostok.a": {RemoteURL: "url1"},
			"vostok.b": {RemoteURL: "url2"},
		}
		appveyor := entities.NewRepositorySet("vostok.a")

		// when
		result := entities.Intersect(github, appveyor)

		// then
		assert.Equal(t, []string{"vostok.a"}, result.Included)
		assert.Equal(t, []string{"vostok.b"}, result.Skipped)
	})

	t.Run("should return the included identifiers sorted", func(t *testing.T) {
		t.Parallel()

		// given
		github := entities.RepositoryDirectory{
			"vostok.zeta":  {},
			"vostok.alpha": {},
			"vostok.mid":   {},
			"vostok.only":  {},
		}
		appveyor := entities.NewRepositorySet("vostok.mid", "vostok.zeta", "vostok.alpha", "vostok.appveyor-only")

		// when
		result := entities.Intersect(github, appveyor)

		// then
		assert.Equal(t, []string{"vostok.alpha", "vostok.mid", "vostok.zeta"}, result.Included)
		assert.True(t, sort.StringsAreSorted(result.Included))
		assert.LessOrEqual(t, len(result.Included), len(github))
		assert.Equal(t, []string{"vostok.only"}, result.Skipped)
	})

	t.Run("should return empty slices for empty inputs", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.Intersect(entities.RepositoryDirectory{}, entities.NewRepositorySet())

		// then
		assert.Empty(t, result.Included)
		assert.Empty(t, result.Skipped)
		assert.NotNil(t, result.Included)
	})
}
