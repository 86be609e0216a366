//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

func TestRequireSecret(t *testing.T) {
	t.Parallel()

	t.Run("should fail for an empty credential", func(t *testing.T) {
		t.Parallel()

		// given
		secret := entities.NewSecret("")

		// when
		err := entities.RequireSecret(secret, "GitHub personal access token")

		// then
		require.ErrorIs(t, err, entities.ErrMissingCredential)
		assert.Contains(t, err.Error(), "GitHub personal access token")
	})

	t.Run("should fail for the legacy placeholder", func(t *testing.T) {
		t.Parallel()

		// given
		secret := entities.NewSecret("<secret>")

		// when
		err := entities.RequireSecret(secret, "AppVeyor bearer")

		// then
		require.ErrorIs(t, err, entities.ErrMissingCredential)
		assert.False(t, secret.Present())
	})

	t.Run("should pass for a real credential", func(t *testing.T) {
		t.Parallel()

		// given
		secret := entities.NewSecret("ghp_abc123")

		// when
		err := entities.RequireSecret(secret, "GitHub personal access token")

		// then
		require.NoError(t, err)
		assert.Equal(t, "ghp_abc123", secret.Value())
	})

	t.Run("should never print the credential", func(t *testing.T) {
		t.Parallel()

		// given
		secret := entities.NewSecret("ghp_abc123")

		// when / then
		assert.Equal(t, "<redacted>", secret.String())
		assert.Equal(t, "<unset>", entities.NewSecret("").String())
	})
}
