//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/infrastructure/controllers"
	"github.com/rios0rios0/cisync/test/domain/commanddoubles"
)

// execute mounts the controller under a root command carrying the global
// flags and runs it with the given arguments and a minimal config file.
func execute(t *testing.T, controller entities.Controller, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "cisync.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("organization: vostok\n"), 0o600))
	return executeWithConfig(t, controller, configPath, args...)
}

func executeWithConfig(
	t *testing.T,
	controller entities.Controller,
	configPath string,
	args ...string,
) (*bytes.Buffer, error) {
	t.Helper()

	root := &cobra.Command{Use: "cisync"}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().String("github-token", "", "")
	root.PersistentFlags().String("appveyor-token", "", "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")

	bind := controller.GetBind()
	sub := &cobra.Command{
		Use:  bind.Use,
		Args: bind.Args,
		Run: func(command *cobra.Command, arguments []string) {
			controller.Execute(command, arguments)
		},
	}
	if fc, ok := controller.(entities.FlagsController); ok {
		fc.AddFlags(sub)
	}
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--config", configPath))
	return out, root.Execute()
}

func TestListController(t *testing.T) {
	t.Parallel()

	t.Run("should pass settings, credentials and the output writer to the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubListCommand{}
		controller := controllers.NewListController(command)

		// when
		out, err := execute(t, controller, "list", "--github-token", "gh", "--appveyor-token", "av")

		// then
		require.NoError(t, err)
		require.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "vostok", command.LastSettings.Organization)
		assert.Equal(t, "gh", command.LastSettings.GitHubSecret().Value())
		assert.Equal(t, "av", command.LastSettings.AppVeyorSecret().Value())
		assert.Same(t, out, command.LastOpts.Output)
	})

	t.Run("should reject positional arguments", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubListCommand{}
		controller := controllers.NewListController(command)

		// when
		_, err := execute(t, controller, "list", "extra")

		// then
		require.Error(t, err)
		assert.Zero(t, command.ExecuteCallCount)
	})
}

func TestPropagateController(t *testing.T) {
	t.Parallel()

	t.Run("should default to a dry run", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubPropagateCommand{}
		controller := controllers.NewPropagateController(command)

		// when
		_, err := execute(t, controller, "propagate")

		// then
		require.NoError(t, err)
		require.Equal(t, 1, command.ExecuteCallCount)
		assert.False(t, command.LastOpts.Execute)
	})

	t.Run("should mutate only with --execute", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubPropagateCommand{}
		controller := controllers.NewPropagateController(command)

		// when
		_, err := execute(t, controller, "propagate", "--execute")

		// then
		require.NoError(t, err)
		assert.True(t, command.LastOpts.Execute)
	})
}

func TestWebhooksController(t *testing.T) {
	t.Parallel()

	t.Run("should map enable and disable to the target state", func(t *testing.T) {
		t.Parallel()

		for arg, enabled := range map[string]bool{"enable": true, "disable": false} {
			// given
			command := &commanddoubles.StubWebhooksCommand{}
			controller := controllers.NewWebhooksController(command)

			// when
			_, err := execute(t, controller, "webhooks", arg, "--execute")

			// then
			require.NoError(t, err)
			assert.Equal(t, enabled, command.LastOpts.Enabled, arg)
			assert.True(t, command.LastOpts.Execute, arg)
		}
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubWebhooksCommand{}
		controller := controllers.NewWebhooksController(command)

		// when
		_, err := execute(t, controller, "webhooks", "toggle")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid argument "toggle"`)
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should require exactly one action", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubWebhooksCommand{}
		controller := controllers.NewWebhooksController(command)

		// when
		_, err := execute(t, controller, "webhooks")

		// then
		require.Error(t, err)
		assert.Zero(t, command.ExecuteCallCount)
	})
}

// captureExit replaces the exit function of the global logger until the test ends.
func captureExit(t *testing.T) *int {
	t.Helper()

	exitCode := -1
	standard := logger.StandardLogger()
	previous := standard.ExitFunc
	standard.ExitFunc = func(code int) { exitCode = code }
	t.Cleanup(func() { standard.ExitFunc = previous })
	return &exitCode
}

// Not parallel: it replaces the exit function of the global logger.
func TestMissingCredentialExitsWithStatusOne(t *testing.T) {
	// given
	exitCode := captureExit(t)
	command := &commanddoubles.StubWebhooksCommand{
		ExecuteErr: fmt.Errorf("GitHub personal access token: %w", entities.ErrMissingCredential),
	}
	controller := controllers.NewWebhooksController(command)

	// when
	_, err := execute(t, controller, "webhooks", "disable", "--execute")

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, *exitCode)
}

// Not parallel: it replaces the exit function of the global logger.
func TestAbortedCommandExitsWithStatusOne(t *testing.T) {
	// given
	exitCode := captureExit(t)
	command := &commanddoubles.StubListCommand{
		ExecuteErr: errors.New("failed to list AppVeyor repositories: AppVeyor API error (status 500)"),
	}
	controller := controllers.NewListController(command)

	// when
	_, err := execute(t, controller, "list")

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, command.ExecuteCallCount)
	assert.Equal(t, 1, *exitCode)
}

// Not parallel: it replaces the exit function of the global logger.
func TestUnreadableConfigExitsWithStatusOne(t *testing.T) {
	// given
	exitCode := captureExit(t)
	command := &commanddoubles.StubPropagateCommand{}
	controller := controllers.NewPropagateController(command)
	configPath := filepath.Join(t.TempDir(), "cisync.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("organization: [not, a, name]\n"), 0o600))

	// when
	_, err := executeWithConfig(t, controller, configPath, "propagate", "--execute")

	// then
	require.NoError(t, err)
	assert.Zero(t, command.ExecuteCallCount)
	assert.Equal(t, 1, *exitCode)
}

// Not parallel: it replaces the exit function of the global logger.
func TestSuccessfulCommandDoesNotExit(t *testing.T) {
	// given
	exitCode := captureExit(t)
	command := &commanddoubles.StubPropagateCommand{}
	controller := controllers.NewPropagateController(command)

	// when
	_, err := execute(t, controller, "propagate", "--execute")

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, command.ExecuteCallCount)
	assert.Equal(t, -1, *exitCode)
}
