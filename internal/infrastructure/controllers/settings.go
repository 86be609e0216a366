package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// loadSettings reads the persistent flags shared by every subcommand and
// returns the settings of the run with both credentials resolved.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	githubToken, _ := cmd.Flags().GetString("github-token")
	appveyorToken, _ := cmd.Flags().GetString("appveyor-token")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	settings.ApplyCredentials(githubToken, appveyorToken)

	logger.Debugf("GitHub token: %s, AppVeyor token: %s",
		settings.GitHubSecret(), settings.AppVeyorSecret())
	return settings, nil
}

// handleError terminates the process with status 1 when a command aborted.
// Per-repository failures never reach it: the commands log them and go on.
func handleError(action string, err error) {
	if err == nil {
		return
	}
	logger.Fatalf("%s failed: %v", action, err)
}
