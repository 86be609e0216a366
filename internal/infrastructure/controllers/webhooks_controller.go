package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cisync/internal/domain/commands"
	"github.com/rios0rios0/cisync/internal/domain/entities"
)

const (
	webhooksEnable  = "enable"
	webhooksDisable = "disable"
)

// WebhooksController handles the "webhooks enable|disable" subcommand.
type WebhooksController struct {
	command commands.Webhooks
}

// NewWebhooksController creates a new WebhooksController.
func NewWebhooksController(command commands.Webhooks) *WebhooksController {
	return &WebhooksController{command: command}
}

// GetBind returns the Cobra command metadata for the webhooks controller.
func (it *WebhooksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "webhooks <enable|disable>",
		Short: "Enable or disable the generic webhooks of every reconciled repository",
		Long: `Activate or deactivate the generic ("web") webhooks of every repository
present on both GitHub and AppVeyor. Other webhook kinds are left alone.

Without --execute the repositories are only listed.`,
		Args: webhooksArgs,
	}
}

// Execute toggles the webhooks.
func (it *WebhooksController) Execute(cmd *cobra.Command, args []string) {
	execute, _ := cmd.Flags().GetBool("execute")

	settings, err := loadSettings(cmd)
	if err != nil {
		handleError("Loading config", err)
		return
	}

	handleError("Webhook toggle", it.command.Execute(context.Background(), settings, commands.WebhooksOptions{
		Enabled: args[0] == webhooksEnable,
		Execute: execute,
		Output:  cmd.OutOrStdout(),
	}))
}

// AddFlags adds the webhooks-specific flags to the given Cobra command.
func (it *WebhooksController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("execute", false, "Apply the change on GitHub (default: dry run)")
}

func webhooksArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if args[0] != webhooksEnable && args[0] != webhooksDisable {
		return fmt.Errorf("invalid argument %q, expected %q or %q", args[0], webhooksEnable, webhooksDisable)
	}
	return nil
}
