package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cisync/internal/domain/commands"
	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the repositories present on both GitHub and AppVeyor",
		Long: `Cross-reference the organization's GitHub repositories with the
projects of the AppVeyor account and print the repositories that
would be touched by "propagate" and "webhooks". Nothing is changed.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the reconciliation and prints the candidates.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		handleError("Loading config", err)
		return
	}

	handleError("List", it.command.Execute(context.Background(), settings, commands.ListOptions{
		Output: cmd.OutOrStdout(),
	}))
}
