package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cisync/internal/domain/commands"
	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// PropagateController handles the "propagate" subcommand.
type PropagateController struct {
	command commands.Propagate
}

// NewPropagateController creates a new PropagateController.
func NewPropagateController(command commands.Propagate) *PropagateController {
	return &PropagateController{command: command}
}

// GetBind returns the Cobra command metadata for the propagate controller.
func (it *PropagateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "propagate",
		Short: "Overwrite the CI workflow in every reconciled repository",
		Long: `Download the canonical GitHub Actions workflow and commit it to
every repository present on both GitHub and AppVeyor.

Without --execute the repositories are only listed.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the propagation.
func (it *PropagateController) Execute(cmd *cobra.Command, _ []string) {
	execute, _ := cmd.Flags().GetBool("execute")

	settings, err := loadSettings(cmd)
	if err != nil {
		handleError("Loading config", err)
		return
	}

	handleError("Propagation", it.command.Execute(context.Background(), settings, commands.PropagateOptions{
		Execute: execute,
		Output:  cmd.OutOrStdout(),
	}))
}

// AddFlags adds the propagate-specific flags to the given Cobra command.
func (it *PropagateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("execute", false, "Clone, commit and push the workflow (default: dry run)")
}
