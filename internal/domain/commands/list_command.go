package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ListOptions) error
}

// ListOptions holds runtime options for the list command.
type ListOptions struct {
	Output io.Writer
}

// ListCommand prints the repositories that both GitHub and AppVeyor know about.
// It never mutates anything.
type ListCommand struct {
	factory repositories.ClientFactory
}

// NewListCommand creates a new ListCommand.
func NewListCommand(factory repositories.ClientFactory) *ListCommand {
	return &ListCommand{factory: factory}
}

// Execute reconciles the two sources and prints the candidates.
func (it *ListCommand) Execute(ctx context.Context, settings *entities.Settings, opts ListOptions) error {
	github, err := it.factory.GitHub(settings)
	if err != nil {
		return err
	}

	_, result, err := reconcile(ctx, github, it.factory.AppVeyor(settings))
	if err != nil {
		return err
	}

	out := outputOrStdout(opts.Output)
	printCandidates(out, "add/override CI", result.Included)
	fmt.Fprintln(out, "Please check carefully that all desired repositories are present, "+
		"then run 'cisync propagate --execute' or 'cisync webhooks disable --execute'.")
	return nil
}
