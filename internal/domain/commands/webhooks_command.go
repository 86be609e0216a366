package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// Webhooks is the interface for the webhooks command.
type Webhooks interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WebhooksOptions) error
}

// WebhooksOptions holds runtime options for the webhooks command.
type WebhooksOptions struct {
	Enabled bool // target state of the matching webhooks
	Execute bool // without it only the plan is printed
	Output  io.Writer
}

// WebhooksCommand enables or disables the generic webhooks of every reconciled repository.
type WebhooksCommand struct {
	factory repositories.ClientFactory
}

// NewWebhooksCommand creates a new WebhooksCommand.
func NewWebhooksCommand(factory repositories.ClientFactory) *WebhooksCommand {
	return &WebhooksCommand{factory: factory}
}

// Execute reconciles the repositories and, when asked to, toggles their webhooks.
// Toggles already applied are not rolled back when a later one fails.
func (it *WebhooksCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WebhooksOptions,
) error {
	github, err := it.factory.GitHub(settings)
	if err != nil {
		return err
	}

	directory, result, err := reconcile(ctx, github, it.factory.AppVeyor(settings))
	if err != nil {
		return err
	}

	action := "disable webhooks"
	if opts.Enabled {
		action = "enable webhooks"
	}

	out := outputOrStdout(opts.Output)
	printCandidates(out, action, result.Included)
	if !opts.Execute {
		fmt.Fprintf(out, "Dry run: re-run with --execute to %s in these repositories.\n", action)
		return nil
	}

	toggled := 0
	failed := 0
	total := len(result.Included)
	for i, id := range result.Included {
		logger.Infof("Processing %s... (%d out of %d)", id, i+1, total)

		name := directory.RepoName(id, settings.Organization)
		count, toggleErr := it.toggleRepository(ctx, github, settings, id, name, opts.Enabled)
		toggled += count
		if errors.Is(toggleErr, entities.ErrMissingCredential) {
			return toggleErr
		}
		if toggleErr != nil {
			logger.Errorf("Failed to toggle webhooks in %s: %v", id, toggleErr)
			failed++
		}
	}

	logger.Infof(
		"Webhooks complete: %d repos processed, %d webhooks toggled, %d errors",
		total, toggled, failed,
	)
	return nil
}

// toggleRepository toggles every matching webhook of one repository, even
// after one of them fails, and returns how many succeeded. A missing
// credential stops it at once.
func (it *WebhooksCommand) toggleRepository(
	ctx context.Context,
	github repositories.GitHubRepository,
	settings *entities.Settings,
	id, name string,
	enabled bool,
) (int, error) {
	hooks, err := github.ListWebhooks(ctx, name)
	if err != nil {
		return 0, err
	}

	toggled := 0
	var errs []error
	for _, hook := range hooks {
		if hook.Kind != settings.Webhooks.Kind {
			logger.Infof("Ignoring hook %s in %s", hook.Kind, id)
			continue
		}

		updated, toggleErr := github.ToggleWebhook(ctx, name, hook.ID, enabled)
		if errors.Is(toggleErr, entities.ErrMissingCredential) {
			return toggled, toggleErr
		}
		if toggleErr != nil {
			logger.Warnf("Failed to toggle webhook %d in %s: %v", hook.ID, id, toggleErr)
			errs = append(errs, fmt.Errorf("webhook %d: %w", hook.ID, toggleErr))
			continue
		}
		toggled++
		logger.Debugf("Webhook %d in %s is now active=%v", updated.ID, id, updated.Active)
	}
	return toggled, errors.Join(errs...)
}
