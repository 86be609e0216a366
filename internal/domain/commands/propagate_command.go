package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

const (
	workflowDirPerm  = 0o755
	workflowFilePerm = 0o644
)

// Propagate is the interface for the propagate command.
type Propagate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PropagateOptions) error
}

// PropagateOptions holds runtime options for the propagate command.
type PropagateOptions struct {
	Execute bool // without it only the plan is printed
	Output  io.Writer
}

// propagateStats counts the outcome of a propagation run.
type propagateStats struct {
	updated   int
	unchanged int
	failed    int
}

// PropagateCommand overwrites the CI workflow in every reconciled repository:
// clone -> write workflow -> commit -> push.
type PropagateCommand struct {
	factory   repositories.ClientFactory
	workspace repositories.WorkspaceRepository
}

// NewPropagateCommand creates a new PropagateCommand.
func NewPropagateCommand(
	factory repositories.ClientFactory,
	workspace repositories.WorkspaceRepository,
) *PropagateCommand {
	return &PropagateCommand{
		factory:   factory,
		workspace: workspace,
	}
}

// Execute reconciles the repositories and, when asked to, pushes the canonical
// workflow to each of them. A failing repository does not stop the run.
func (it *PropagateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PropagateOptions,
) error {
	github, err := it.factory.GitHub(settings)
	if err != nil {
		return err
	}

	directory, result, err := reconcile(ctx, github, it.factory.AppVeyor(settings))
	if err != nil {
		return err
	}

	out := outputOrStdout(opts.Output)
	printCandidates(out, "add/override CI", result.Included)
	if !opts.Execute {
		fmt.Fprintln(out, "Dry run: re-run with --execute to push the workflow to these repositories.")
		return nil
	}
	if len(result.Included) == 0 {
		return nil
	}

	workflow, err := github.FetchWorkflow(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch workflow: %w", err)
	}

	vcs := it.factory.VersionControl(settings)
	stats := propagateStats{}
	total := len(result.Included)
	for i, id := range result.Included {
		logger.Infof("Processing %s... (%d out of %d)", id, i+1, total)

		propagateErr := it.propagateRepository(ctx, vcs, settings, directory.RepoName(id, settings.Organization),
			directory.URL(id), workflow)
		switch {
		case propagateErr == nil:
			stats.updated++
		case errors.Is(propagateErr, entities.ErrNothingToCommit):
			logger.Infof("%s already has the current workflow", id)
			stats.unchanged++
		default:
			logger.Errorf("Failed to propagate CI to %s: %v", id, propagateErr)
			stats.failed++
		}
	}

	logger.Infof(
		"Propagation complete: %d repos processed, %d updated, %d unchanged, %d errors",
		total, stats.updated, stats.unchanged, stats.failed,
	)
	return nil
}

// propagateRepository runs the full cycle for one repository inside a scratch
// directory that is released on every path.
func (it *PropagateCommand) propagateRepository(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
	settings *entities.Settings,
	name, url, workflow string,
) error {
	workDir, err := it.workspace.Acquire()
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	defer func() {
		if releaseErr := it.workspace.Release(workDir); releaseErr != nil {
			logger.Warnf("Failed to remove workspace %q: %v", workDir, releaseErr)
		}
	}()

	repoDir := filepath.Join(workDir, name)
	if cloneErr := vcs.Clone(ctx, url, repoDir); cloneErr != nil {
		return fmt.Errorf("failed to clone %s: %w", url, cloneErr)
	}

	if writeErr := writeWorkflow(repoDir, settings.Workflow.Target, workflow); writeErr != nil {
		return writeErr
	}

	return vcs.CommitAndPush(ctx, repoDir, settings.Commit.Message)
}

// writeWorkflow overwrites (or creates) the workflow file with the template verbatim.
func writeWorkflow(repoDir, target, workflow string) error {
	path := filepath.Join(repoDir, filepath.FromSlash(target))
	if err := os.MkdirAll(filepath.Dir(path), workflowDirPerm); err != nil {
		return fmt.Errorf("failed to create %q: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(workflow), workflowFilePerm); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
