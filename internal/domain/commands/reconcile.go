package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// reconcile fetches both repository sources and cross-references them,
// logging every GitHub repository that AppVeyor does not build.
func reconcile(
	ctx context.Context,
	github repositories.GitHubRepository,
	appveyor repositories.AppVeyorRepository,
) (entities.RepositoryDirectory, entities.Reconciliation, error) {
	appveyorRepos, err := appveyor.ListRepositories(ctx)
	if err != nil {
		return nil, entities.Reconciliation{}, fmt.Errorf("failed to list AppVeyor repositories: %w", err)
	}
	logger.Debugf("AppVeyor builds %d repositories", len(appveyorRepos))

	githubRepos, err := github.ListOrgRepositories(ctx)
	if err != nil {
		return nil, entities.Reconciliation{}, fmt.Errorf("failed to list GitHub repositories: %w", err)
	}
	logger.Debugf("GitHub organization has %d repositories", len(githubRepos))

	result := entities.Intersect(githubRepos, appveyorRepos)
	for _, id := range result.Skipped {
		logger.Infof("Skipping %s because it is not on AppVeyor.", id)
	}

	return githubRepos, result, nil
}

// printCandidates writes the reconciled repository list for the operator to review.
func printCandidates(out io.Writer, action string, repos []string) {
	fmt.Fprintf(out, "\nReady to %s in the following %d repos:\n", action, len(repos))
	if len(repos) > 0 {
		fmt.Fprintf(out, "\t%s\n", strings.Join(repos, "\n\t"))
	}
	fmt.Fprintln(out)
}

func outputOrStdout(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}
