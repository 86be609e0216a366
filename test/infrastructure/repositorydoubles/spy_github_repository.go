//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// ToggleCall records one ToggleWebhook invocation.
type ToggleCall struct {
	Repo    string
	ID      int64
	Enabled bool
}

// SpyGitHubRepository implements repositories.GitHubRepository as a configurable spy.
type SpyGitHubRepository struct {
	// --- ListOrgRepositories ---
	Directory      entities.RepositoryDirectory
	ListReposErr   error
	ListReposCalls int

	// --- ListWebhooks ---
	Webhooks        map[string][]entities.Webhook // normalized repo -> hooks
	ListWebhooksErr error
	WebhookRepos    []string

	// --- ToggleWebhook ---
	ToggleErrs  map[int64]error // hook id -> error
	ToggleCalls []ToggleCall

	// --- FetchWorkflow ---
	Workflow         string
	FetchWorkflowErr error
	FetchCalls       int
}

var _ repositories.GitHubRepository = (*SpyGitHubRepository)(nil)

func (s *SpyGitHubRepository) ListOrgRepositories(_ context.Context) (entities.RepositoryDirectory, error) {
	s.ListReposCalls++
	if s.ListReposErr != nil {
		return nil, s.ListReposErr
	}
	return s.Directory, nil
}

func (s *SpyGitHubRepository) ListWebhooks(_ context.Context, repo string) ([]entities.Webhook, error) {
	s.WebhookRepos = append(s.WebhookRepos, repo)
	if s.ListWebhooksErr != nil {
		return nil, s.ListWebhooksErr
	}
	return s.Webhooks[repo], nil
}

func (s *SpyGitHubRepository) ToggleWebhook(
	_ context.Context, repo string, id int64, enabled bool,
) (*entities.Webhook, error) {
	s.ToggleCalls = append(s.ToggleCalls, ToggleCall{Repo: repo, ID: id, Enabled: enabled})
	if err, ok := s.ToggleErrs[id]; ok {
		return nil, err
	}
	return &entities.Webhook{Kind: entities.GenericWebhookKind, ID: id, Active: enabled}, nil
}

func (s *SpyGitHubRepository) FetchWorkflow(_ context.Context) (string, error) {
	s.FetchCalls++
	return s.Workflow, s.FetchWorkflowErr
}
