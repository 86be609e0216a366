package repositories

import (
	"context"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// GitHubRepository abstracts the GitHub organization whose CI is synchronized.
// Repository names passed to it are normalized (no organization prefix).
type GitHubRepository interface {
	// ListOrgRepositories returns every repository of the organization. It needs no credential.
	ListOrgRepositories(ctx context.Context) (entities.RepositoryDirectory, error)

	// ListWebhooks returns the webhooks registered on a repository.
	ListWebhooks(ctx context.Context, repo string) ([]entities.Webhook, error)

	// ToggleWebhook activates or deactivates one webhook and returns the provider's view of it.
	ToggleWebhook(ctx context.Context, repo string, id int64, enabled bool) (*entities.Webhook, error)

	// FetchWorkflow downloads the canonical workflow template. It needs no credential.
	FetchWorkflow(ctx context.Context) (string, error)
}
