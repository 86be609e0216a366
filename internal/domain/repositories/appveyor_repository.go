package repositories

import (
	"context"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// AppVeyorRepository abstracts the AppVeyor account that builds the organization.
type AppVeyorRepository interface {
	// ListRepositories returns the identifiers of every repository AppVeyor builds.
	ListRepositories(ctx context.Context) (entities.RepositorySet, error)
}
