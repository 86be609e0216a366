package repositories

import (
	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
	avRepo "github.com/rios0rios0/cisync/internal/infrastructure/repositories/appveyor"
	gitRepo "github.com/rios0rios0/cisync/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/cisync/internal/infrastructure/repositories/github"
)

// ClientFactory builds the real HTTP and Git clients for a run.
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory.
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// GitHub creates the GitHub client for the configured organization.
func (f *ClientFactory) GitHub(settings *entities.Settings) (repositories.GitHubRepository, error) {
	return ghRepo.NewGitHubRepository(settings)
}

// AppVeyor creates the AppVeyor client for the configured account.
func (f *ClientFactory) AppVeyor(settings *entities.Settings) repositories.AppVeyorRepository {
	return avRepo.NewAppVeyorRepository(settings)
}

// VersionControl creates the Git client used to push the workflow.
func (f *ClientFactory) VersionControl(settings *entities.Settings) repositories.VersionControlRepository {
	return gitRepo.NewGitRepository(settings)
}
