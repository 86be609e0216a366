//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// StubClientFactory implements repositories.ClientFactory by returning the configured doubles.
type StubClientFactory struct {
	GitHubRepo         repositories.GitHubRepository
	GitHubErr          error
	AppVeyorRepo       repositories.AppVeyorRepository
	VersionControlRepo repositories.VersionControlRepository
	LastSettings       *entities.Settings
}

var _ repositories.ClientFactory = (*StubClientFactory)(nil)

func (f *StubClientFactory) GitHub(settings *entities.Settings) (repositories.GitHubRepository, error) {
	f.LastSettings = settings
	if f.GitHubErr != nil {
		return nil, f.GitHubErr
	}
	return f.GitHubRepo, nil
}

func (f *StubClientFactory) AppVeyor(settings *entities.Settings) repositories.AppVeyorRepository {
	f.LastSettings = settings
	return f.AppVeyorRepo
}

func (f *StubClientFactory) VersionControl(settings *entities.Settings) repositories.VersionControlRepository {
	f.LastSettings = settings
	return f.VersionControlRepo
}
