package repositories

import "github.com/rios0rios0/cisync/internal/domain/entities"

// ClientFactory builds the clients of one run from its settings.
type ClientFactory interface {
	GitHub(settings *entities.Settings) (GitHubRepository, error)
	AppVeyor(settings *entities.Settings) AppVeyorRepository
	VersionControl(settings *entities.Settings) VersionControlRepository
}
