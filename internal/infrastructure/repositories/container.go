package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/cisync/internal/domain/repositories"
	"github.com/rios0rios0/cisync/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewClientFactory); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ClientFactory) repositories.ClientFactory {
		return impl
	}); err != nil {
		return err
	}

	if err := container.Provide(workspace.NewWorkspaceRepository); err != nil {
		return err
	}

	return nil
}
