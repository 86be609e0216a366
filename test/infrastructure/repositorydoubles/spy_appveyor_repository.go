//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// SpyAppVeyorRepository implements repositories.AppVeyorRepository as a configurable spy.
type SpyAppVeyorRepository struct {
	Repositories entities.RepositorySet
	ListErr      error
	ListCalls    int
}

var _ repositories.AppVeyorRepository = (*SpyAppVeyorRepository)(nil)

func (s *SpyAppVeyorRepository) ListRepositories(_ context.Context) (entities.RepositorySet, error) {
	s.ListCalls++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Repositories, nil
}
