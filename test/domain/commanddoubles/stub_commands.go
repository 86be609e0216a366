//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cisync/internal/domain/commands"
	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ListOptions
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ListOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubPropagateCommand is a stub implementation of commands.Propagate.
type StubPropagateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PropagateOptions
}

var _ commands.Propagate = (*StubPropagateCommand)(nil)

func (s *StubPropagateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PropagateOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubWebhooksCommand is a stub implementation of commands.Webhooks.
type StubWebhooksCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.WebhooksOptions
}

var _ commands.Webhooks = (*StubWebhooksCommand)(nil)

func (s *StubWebhooksCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.WebhooksOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
