package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewPropagateController); err != nil {
		return err
	}
	if err := container.Provide(NewWebhooksController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	propagateController *PropagateController,
	webhooksController *WebhooksController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		propagateController,
		webhooksController,
	}
}
