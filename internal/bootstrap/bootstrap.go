package bootstrap

import (
	"context"
	"fmt"

	"vinoteca-server/internal/config"
	"vinoteca-server/internal/observability"
	"vinoteca-server/internal/store"

	assistantHandler "vinoteca-server/internal/assistant/handler"
	assistantProcessor "vinoteca-server/internal/assistant/processor"
	"vinoteca-server/internal/assistant/provider"
	"vinoteca-server/internal/auth/handler"
	"vinoteca-server/internal/auth/processor"
	catalogHandler "vinoteca-server/internal/catalog/handler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      handler.Handler
	AssistantHandler assistantHandler.Handler
	CatalogHandler   catalogHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize the provider client, assistant processor and handler
	providerClient := provider.NewClient(logger)
	assistantProc := assistantProcessor.New(&deps.Store, providerClient, cfg.Services.LovableAPIKey, logger)
	deps.AssistantHandler = assistantHandler.New(&assistantProc, logger)

	// Initialize catalog handler
	deps.CatalogHandler = catalogHandler.New(&deps.Store, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if db := d.Store.DB(); db != nil {
		db.Close()
	}
}
