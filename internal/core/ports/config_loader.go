package ports

import "go.trai.ch/runway/internal/core/domain"

// ConfigLoader defines the interface for loading the orchestrator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the project containing dir.
	Load(dir string) (*domain.Config, error)
}
