package ports

import "go.trai.ch/preview/internal/core/domain"

// ConfigLoader defines the interface for loading the preview configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds preview.yaml by walking up from cwd and returns the resolved configuration.
	// A missing file yields the defaults.
	Load(cwd string) (domain.Config, error)
}
