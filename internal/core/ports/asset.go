package ports

import (
	"context"

	"go.trai.ch/preview/internal/core/domain"
)

// AssetLoader fetches and decodes mesh assets.
//
//go:generate mockgen -source=asset.go -destination=mocks/mock_asset.go -package=mocks
type AssetLoader interface {
	// Load fetches the asset at url and decodes it.
	Load(ctx context.Context, url string) (domain.Asset, error)
}

// AssetStore caches downloaded assets and their HTTP validators by URL.
type AssetStore interface {
	// Get returns the cached asset for url. It returns nil, nil when nothing is cached.
	Get(url string) (*domain.CachedAsset, error)
	// Put stores the asset for url.
	Put(url string, asset domain.CachedAsset) error
}
