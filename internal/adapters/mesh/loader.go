// Package mesh fetches glTF assets from the asset server and decodes what the scene needs.
package mesh

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cogentcore.org/core/math32"
	"github.com/qmuntal/gltf"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxAssetSize bounds a single download.
const maxAssetSize = 512 << 20

// Loader implements ports.AssetLoader over HTTP with an optional disk cache.
type Loader struct {
	client *http.Client
	store  ports.AssetStore
	logger ports.Logger
}

// NewLoader creates a Loader. A zero timeout disables it; store may be nil. Assets served
// without an ETag or Last-Modified header are not cached.
func NewLoader(timeout time.Duration, store ports.AssetStore, logger ports.Logger) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
		store:  store,
		logger: logger,
	}
}

// Load returns the decoded asset at url. A cached copy is used only after the server
// confirms it is current with 304 Not Modified.
func (l *Loader) Load(ctx context.Context, url string) (domain.Asset, error) {
	cached := l.cached(url)
	current, err := l.fetch(ctx, url, cached)
	if err != nil {
		return domain.Asset{}, err
	}

	asset, err := Decode(current.Data)
	if err != nil {
		return domain.Asset{}, zerr.With(err, "url", url)
	}
	asset.URL = url

	if current != cached && l.store != nil && current.Revalidatable() {
		if err := l.store.Put(url, *current); err != nil {
			l.logger.Warn(fmt.Sprintf("asset cache write failed: %v", err))
		}
	}
	return asset, nil
}

// cached returns the stored asset for url when it can be revalidated.
func (l *Loader) cached(url string) *domain.CachedAsset {
	if l.store == nil {
		return nil
	}
	asset, err := l.store.Get(url)
	if err != nil {
		l.logger.Warn(fmt.Sprintf("asset cache read failed: %v", err))
		return nil
	}
	if asset == nil || !asset.Revalidatable() {
		return nil
	}
	return asset
}

// fetch downloads url. With a cached asset the request is conditional, and a 304 returns
// the cached asset itself.
func (l *Loader) fetch(ctx context.Context, url string, cached *domain.CachedAsset) (*domain.CachedAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetFetchFailed.Error()), "url", url)
	}
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetFetchFailed.Error()), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotModified && cached != nil:
		return cached, nil
	case resp.StatusCode != http.StatusOK:
		err := zerr.With(domain.ErrAssetFetchFailed, "status", resp.StatusCode)
		return nil, zerr.With(err, "url", url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetFetchFailed.Error()), "url", url)
	}
	return &domain.CachedAsset{
		Data:         data,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}

// Decode parses a glTF or GLB document and summarizes its meshes.
func Decode(data []byte) (domain.Asset, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return domain.Asset{}, zerr.Wrap(err, domain.ErrAssetDecodeFailed.Error())
	}
	if len(doc.Meshes) == 0 {
		return domain.Asset{}, domain.ErrAssetEmpty
	}

	asset := domain.Asset{
		Meshes:    len(doc.Meshes),
		Materials: len(doc.Materials),
		Bounds:    math32.B3Empty(),
		Size:      len(data),
	}
	for _, m := range doc.Meshes {
		if m == nil {
			continue
		}
		asset.Primitives += len(m.Primitives)
		for _, p := range m.Primitives {
			if p == nil {
				continue
			}
			idx, ok := p.Attributes[gltf.POSITION]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if acc == nil {
				continue
			}
			lo, okLo := vec3(acc.Min)
			hi, okHi := vec3(acc.Max)
			if okLo && okHi {
				asset.Bounds.ExpandByPoint(lo)
				asset.Bounds.ExpandByPoint(hi)
			}
		}
	}
	return asset, nil
}

func vec3[F float32 | float64](v []F) (math32.Vector3, bool) {
	if len(v) < 3 {
		return math32.Vector3{}, false
	}
	return math32.Vec3(float32(v[0]), float32(v[1]), float32(v[2])), true
}
