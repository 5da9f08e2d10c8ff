// Package assetcache implements a disk cache for downloaded assets, keyed by URL.
// Each asset is kept with the HTTP validators it was served with so that a later
// session can ask the server whether the bytes are still current.
package assetcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	assetExt      = ".glb"
	validatorsExt = ".yaml"
)

// validators is the sidecar document stored next to each asset.
type validators struct {
	ETag         string `yaml:"etag,omitempty"`
	LastModified string `yaml:"last_modified,omitempty"`
}

// Store implements ports.AssetStore using a file-per-URL strategy.
type Store struct {
	root string
}

// NewStore creates a Store backed by the directory at root. The directory is created on
// first Put.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the cache directory.
func (s *Store) Root() string {
	return s.root
}

// Get returns the cached asset for url, or nil when nothing is cached. An asset whose
// validators are missing is returned without them.
func (s *Store) Get(url string) (*domain.CachedAsset, error) {
	base := s.basename(url)

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(base + assetExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "url", url)
	}

	asset := &domain.CachedAsset{Data: data}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	raw, err := os.ReadFile(base + validatorsExt)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return asset, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "url", url)
	}

	var v validators
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return asset, nil //nolint:nilerr // A damaged sidecar only costs a full download.
	}
	asset.ETag, asset.LastModified = v.ETag, v.LastModified
	return asset, nil
}

// Put stores asset for url. The old validators are dropped before the bytes are replaced,
// so an interrupted Put never pairs new validators with old bytes.
func (s *Store) Put(url string, asset domain.CachedAsset) error {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	base := s.basename(url)
	if err := os.Remove(base + validatorsExt); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "url", url)
	}
	if err := s.writeFile(base+assetExt, asset.Data); err != nil {
		return zerr.With(err, "url", url)
	}
	if !asset.Revalidatable() {
		return nil
	}

	raw, err := yaml.Marshal(validators{ETag: asset.ETag, LastModified: asset.LastModified})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "url", url)
	}
	if err := s.writeFile(base+validatorsExt, raw); err != nil {
		return zerr.With(err, "url", url)
	}
	return nil
}

// Clear removes every cached asset.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.root)
	}
	return nil
}

// writeFile writes under a temporary name and renames, so readers never see a partial file.
func (s *Store) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.root, "asset-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) basename(url string) string {
	hash := sha256.Sum256([]byte(url))
	return filepath.Join(s.root, hex.EncodeToString(hash[:]))
}
