package domain

import "path/filepath"

const (
	// PreviewDirName is the name of the internal working directory.
	PreviewDirName = ".preview"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// AssetsDirName is the name of the asset cache directory.
	AssetsDirName = "assets"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "preview.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPreviewPath returns the default root directory for preview metadata.
func DefaultPreviewPath() string {
	return PreviewDirName
}

// DefaultAssetCachePath returns the default path for downloaded assets.
// It joins .preview, cache, and assets.
func DefaultAssetCachePath() string {
	return filepath.Join(PreviewDirName, CacheDirName, AssetsDirName)
}
