package domain

import "go.trai.ch/zerr"

var (
	// ErrNodeNotFound is returned when a requested node id is not part of the graph.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrLinkNotFound is returned when an input references a link id the graph does not know.
	ErrLinkNotFound = zerr.New("link not found")

	// ErrDuplicateNode is returned when a graph snapshot declares the same node id twice.
	ErrDuplicateNode = zerr.New("duplicate node id")

	// ErrUnknownRole is returned when the role table references a role name that does not exist.
	ErrUnknownRole = zerr.New("unknown node role, expected 'source', 'transform', 'material' or 'assembler'")

	// ErrInvalidComposeOrder is returned when the compose order is not recognized.
	ErrInvalidComposeOrder = zerr.New("invalid compose order, expected 'premultiply' or 'postmultiply'")

	// ErrInvalidFramePolicy is returned when the frame policy is not recognized.
	ErrInvalidFramePolicy = zerr.New("invalid frame policy, expected 'once' or 'populate'")

	// ErrInvalidUpAxis is returned when an up direction setting is not recognized.
	ErrInvalidUpAxis = zerr.New("invalid up direction, expected 'Y', 'Z', '-Y' or '-Z'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrGraphReadFailed is returned when the graph snapshot cannot be read.
	ErrGraphReadFailed = zerr.New("failed to read graph snapshot")

	// ErrGraphParseFailed is returned when the graph snapshot cannot be parsed.
	ErrGraphParseFailed = zerr.New("failed to parse graph snapshot")

	// ErrAssetFetchFailed is returned when an asset cannot be fetched from the asset server.
	ErrAssetFetchFailed = zerr.New("failed to fetch asset")

	// ErrAssetDecodeFailed is returned when a fetched asset is not a valid glTF document.
	ErrAssetDecodeFailed = zerr.New("failed to decode asset")

	// ErrAssetEmpty is returned when a decoded asset contains no meshes.
	ErrAssetEmpty = zerr.New("asset contains no meshes")

	// ErrStoreCreateFailed is returned when the asset cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create asset cache directory")

	// ErrStoreReadFailed is returned when a cached asset cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cached asset")

	// ErrStoreWriteFailed is returned when an asset cannot be written to the cache.
	ErrStoreWriteFailed = zerr.New("failed to write cached asset")

	// ErrEngineNotReady is returned when a scene engine is requested before the renderer is initialized.
	ErrEngineNotReady = zerr.New("renderer is not ready")

	// ErrEngineReleased is returned when a released scene engine or model is used.
	ErrEngineReleased = zerr.New("scene engine already released")

	// ErrNoViewedNodes is returned when the watch command finds nothing to preview.
	ErrNoViewedNodes = zerr.New("no nodes to preview")

	// ErrWatcherStartFailed is returned when the graph file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrInvalidOutputMode is returned when the output mode flag is not recognized.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui', 'linear' or 'ci'")
)
