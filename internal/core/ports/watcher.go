package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed, as editors do when saving atomically.
	OpRename
)

// WatchEvent is a change to a watched file.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher watches files for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files. Their parent directories are watched
	// so that atomic saves (write to temp, rename over) are observed.
	Start(ctx context.Context, files ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of changes to the watched files.
	Events() iter.Seq[WatchEvent]
}
