package storage

import "context"

// ArchiveStorage is the local sink for exported schedule workbooks.
type ArchiveStorage interface {
	// WriteUnique stores data under dir/filename, appending _1, _2, ...
	// before the extension on collision, and returns the relative path
	// actually written.
	WriteUnique(ctx context.Context, dir, filename string, data []byte) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}
