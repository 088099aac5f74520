// Package loader defines the sources, documents and loader contract used to
// fetch view-model documents.
package loader

import (
	"context"
	"io/fs"
)

// Loader fetches view-model documents.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Options configures how a Loader resolves sources.
type Options struct {
	// FileSystem backs SourceKindFS sources. Without it those sources fail.
	FileSystem fs.FS
}

// Option mutates Options.
type Option func(*Options)

// WithFileSystem injects the fs.FS used for SourceKindFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(opts *Options) {
		opts.FileSystem = files
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	var out Options
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}
