package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
)

// Loader implements pkgloader.Loader with file and fs.FS strategies.
type Loader struct {
	fs fs.FS
}

var _ pkgloader.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options pkgloader.Options) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the document named by src.
func (l *Loader) Load(ctx context.Context, src pkgloader.Source) (pkgloader.Document, error) {
	if src == nil {
		return pkgloader.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case pkgloader.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgloader.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgloader.Document{}, err
	}
	return pkgloader.NewDocument(src, data)
}
