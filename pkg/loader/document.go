package loader

import (
	"errors"
	"path/filepath"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// Source identifies where a view-model document lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming a file inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// Document wraps a raw view-model payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument validates the inputs and builds a Document.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("loader: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("loader: document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// Source returns the document origin.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// ViewModel decodes the payload. The codec follows the source extension.
func (d Document) ViewModel() (*model.ViewModel, error) {
	name := ""
	if d.source != nil {
		name = d.source.Location()
	}
	return model.Decode(name, d.raw)
}
