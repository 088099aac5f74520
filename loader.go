package propertyform

import (
	internalLoader "github.com/goliatone/go-propertyform/internal/loader"
	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgloader.Option) pkgloader.Loader {
	return internalLoader.New(pkgloader.NewOptions(options...))
}
