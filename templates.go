package propertyform

import (
	"io/fs"

	"github.com/goliatone/go-propertyform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the vanilla stylesheet for static serving.
//
// Typical mount:
//
//	mux.Handle("/propertyform/",
//	  http.StripPrefix("/propertyform/",
//	    http.FileServerFS(propertyform.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
