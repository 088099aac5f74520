package render

import (
	"context"

	"github.com/goliatone/go-propertyform/pkg/formitem"
)

// Renderer converts a form item snapshot into a byte representation (HTML,
// terminal transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snap formitem.Snapshot, options RenderOptions) ([]byte, error)
}
