package interfaces

import (
	"context"
	"invoice_studio/internal/domain/entities"
)

// IImageResolver loads image bytes from a URL or local asset path and
// turns them into an embeddable PNG bitmap. Implementations may cache;
// a failed resolution is an error for the caller to degrade on, never
// to abort a whole document over.
type IImageResolver interface {
	Resolve(ctx context.Context, name, path string) (*entities.Bitmap, error)
}
