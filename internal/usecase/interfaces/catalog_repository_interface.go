package interfaces

import (
	"context"
	"errors"

	"invoice_studio/internal/domain/entities"
)

// ErrCatalogEntryExists is returned by Create when the name is taken.
var ErrCatalogEntryExists = errors.New("catalog entry already exists")

// ICatalogRepository abstracts DynamoDB persistence for CatalogEntry.
//
// The picture catalog must be able to:
//   - list every entry for the item picker
//   - look an entry up by name when a picture is selected
//   - append a new entry after an upload (name is unique; a second
//     registration of the same name is rejected, not duplicated)

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	GetByName(ctx context.Context, name string) (entities.CatalogEntry, error)
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
}
