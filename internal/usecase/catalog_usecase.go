package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"
)

const pictureKeyPrefix = "images/"

var (
	ErrInvalidPictureName     = errors.New("invalid picture name")
	ErrEmptyPicture           = errors.New("empty picture upload")
	ErrPictureNameTaken       = errors.New("picture name already registered")
	ErrObjectStoreUnavailable = errors.New("object store not configured")
)

// ICatalogUseCase exposes the picture catalog operations behind the form:
//   - populate the item picker => ListCatalog()
//   - "Upload Image" action => UploadPicture()
//   - reconcile stray objects => ListOrphans()

type ICatalogUseCase interface {
	ListCatalog(ctx context.Context) ([]entities.CatalogEntry, error)
	UploadPicture(ctx context.Context, name, contentType string, data []byte) (entities.CatalogEntry, error)
	ListOrphans(ctx context.Context) ([]string, error)
}

type CatalogUseCase struct {
	repo  interfaces.ICatalogRepository
	store interfaces.IObjectStore
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, store interfaces.IObjectStore) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, store: store}
}

func (u *CatalogUseCase) ListCatalog(ctx context.Context) ([]entities.CatalogEntry, error) {
	return u.repo.List(ctx)
}

// UploadPicture runs the upload as bytes -> public URL -> catalog record.
// A record is never written when the byte upload failed; if registration
// fails after the bytes landed, the object stays behind as an orphan
// (see ListOrphans).
func (u *CatalogUseCase) UploadPicture(ctx context.Context, name, contentType string, data []byte) (entities.CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.CatalogEntry{}, ErrInvalidPictureName
	}
	if len(data) == 0 {
		return entities.CatalogEntry{}, ErrEmptyPicture
	}
	sanitized := entities.SanitizeName(name)
	if sanitized == "" {
		return entities.CatalogEntry{}, ErrInvalidPictureName
	}
	if u.store == nil {
		return entities.CatalogEntry{}, ErrObjectStoreUnavailable
	}

	// Reject taken names before touching the object store.
	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.CatalogEntry{}, err
	} else if existing.Name != "" {
		return entities.CatalogEntry{}, ErrPictureNameTaken
	}

	key := pictureKeyPrefix + sanitized
	if err := u.store.Put(ctx, key, contentType, data); err != nil {
		log.Printf("[catalog][upload] byte upload failed key=%s err=%v", key, err)
		return entities.CatalogEntry{}, fmt.Errorf("upload %s: %w", key, err)
	}

	url, err := u.store.ResolveURL(ctx, key)
	if err != nil {
		log.Printf("[catalog][upload] url resolution failed key=%s err=%v; object may be orphaned", key, err)
		return entities.CatalogEntry{}, fmt.Errorf("resolve %s: %w", key, err)
	}

	entry := entities.CatalogEntry{Name: name, Path: url, CreatedAt: time.Now().UTC()}
	created, err := u.repo.Create(ctx, entry)
	if err != nil {
		log.Printf("[catalog][upload] register failed name=%q key=%s err=%v; object may be orphaned", name, key, err)
		if errors.Is(err, interfaces.ErrCatalogEntryExists) {
			return entities.CatalogEntry{}, ErrPictureNameTaken
		}
		return entities.CatalogEntry{}, err
	}
	return created, nil
}

// ListOrphans reports picture objects that no catalog record points at
// (an upload whose registration step failed leaves one behind).
func (u *CatalogUseCase) ListOrphans(ctx context.Context) ([]string, error) {
	if u.store == nil {
		return nil, ErrObjectStoreUnavailable
	}
	keys, err := u.store.ListKeys(ctx, pictureKeyPrefix)
	if err != nil {
		return nil, err
	}
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	registered := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		registered[pictureKeyPrefix+entities.SanitizeName(e.Name)] = struct{}{}
	}

	var orphans []string
	for _, k := range keys {
		if _, ok := registered[k]; !ok {
			orphans = append(orphans, k)
		}
	}
	return orphans, nil
}
