package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// draftTTL caps how long an untouched draft is kept before the next
// CreateDraft sweeps it away.
const draftTTL = 24 * time.Hour

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrInvalidDraftID = errors.New("invalid draft id")
	ErrItemIndex      = errors.New("item index out of range")
)

// DraftPatch carries field-level edits; nil fields are left untouched.
type DraftPatch struct {
	CustomerName  *string
	InvoiceNumber *string
	Date          *string
	Comments      *string
	FullAmount    *bool
	TotalOverride *string
}

// ItemPatch carries item-level edits keyed by item index.
type ItemPatch struct {
	Description *string
	Quantity    *string
	Amount      *string
	PictureName *string
}

// IDraftUseCase manages the editable invoice drafts behind the form.
//
// Every operation returns the full draft snapshot so the form can
// re-render from the response.

type IDraftUseCase interface {
	CreateDraft(ctx context.Context) (entities.Invoice, error)
	GetDraft(ctx context.Context, id string) (entities.Invoice, error)
	UpdateDraft(ctx context.Context, id string, patch DraftPatch) (entities.Invoice, error)
	AddItem(ctx context.Context, id string) (entities.Invoice, error)
	UpdateItem(ctx context.Context, id string, index int, patch ItemPatch) (entities.Invoice, error)
}

type DraftUseCase struct {
	catalog  interfaces.ICatalogRepository
	resolver interfaces.IImageResolver

	mu     sync.RWMutex
	drafts map[string]*entities.Invoice
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(catalog interfaces.ICatalogRepository, resolver interfaces.IImageResolver) *DraftUseCase {
	return &DraftUseCase{
		catalog:  catalog,
		resolver: resolver,
		drafts:   make(map[string]*entities.Invoice),
	}
}

// CreateDraft starts a fresh draft: today's date, one blank item and the
// full-amount mode on.
func (u *DraftUseCase) CreateDraft(_ context.Context) (entities.Invoice, error) {
	now := time.Now().UTC()
	inv := &entities.Invoice{
		ID:         uuid.NewString(),
		Date:       now.Format("2006-01-02"),
		FullAmount: true,
		Items:      []entities.LineItem{{}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	u.mu.Lock()
	u.sweepLocked(now)
	u.drafts[inv.ID] = inv
	u.mu.Unlock()
	return inv.Clone(), nil
}

func (u *DraftUseCase) GetDraft(_ context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidDraftID
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	inv, ok := u.drafts[id]
	if !ok {
		return entities.Invoice{}, ErrDraftNotFound
	}
	return inv.Clone(), nil
}

func (u *DraftUseCase) UpdateDraft(_ context.Context, id string, patch DraftPatch) (entities.Invoice, error) {
	return u.mutate(id, func(inv *entities.Invoice) error {
		if patch.CustomerName != nil {
			inv.CustomerName = *patch.CustomerName
		}
		if patch.InvoiceNumber != nil {
			inv.InvoiceNumber = *patch.InvoiceNumber
		}
		if patch.Date != nil {
			inv.Date = *patch.Date
		}
		if patch.Comments != nil {
			inv.Comments = *patch.Comments
		}
		if patch.FullAmount != nil {
			inv.FullAmount = *patch.FullAmount
			// Switching back to the computed total discards any override.
			if inv.FullAmount {
				inv.TotalOverride = ""
			}
		}
		if patch.TotalOverride != nil {
			inv.TotalOverride = *patch.TotalOverride
		}
		return nil
	})
}

// AddItem appends one blank line item; items are append-only and keep
// their order.
func (u *DraftUseCase) AddItem(_ context.Context, id string) (entities.Invoice, error) {
	return u.mutate(id, func(inv *entities.Invoice) error {
		inv.Items = append(inv.Items, entities.LineItem{})
		return nil
	})
}

func (u *DraftUseCase) UpdateItem(ctx context.Context, id string, index int, patch ItemPatch) (entities.Invoice, error) {
	return u.mutate(id, func(inv *entities.Invoice) error {
		if index < 0 || index >= len(inv.Items) {
			return ErrItemIndex
		}
		it := &inv.Items[index]
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if patch.Quantity != nil {
			it.Quantity = *patch.Quantity
		}
		if patch.Amount != nil {
			it.Amount = *patch.Amount
		}
		if patch.PictureName != nil {
			u.selectPicture(ctx, it, *patch.PictureName)
		}
		return nil
	})
}

// selectPicture looks the name up in the catalog and eagerly resolves
// the bitmap onto the item, so assembly never re-fetches it. An unknown
// name clears the picture; a failed resolution keeps the name but the
// row will render without a thumbnail.
func (u *DraftUseCase) selectPicture(ctx context.Context, it *entities.LineItem, name string) {
	name = strings.TrimSpace(name)
	it.Picture = nil
	it.PictureName = ""
	if name == "" {
		return
	}

	entry, err := u.catalog.GetByName(ctx, name)
	if err != nil || entry.Name == "" {
		if err != nil {
			log.Printf("[draft][picture] catalog lookup failed name=%q err=%v", name, err)
		}
		return
	}

	it.PictureName = entry.Name
	bm, err := u.resolver.Resolve(ctx, entry.Name, entry.Path)
	if err != nil {
		log.Printf("[draft][picture] resolve failed name=%q path=%s err=%v", entry.Name, entry.Path, err)
		return
	}
	it.Picture = bm
}

func (u *DraftUseCase) mutate(id string, fn func(*entities.Invoice) error) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidDraftID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	inv, ok := u.drafts[id]
	if !ok {
		return entities.Invoice{}, ErrDraftNotFound
	}
	if err := fn(inv); err != nil {
		return entities.Invoice{}, err
	}
	inv.UpdatedAt = time.Now().UTC()
	return inv.Clone(), nil
}

// sweepLocked drops drafts untouched for longer than draftTTL. An
// abandoned form never says goodbye, so age is the only signal the
// server has. Caller must hold u.mu.
func (u *DraftUseCase) sweepLocked(now time.Time) {
	for id, inv := range u.drafts {
		if now.Sub(inv.UpdatedAt) > draftTTL {
			delete(u.drafts, id)
		}
	}
}
