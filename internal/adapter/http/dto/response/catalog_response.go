package response

import (
	"time"

	"invoice_studio/internal/domain/entities"
)

type CatalogEntryResponse struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{Name: e.Name, Path: e.Path, CreatedAt: e.CreatedAt}
}

type CatalogListResponse struct {
	Entries []CatalogEntryResponse `json:"entries"`
}

func FromCatalogEntries(entries []entities.CatalogEntry) CatalogListResponse {
	out := CatalogListResponse{Entries: make([]CatalogEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, FromCatalogEntry(e))
	}
	return out
}

type OrphanListResponse struct {
	Orphans []string `json:"orphans"`
}
