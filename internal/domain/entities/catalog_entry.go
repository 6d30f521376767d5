package entities

import (
	"strings"
	"time"
	"unicode"
)

// CatalogEntry names a picture available in the item picker.
//
// Storage model (DynamoDB):
//   - PK: name (string)
//
// Path points at the image bytes (object-store URL for uploads, a local
// asset path for the shipped defaults). Entries are created once and
// never updated or deleted by this service.
type CatalogEntry struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// SanitizeName derives the object-store key fragment for a catalog name:
// whitespace runs collapse to single underscores and every rune outside
// [A-Za-z0-9._-] is dropped.
func SanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			pendingSep = true
			continue
		}
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
