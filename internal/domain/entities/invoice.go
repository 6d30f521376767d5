package entities

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an editable invoice draft held server-side while the form is
// being filled in.
//
// Lifecycle:
//   - created with defaults (today's date, one blank item, FullAmount on)
//   - mutated field by field as the user edits
//   - discarded when the session goes away; drafts are never persisted
//
// Monetary representation:
//   - Quantity, Amount and TotalOverride stay free text until assembly;
//     values that do not parse as decimals count as zero.
type Invoice struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"` // ISO yyyy-mm-dd
	Comments      string     `json:"comments"`
	FullAmount    bool       `json:"full_amount"`
	TotalOverride string     `json:"total_override"`
	Items         []LineItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LineItem is one row of the invoice. Picture, when set, is the decoded
// bitmap resolved at selection time so assembly does not re-fetch it.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Amount      string  `json:"amount"`
	PictureName string  `json:"picture_name"`
	Picture     *Bitmap `json:"-"`
}

// Bitmap is a decoded image re-encoded as PNG, ready for embedding.
type Bitmap struct {
	Name   string
	Width  int // px
	Height int // px
	PNG    []byte
}

// Clone returns a copy whose Items slice has its own backing array, so
// the copy can be read while the original keeps being edited. Bitmaps
// are shared; they are immutable once resolved.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = slices.Clone(inv.Items)
	return out
}

// ComputedTotal applies the override/sum rule: a non-empty parseable
// TotalOverride wins, otherwise item amounts are summed with empty or
// unparseable amounts counting as zero.
func (inv Invoice) ComputedTotal() decimal.Decimal {
	if v := strings.TrimSpace(inv.TotalOverride); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.AmountOrZero())
	}
	return total
}

// AmountOrZero parses the amount field, treating blank or non-numeric
// text as zero.
func (it LineItem) AmountOrZero() decimal.Decimal {
	v := strings.TrimSpace(it.Amount)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
