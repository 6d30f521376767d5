package request

import "invoice_studio/internal/usecase"

// DraftPatchRequest carries field-level draft edits; absent fields are
// left untouched, so the form can send one field per keystroke batch.
type DraftPatchRequest struct {
	CustomerName  *string `json:"customer_name"`
	InvoiceNumber *string `json:"invoice_number"`
	Date          *string `json:"date"`
	Comments      *string `json:"comments"`
	FullAmount    *bool   `json:"full_amount"`
	TotalOverride *string `json:"total_override"`
}

func (r DraftPatchRequest) ToPatch() usecase.DraftPatch {
	return usecase.DraftPatch{
		CustomerName:  r.CustomerName,
		InvoiceNumber: r.InvoiceNumber,
		Date:          r.Date,
		Comments:      r.Comments,
		FullAmount:    r.FullAmount,
		TotalOverride: r.TotalOverride,
	}
}

// ItemPatchRequest carries item-level edits for one row index.
type ItemPatchRequest struct {
	Description *string `json:"description"`
	Quantity    *string `json:"quantity"`
	Amount      *string `json:"amount"`
	PictureName *string `json:"picture_name"`
}

func (r ItemPatchRequest) ToPatch() usecase.ItemPatch {
	return usecase.ItemPatch{
		Description: r.Description,
		Quantity:    r.Quantity,
		Amount:      r.Amount,
		PictureName: r.PictureName,
	}
}
