package response

import (
	"time"

	"invoice_studio/internal/domain/entities"
)

type LineItemResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Amount      string `json:"amount"`
	PictureName string `json:"picture_name"`
	HasPicture  bool   `json:"has_picture"`
}

type DraftResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	InvoiceNumber string             `json:"invoice_number"`
	Date          string             `json:"date"`
	Comments      string             `json:"comments"`
	FullAmount    bool               `json:"full_amount"`
	TotalOverride string             `json:"total_override"`
	ComputedTotal string             `json:"computed_total"`
	Items         []LineItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) DraftResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
			PictureName: it.PictureName,
			HasPicture:  it.Picture != nil,
		})
	}
	return DraftResponse{
		ID:            inv.ID,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		Comments:      inv.Comments,
		FullAmount:    inv.FullAmount,
		TotalOverride: inv.TotalOverride,
		ComputedTotal: inv.ComputedTotal().String(),
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
