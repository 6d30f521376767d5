package usecase

import (
	"context"

	"invoice_studio/internal/pdf"
)

// IInvoiceUseCase runs the "Generate" action: snapshot the draft and
// assemble the downloadable document.

type IInvoiceUseCase interface {
	Generate(ctx context.Context, draftID string) (filename string, document []byte, err error)
}

type InvoiceUseCase struct {
	drafts    IDraftUseCase
	assembler *pdf.Assembler
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(drafts IDraftUseCase, assembler *pdf.Assembler) *InvoiceUseCase {
	return &InvoiceUseCase{drafts: drafts, assembler: assembler}
}

func (u *InvoiceUseCase) Generate(ctx context.Context, draftID string) (string, []byte, error) {
	inv, err := u.drafts.GetDraft(ctx, draftID)
	if err != nil {
		return "", nil, err
	}
	document, err := u.assembler.Build(ctx, inv)
	if err != nil {
		return "", nil, err
	}
	return pdf.FileName(inv), document, nil
}
