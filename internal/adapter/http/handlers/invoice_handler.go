package handlers

import (
	"fmt"
	"net/http"

	"invoice_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler runs the "Generate" action and streams the assembled
// document back as a download.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) Generate(c *gin.Context) {
	filename, document, err := h.usecase.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// %q quotes the name and escapes quotes and CR/LF, so user-supplied
	// invoice numbers cannot break out of the header.
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}
