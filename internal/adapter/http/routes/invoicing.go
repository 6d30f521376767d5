package routes

import (
	"invoice_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDrafts  = "/drafts"
	PathCatalog = "/catalog"
)

func addInvoicingRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler, catalogHandler *handlers.CatalogHandler, invoiceHandler *handlers.InvoiceHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.PATCH("/:id", draftHandler.PatchDraft)
		drafts.POST("/:id/items", draftHandler.AddItem)
		drafts.PATCH("/:id/items/:index", draftHandler.PatchItem)
		drafts.POST("/:id/generate", invoiceHandler.Generate)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListCatalog)
		catalog.POST("", catalogHandler.UploadPicture)
		catalog.GET("/orphans", catalogHandler.ListOrphans)
	}
}
