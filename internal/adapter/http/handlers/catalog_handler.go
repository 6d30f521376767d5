package handlers

import (
	"errors"
	"io"
	"net/http"

	response "invoice_studio/internal/adapter/http/dto/response"
	"invoice_studio/internal/usecase"
	"invoice_studio/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the picture catalog surface: the picker list,
// the "Upload Image" action and the orphan reconciliation listing.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	entries, err := h.usecase.ListCatalog(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog backend unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

// UploadPicture accepts a multipart form with a "name" field and an
// "image" file. Missing fields are rejected before any backend call.
func (h *CatalogHandler) UploadPicture(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_NAME", "Picture name is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_IMAGE", "Picture file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entry, err := h.usecase.UploadPicture(c.Request.Context(), name, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogEntry(entry))
}

func (h *CatalogHandler) ListOrphans(c *gin.Context) {
	orphans, err := h.usecase.ListOrphans(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog backend unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OrphanListResponse{Orphans: orphans})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPictureName), errors.Is(err, usecase.ErrEmptyPicture):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPictureNameTaken):
		return pkg.NewDomainErrorSimple("PICTURE_NAME_TAKEN", "A picture with this name is already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrObjectStoreUnavailable):
		return pkg.NewDomainErrorSimple("UPLOAD_UNAVAILABLE", "Object store is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("UPLOAD_FAILED", "Upload failed", err, http.StatusBadGateway)
	}
}
