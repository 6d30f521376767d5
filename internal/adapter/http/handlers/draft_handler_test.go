package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice_studio/internal/adapter/http/handlers/mocks"
	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDraftHandler_CreateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts", h.CreateDraft)

		uc.EXPECT().CreateDraft(gomock.Any()).Return(entities.Invoice{
			ID:         "d-1",
			Date:       "2026-08-30",
			FullAmount: true,
			Items:      []entities.LineItem{{}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "d-1" || body["full_amount"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestDraftHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.GET("/v1/drafts/:id", h.GetDraft)

		uc.EXPECT().GetDraft(gomock.Any(), "nope").Return(entities.Invoice{}, usecase.ErrDraftNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_PatchDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.PATCH("/v1/drafts/:id", h.PatchDraft)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/d-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch forwarded to the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.PATCH("/v1/drafts/:id", h.PatchDraft)

		uc.EXPECT().UpdateDraft(gomock.Any(), "d-1", gomock.AssignableToTypeOf(usecase.DraftPatch{})).DoAndReturn(
			func(_ any, _ string, patch usecase.DraftPatch) (entities.Invoice, error) {
				if patch.CustomerName == nil || *patch.CustomerName != "Acme" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				if patch.InvoiceNumber != nil {
					t.Fatalf("expected untouched invoice number, got %+v", patch)
				}
				return entities.Invoice{ID: "d-1", CustomerName: "Acme"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/d-1", bytes.NewBufferString(`{"customer_name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_PatchItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.PATCH("/v1/drafts/:id/items/:index", h.PatchItem)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/d-1/items/first", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.PATCH("/v1/drafts/:id/items/:index", h.PatchItem)

		uc.EXPECT().UpdateItem(gomock.Any(), "d-1", 7, gomock.Any()).Return(entities.Invoice{}, usecase.ErrItemIndex)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/d-1/items/7", bytes.NewBufferString(`{"description":"Widget"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(uc)

	r := gin.New()
	r.POST("/v1/drafts/:id/items", h.AddItem)

	uc.EXPECT().AddItem(gomock.Any(), "d-1").Return(entities.Invoice{ID: "d-1", Items: []entities.LineItem{{}, {}}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/drafts/d-1/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
