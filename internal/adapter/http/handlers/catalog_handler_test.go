package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice_studio/internal/adapter/http/handlers/mocks"
	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartUpload(t *testing.T, name string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if name != "" {
		if err := writer.WriteField("name", name); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile("image", "picture.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestCatalogHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("entries returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog", h.ListCatalog)

		uc.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogEntry{
			{Name: "front_door", Path: "https://bucket/images/front_door", CreatedAt: time.Now()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		entries, ok := body["entries"].([]any)
		if !ok || len(entries) != 1 {
			t.Fatalf("unexpected entries: %v", body)
		}
	})

	t.Run("backend unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog", h.ListCatalog)

		uc.EXPECT().ListCatalog(gomock.Any()).Return(nil, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_UploadPicture(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockICatalogUseCase) *gin.Engine {
		h := NewCatalogHandler(uc)
		r := gin.New()
		r.POST("/v1/catalog", h.UploadPicture)
		r.GET("/v1/catalog", h.ListCatalog)
		return r
	}

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		body, contentType := multipartUpload(t, "", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		body, contentType := multipartUpload(t, "front_door", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UploadPicture(gomock.Any(), "front_door", gomock.Any(), []byte("png-bytes")).
			Return(entities.CatalogEntry{}, usecase.ErrPictureNameTaken)

		body, contentType := multipartUpload(t, "front_door", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var payload map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if payload["code"] != "PICTURE_NAME_TAKEN" {
			t.Fatalf("unexpected error code: %v", payload)
		}
	})

	t.Run("upload failure leaves the catalog unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UploadPicture(gomock.Any(), "front_door", gomock.Any(), gomock.Any()).
			Return(entities.CatalogEntry{}, errors.New("connection reset"))

		body, contentType := multipartUpload(t, "front_door", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var payload map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if payload["code"] != "UPLOAD_FAILED" {
			t.Fatalf("unexpected error code: %v", payload)
		}

		uc.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogEntry{}, nil)
		listReq := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		listW := httptest.NewRecorder()
		r.ServeHTTP(listW, listReq)
		var list map[string][]any
		if err := json.Unmarshal(listW.Body.Bytes(), &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list["entries"]) != 0 {
			t.Fatalf("expected empty catalog, got %v", list)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UploadPicture(gomock.Any(), "front door", gomock.Any(), []byte("png-bytes")).
			Return(entities.CatalogEntry{Name: "front_door", Path: "https://bucket/images/front_door"}, nil)

		body, contentType := multipartUpload(t, "front door", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var payload map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if payload["name"] != "front_door" {
			t.Fatalf("unexpected body: %v", payload)
		}
	})
}

func TestCatalogHandler_ListOrphans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog/orphans", h.ListOrphans)

	uc.EXPECT().ListOrphans(gomock.Any()).Return([]string{"images/stale_logo"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/orphans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var payload map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(payload["orphans"]) != 1 || payload["orphans"][0] != "images/stale_logo" {
		t.Fatalf("unexpected body: %v", payload)
	}
}
