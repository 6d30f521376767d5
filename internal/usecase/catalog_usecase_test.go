package usecase

import (
	"context"
	"errors"
	"testing"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"
	mock_interfaces "invoice_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_UploadPicture(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}

	t.Run("blank name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.UploadPicture(context.Background(), "   ", "image/png", payload)
		if !errors.Is(err, ErrInvalidPictureName) {
			t.Fatalf("expected ErrInvalidPictureName, got %v", err)
		}
	})

	t.Run("name with nothing sanitizable", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.UploadPicture(context.Background(), "!!!", "image/png", payload)
		if !errors.Is(err, ErrInvalidPictureName) {
			t.Fatalf("expected ErrInvalidPictureName, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.UploadPicture(context.Background(), "Alexa", "image/png", nil)
		if !errors.Is(err, ErrEmptyPicture) {
			t.Fatalf("expected ErrEmptyPicture, got %v", err)
		}
	})

	t.Run("object store not configured", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.UploadPicture(context.Background(), "Alexa", "image/png", payload)
		if !errors.Is(err, ErrObjectStoreUnavailable) {
			t.Fatalf("expected ErrObjectStoreUnavailable, got %v", err)
		}
	})

	t.Run("name already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		repo.EXPECT().GetByName(gomock.Any(), "Alexa").Return(entities.CatalogEntry{Name: "Alexa"}, nil)

		_, err := uc.UploadPicture(context.Background(), "Alexa", "image/png", payload)
		if !errors.Is(err, ErrPictureNameTaken) {
			t.Fatalf("expected ErrPictureNameTaken, got %v", err)
		}
	})

	t.Run("byte upload failure writes no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		repo.EXPECT().GetByName(gomock.Any(), "Smart Door bell").Return(entities.CatalogEntry{}, nil)
		store.EXPECT().Put(gomock.Any(), "images/Smart_Door_bell", "image/png", payload).Return(errors.New("network"))

		_, err := uc.UploadPicture(context.Background(), "Smart Door bell", "image/png", payload)
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("url resolution failure aborts after the bytes landed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		repo.EXPECT().GetByName(gomock.Any(), "Alexa").Return(entities.CatalogEntry{}, nil)
		store.EXPECT().Put(gomock.Any(), "images/Alexa", "image/png", payload).Return(nil)
		store.EXPECT().ResolveURL(gomock.Any(), "images/Alexa").Return("", errors.New("denied"))

		_, err := uc.UploadPicture(context.Background(), "Alexa", "image/png", payload)
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success registers the resolved url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		repo.EXPECT().GetByName(gomock.Any(), "My Cool Image!.png").Return(entities.CatalogEntry{}, nil)
		store.EXPECT().Put(gomock.Any(), "images/My_Cool_Image.png", "image/png", payload).Return(nil)
		store.EXPECT().ResolveURL(gomock.Any(), "images/My_Cool_Image.png").Return("https://cdn.example/images/My_Cool_Image.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.Name != "My Cool Image!.png" || e.Path != "https://cdn.example/images/My_Cool_Image.png" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.CreatedAt.IsZero() {
					t.Fatalf("expected server-assigned timestamp")
				}
				return e, nil
			},
		)

		entry, err := uc.UploadPicture(context.Background(), "My Cool Image!.png", "image/png", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Path == "" {
			t.Fatalf("expected resolved path")
		}
	})

	t.Run("registration race maps to name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		repo.EXPECT().GetByName(gomock.Any(), "Alexa").Return(entities.CatalogEntry{}, nil)
		store.EXPECT().Put(gomock.Any(), "images/Alexa", "image/png", payload).Return(nil)
		store.EXPECT().ResolveURL(gomock.Any(), "images/Alexa").Return("https://cdn.example/images/Alexa", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CatalogEntry{}, interfaces.ErrCatalogEntryExists)

		_, err := uc.UploadPicture(context.Background(), "Alexa", "image/png", payload)
		if !errors.Is(err, ErrPictureNameTaken) {
			t.Fatalf("expected ErrPictureNameTaken, got %v", err)
		}
	})
}

func TestCatalogUseCase_ListCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(repo, nil)

	want := []entities.CatalogEntry{{Name: "Alexa", Path: "p"}}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := uc.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Alexa" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestCatalogUseCase_ListOrphans(t *testing.T) {
	t.Run("object store not configured", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		if _, err := uc.ListOrphans(context.Background()); !errors.Is(err, ErrObjectStoreUnavailable) {
			t.Fatalf("expected ErrObjectStoreUnavailable, got %v", err)
		}
	})

	t.Run("reports keys with no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStore(ctrl)
		uc := NewCatalogUseCase(repo, store)

		store.EXPECT().ListKeys(gomock.Any(), "images/").Return([]string{
			"images/Alexa",
			"images/stray_upload.png",
		}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.CatalogEntry{
			{Name: "Alexa", Path: "https://cdn.example/images/Alexa"},
		}, nil)

		orphans, err := uc.ListOrphans(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orphans) != 1 || orphans[0] != "images/stray_upload.png" {
			t.Fatalf("unexpected orphans: %v", orphans)
		}
	})
}
