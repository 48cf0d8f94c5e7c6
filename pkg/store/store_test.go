package store

import (
	"context"
	"testing"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
)

func testDocument() gallery.LayoutDocument {
	return gallery.LayoutDocument{
		Strategy:       gallery.StrategyHorizontal,
		ContainerWidth: 800,
		ItemSize:       100,
		TotalHeight:    214,
		Placements: []gallery.Placement{
			{Width: 188, Height: 94, Left: 0, Top: 0},
		},
	}
}

func TestMemoryStoreSaveAssignsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	saved, err := s.Save(ctx, testDocument())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == "" {
		t.Error("Save() did not assign an ID")
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TotalHeight != 214 {
		t.Errorf("Get() TotalHeight = %d, want 214", got.TotalHeight)
	}
}

func TestMemoryStoreSaveKeepsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := testDocument()
	doc.ID = "fixed-id"
	saved, err := s.Save(ctx, doc)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID != "fixed-id" {
		t.Errorf("Save() ID = %q, want %q", saved.ID, "fixed-id")
	}

	// Saving again with the same ID replaces the document.
	doc.TotalHeight = 500
	if _, err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Get(ctx, "fixed-id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TotalHeight != 500 {
		t.Errorf("Get() TotalHeight = %d, want 500", got.TotalHeight)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Get() expected error for unknown ID")
	}
	if code := apperrors.GetCode(err); code != apperrors.ErrCodeLayoutNotFound {
		t.Errorf("Get() error code = %v, want %v", code, apperrors.ErrCodeLayoutNotFound)
	}
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("List() on empty store returned %d documents", len(docs))
	}

	for range 3 {
		if _, err := s.Save(ctx, testDocument()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	docs, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("List() returned %d documents, want 3", len(docs))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	saved, err := s.Save(ctx, testDocument())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := s.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Get(ctx, saved.ID); err == nil {
		t.Error("Get() after Delete() expected error")
	}

	err = s.Delete(ctx, saved.ID)
	if code := apperrors.GetCode(err); code != apperrors.ErrCodeLayoutNotFound {
		t.Errorf("Delete() twice error code = %v, want %v", code, apperrors.ErrCodeLayoutNotFound)
	}
}

func TestMongoConfigValidation(t *testing.T) {
	_, err := NewMongoStore(context.Background(), MongoConfig{})
	if err == nil {
		t.Fatal("NewMongoStore() expected error for empty URI")
	}
	if code := apperrors.GetCode(err); code != apperrors.ErrCodeInvalidInput {
		t.Errorf("NewMongoStore() error code = %v, want %v", code, apperrors.ErrCodeInvalidInput)
	}
}
