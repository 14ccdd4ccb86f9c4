package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/domain"
)

func assetService(h *fakeHotels, c *fakeContent, a *fakeAssets, b *fakeBlobs, cache *fakeCache) *app.AssetService {
	return app.NewAssetService(h, c, a, b, cache)
}

func TestUpload_RejectsBeforeAnyWrite(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := assetService(h, c, a, b, &fakeCache{})

	_, err := svc.Upload(context.Background(), "h-1", "notes.txt", "text/plain", []byte("x"), nil, nil)
	if !errors.Is(err, domain.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if len(b.objects) != 0 || len(a.intents) != 0 {
		t.Fatalf("rejection must happen before any write: %v %v", b.objects, a.intents)
	}
}

func TestUpload_StoresBlobAndRecord(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := assetService(h, c, a, b, &fakeCache{})

	got, err := svc.Upload(context.Background(), "h-1", "Pool Menu.PDF", "application/pdf", []byte("%PDF"), ptr("dining"), ptr("en"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.FileType != "pdf" {
		t.Fatalf("unexpected type %s", got.FileType)
	}
	if !strings.HasPrefix(got.FilePath, "grand-vista/") || !strings.HasSuffix(got.FilePath, "-pool-menu.pdf") {
		t.Fatalf("unexpected path %s", got.FilePath)
	}
	if _, ok := b.objects[got.FilePath]; !ok {
		t.Fatalf("blob missing at %s", got.FilePath)
	}
	if len(a.intents) != 0 {
		t.Fatalf("intent must be cleared after success: %v", a.intents)
	}
	if got.FileSize == nil || *got.FileSize != 4 {
		t.Fatalf("unexpected size %v", got.FileSize)
	}
}

func TestUpload_BlobFailureClearsIntent(t *testing.T) {
	h, c, a, b := seededWorld()
	b.uploadErr = errBoom
	svc := assetService(h, c, a, b, &fakeCache{})

	_, err := svc.Upload(context.Background(), "h-1", "a.png", "image/png", []byte("x"), nil, nil)
	if !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
	if len(a.intents) != 0 {
		t.Fatalf("nothing was stored, intent should be gone: %v", a.intents)
	}
	if len(a.assets) != 1 { // only the seeded one
		t.Fatalf("no asset record expected, got %v", a.assets)
	}
}

func TestUpload_InsertFailureCompensatesBlob(t *testing.T) {
	h, c, a, b := seededWorld()
	a.insertErr = errBoom
	svc := assetService(h, c, a, b, &fakeCache{})

	_, err := svc.Upload(context.Background(), "h-1", "a.png", "image/png", []byte("x"), nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(b.removed) != 1 {
		t.Fatalf("expected compensating blob delete, got %v", b.removed)
	}
	if len(b.objects) != 0 {
		t.Fatalf("blob should be gone: %v", b.objects)
	}
	if len(a.intents) != 0 {
		t.Fatalf("intent should be cleared after compensation: %v", a.intents)
	}
}

func TestUploadToBlock_OneStep(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := assetService(h, c, a, b, &fakeCache{})

	got, err := svc.UploadToBlock(context.Background(), "h-1", "b-2", "pool.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	blk, _ := c.GetBlock(context.Background(), "b-2")
	if blk.ImageAssetID == nil || *blk.ImageAssetID != got.ID {
		t.Fatalf("block should point at the new asset: %+v", blk)
	}
	if _, ok := b.objects[got.FilePath]; !ok {
		t.Fatalf("blob missing at %s", got.FilePath)
	}
	if len(a.intents) != 0 {
		t.Fatalf("intent must be cleared: %v", a.intents)
	}
}

func TestUploadLogo_OneStep(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := assetService(h, c, a, b, &fakeCache{})

	got, err := svc.UploadLogo(context.Background(), "h-1", "crest.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(h.logoWrites) != 1 || h.logoWrites[0] != "h-1:"+got.ID {
		t.Fatalf("logo pointer not written: %v", h.logoWrites)
	}
}

func TestAttachToBlock_ChecksOwnership(t *testing.T) {
	h, c, a, b := seededWorld()
	a.assets = append(a.assets, domain.Asset{ID: "a-other", HotelID: "h-2", FilePath: "other/x.jpg", FileType: "image"})
	svc := assetService(h, c, a, b, &fakeCache{})

	if err := svc.AttachToBlock(context.Background(), "b-2", "a-other"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cross-hotel attach must fail, got %v", err)
	}

	if err := svc.AttachToBlock(context.Background(), "b-2", "a-1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	blk, _ := c.GetBlock(context.Background(), "b-2")
	if blk.ImageAssetID == nil || *blk.ImageAssetID != "a-1" {
		t.Fatalf("image not attached: %+v", blk)
	}
}

func TestDelete_KeepsWeakReferences(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := assetService(h, c, a, b, &fakeCache{})

	if err := svc.Delete(context.Background(), "a-1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(b.removed) != 1 || b.removed[0] != "grand-vista/1-breakfast.jpg" {
		t.Fatalf("blob not removed: %v", b.removed)
	}
	// b-1 still points at a-1; the renderer falls back to a placeholder.
	blk, _ := c.GetBlock(context.Background(), "b-1")
	if blk.ImageAssetID == nil || *blk.ImageAssetID != "a-1" {
		t.Fatalf("weak reference must survive: %+v", blk)
	}
}
