package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel_concierge/internal/domain"
)

// AssetService manages uploaded binaries. Uploads are write-ahead
// protected: an intent row marks the blob path before the blob write,
// and is cleared only once the asset record exists. A blob whose asset
// record never materialized is compensated immediately when possible
// and otherwise swept later by the reconciler.
type AssetService struct {
	hotels  domain.HotelRepository
	content domain.ContentRepository
	assets  domain.AssetRepository
	blobs   domain.BlobStore
	cache   domain.Cache
}

func NewAssetService(h domain.HotelRepository, c domain.ContentRepository, a domain.AssetRepository, b domain.BlobStore, cache domain.Cache) *AssetService {
	return &AssetService{hotels: h, content: c, assets: a, blobs: b, cache: cache}
}

// Upload validates the MIME type before anything is written anywhere.
func (s *AssetService) Upload(ctx context.Context, hotelID, fileName, mime string, data []byte, sectionType, lang *string) (domain.Asset, error) {
	typ := domain.AssetTypeFor(mime)
	if typ == "" {
		return domain.Asset{}, domain.ErrUnsupportedFileType
	}
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Asset{}, err
	}

	path := fmt.Sprintf("%s/%d-%s", h.Slug, time.Now().UnixMilli(), safeFileName(fileName))

	if err := s.assets.InsertBlobIntent(ctx, path); err != nil {
		return domain.Asset{}, err
	}
	if err := s.blobs.Upload(ctx, path, mime, data); err != nil {
		_ = s.assets.DeleteBlobIntent(ctx, path)
		return domain.Asset{}, fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}

	size := int64(len(data))
	a := domain.Asset{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		FileName:    fileName,
		FilePath:    path,
		FileType:    typ,
		FileSize:    &size,
		SectionType: sectionType,
		Language:    lang,
		CreatedAt:   time.Now(),
	}
	if err := s.assets.InsertAsset(ctx, a); err != nil {
		// Compensate: the blob exists but no record points at it. If the
		// delete fails too, the intent row is left for the reconciler.
		if rerr := s.blobs.Remove(ctx, path); rerr == nil {
			_ = s.assets.DeleteBlobIntent(ctx, path)
		}
		return domain.Asset{}, err
	}
	_ = s.assets.DeleteBlobIntent(ctx, path)
	return a, nil
}

// UploadToBlock stores the file and points the block's image at it in
// one step, so the composer needs a single action per block photo.
func (s *AssetService) UploadToBlock(ctx context.Context, hotelID, blockID, fileName, mime string, data []byte) (domain.Asset, error) {
	a, err := s.Upload(ctx, hotelID, fileName, mime, data, nil, nil)
	if err != nil {
		return domain.Asset{}, err
	}
	if err := s.AttachToBlock(ctx, blockID, a.ID); err != nil {
		return domain.Asset{}, err
	}
	return a, nil
}

// UploadLogo stores the file and makes it the hotel logo.
func (s *AssetService) UploadLogo(ctx context.Context, hotelID, fileName, mime string, data []byte) (domain.Asset, error) {
	a, err := s.Upload(ctx, hotelID, fileName, mime, data, nil, nil)
	if err != nil {
		return domain.Asset{}, err
	}
	if err := s.SetLogo(ctx, hotelID, a.ID); err != nil {
		return domain.Asset{}, err
	}
	return a, nil
}

// AttachToBlock points a block's image at an asset of the same hotel.
func (s *AssetService) AttachToBlock(ctx context.Context, blockID, assetID string) error {
	b, err := s.content.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	sec, err := s.content.GetSection(ctx, b.SectionID)
	if err != nil {
		return err
	}
	a, err := s.assets.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if a.HotelID != sec.HotelID {
		return domain.ErrNotFound
	}
	if err := s.content.SetBlockImage(ctx, blockID, assetID); err != nil {
		return err
	}
	if h, err := s.hotels.GetHotel(ctx, sec.HotelID); err == nil {
		invalidatePage(ctx, s.cache, h.Slug, []string{sec.Language})
	}
	return nil
}

func (s *AssetService) SetLogo(ctx context.Context, hotelID, assetID string) error {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return err
	}
	a, err := s.assets.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if a.HotelID != hotelID {
		return domain.ErrNotFound
	}
	if err := s.hotels.SetLogoAsset(ctx, hotelID, assetID); err != nil {
		return err
	}
	invalidatePage(ctx, s.cache, h.Slug, h.SupportedLanguages)
	return nil
}

// Delete drops the asset record first and then the blob, best effort.
// Blocks still pointing at the id keep their reference and fall back to
// the placeholder image when it no longer resolves.
func (s *AssetService) Delete(ctx context.Context, assetID string) error {
	a, err := s.assets.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if err := s.assets.DeleteAsset(ctx, assetID); err != nil {
		return err
	}
	_ = s.blobs.Remove(ctx, a.FilePath)
	if h, err := s.hotels.GetHotel(ctx, a.HotelID); err == nil {
		invalidatePage(ctx, s.cache, h.Slug, h.SupportedLanguages)
	}
	return nil
}

func (s *AssetService) List(ctx context.Context, hotelID string) ([]domain.Asset, error) {
	return s.assets.ListAssets(ctx, hotelID)
}

func (s *AssetService) PublicURL(a domain.Asset) string {
	return s.blobs.PublicURL(a.FilePath)
}

// safeFileName keeps the extension and slugs the base name so the blob
// path stays URL-safe.
func safeFileName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := domain.Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = "file"
	}
	return base + ext
}
