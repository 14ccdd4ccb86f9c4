package app

import (
	"context"
	"fmt"
	"time"

	"hotel_concierge/internal/domain"
)

// PageService serves the public landing page (cache-aside) and the
// uncached reads behind the admin dashboard.
type PageService struct {
	hotels   domain.HotelRepository
	content  domain.ContentRepository
	assets   domain.AssetRepository
	blobs    domain.BlobStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPageService(h domain.HotelRepository, c domain.ContentRepository, a domain.AssetRepository, b domain.BlobStore, cache domain.Cache, ttl time.Duration) *PageService {
	return &PageService{hotels: h, content: c, assets: a, blobs: b, cache: cache, cacheTTL: ttl}
}

// GetPage resolves one public landing page. An unresolved slug is
// terminal; a failing content or asset read degrades the page to its
// hotel shell rather than erroring the guest out.
func (s *PageService) GetPage(ctx context.Context, slug, lang string) (PageView, error) {
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	key := fmt.Sprintf("page:%s:%s", slug, lang)
	var pv PageView
	if ok, _ := s.cache.Get(ctx, key, &pv); ok {
		return pv, nil
	}

	h, err := s.hotels.GetHotelBySlug(ctx, slug)
	if err != nil {
		return PageView{}, err
	}

	sections, err := s.content.ListSections(ctx, h.ID, lang, true)
	if err != nil {
		sections = nil
	}
	ids := make([]string, 0, len(sections))
	for _, sec := range sections {
		ids = append(ids, sec.ID)
	}
	blocks, err := s.content.ListBlocks(ctx, ids, true)
	if err != nil {
		blocks = nil
	}
	assets := s.assetIndex(ctx, h.ID)

	pv = buildPageView(h, lang, sections, blocks, assets, s.blobs)
	_ = s.cache.Set(ctx, key, pv, int(s.cacheTTL.Seconds()))
	return pv, nil
}

func (s *PageService) assetIndex(ctx context.Context, hotelID string) map[string]domain.Asset {
	as, err := s.assets.ListAssets(ctx, hotelID)
	if err != nil {
		return nil
	}
	out := make(map[string]domain.Asset, len(as))
	for _, a := range as {
		out[a.ID] = a
	}
	return out
}

// Dashboard lists the hotels one owner manages.
func (s *PageService) Dashboard(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	return s.hotels.ListHotelsByOwner(ctx, ownerID)
}

// Editor is the full uncached working set behind the customize screen:
// the hotel, its section/block tree for one language (inactive rows
// included), its asset library and the legacy template texts.
type Editor struct {
	Hotel    domain.Hotel
	Sections []domain.Section
	Blocks   map[string][]domain.Block
	Assets   []domain.Asset
	Content  []domain.Content
}

func (s *PageService) GetEditor(ctx context.Context, slug, lang string) (Editor, error) {
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	h, err := s.hotels.GetHotelBySlug(ctx, slug)
	if err != nil {
		return Editor{}, err
	}
	ed := Editor{Hotel: h}

	if ed.Sections, err = s.content.ListSections(ctx, h.ID, lang, false); err != nil {
		return Editor{}, err
	}
	ids := make([]string, 0, len(ed.Sections))
	for _, sec := range ed.Sections {
		ids = append(ids, sec.ID)
	}
	if ed.Blocks, err = s.content.ListBlocks(ctx, ids, false); err != nil {
		return Editor{}, err
	}
	if ed.Assets, err = s.assets.ListAssets(ctx, h.ID); err != nil {
		return Editor{}, err
	}
	if ed.Content, err = s.content.ListContent(ctx, h.ID, lang); err != nil {
		return Editor{}, err
	}
	return ed, nil
}

// AssetURL exposes the blob store's public URL derivation to handlers.
func (s *PageService) AssetURL(a domain.Asset) string {
	return s.blobs.PublicURL(a.FilePath)
}
