package app_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/domain"
)

// ---- fakes ----

type fakeHotels struct {
	hotels []domain.Hotel

	fieldWrites []string // "field=value"
	logoWrites  []string
}

func (f *fakeHotels) CreateHotel(ctx context.Context, h domain.Hotel) error {
	f.hotels = append(f.hotels, h)
	return nil
}

func (f *fakeHotels) UpdateHotelField(ctx context.Context, id, field, value string) error {
	f.fieldWrites = append(f.fieldWrites, field+"="+value)
	return nil
}

func (f *fakeHotels) UpdateSupportedLanguages(ctx context.Context, id string, langs []string) error {
	for i := range f.hotels {
		if f.hotels[i].ID == id {
			f.hotels[i].SupportedLanguages = langs
		}
	}
	return nil
}

func (f *fakeHotels) SetLogoAsset(ctx context.Context, id, assetID string) error {
	f.logoWrites = append(f.logoWrites, id+":"+assetID)
	return nil
}

func (f *fakeHotels) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (f *fakeHotels) GetHotelBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	for _, h := range f.hotels {
		if h.Slug == slug {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (f *fakeHotels) ListHotelsByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range f.hotels {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeContent struct {
	sections []domain.Section
	blocks   []domain.Block
	contents []domain.Content

	reorders [][]string
}

func (f *fakeContent) CreateSection(ctx context.Context, s domain.Section) error {
	f.sections = append(f.sections, s)
	return nil
}

func (f *fakeContent) GetSection(ctx context.Context, id string) (domain.Section, error) {
	for _, s := range f.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Section{}, domain.ErrNotFound
}

func (f *fakeContent) ListSections(ctx context.Context, hotelID, lang string, activeOnly bool) ([]domain.Section, error) {
	var out []domain.Section
	for _, s := range f.sections {
		if s.HotelID == hotelID && s.Language == lang && (!activeOnly || s.IsActive) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeContent) CountSections(ctx context.Context, hotelID, lang string) (int, error) {
	n := 0
	for _, s := range f.sections {
		if s.HotelID == hotelID && s.Language == lang {
			n++
		}
	}
	return n, nil
}

func (f *fakeContent) ReorderSections(ctx context.Context, hotelID, lang string, orderedIDs []string) error {
	f.reorders = append(f.reorders, orderedIDs)
	for pos, id := range orderedIDs {
		for i := range f.sections {
			if f.sections[i].ID == id {
				f.sections[i].OrderIndex = pos
			}
		}
	}
	return nil
}

func (f *fakeContent) DeleteSection(ctx context.Context, id string) error {
	keep := f.sections[:0]
	for _, s := range f.sections {
		if s.ID != id {
			keep = append(keep, s)
		}
	}
	f.sections = keep
	kb := f.blocks[:0]
	for _, b := range f.blocks {
		if b.SectionID != id {
			kb = append(kb, b)
		}
	}
	f.blocks = kb
	return nil
}

func (f *fakeContent) CreateBlock(ctx context.Context, b domain.Block) error {
	f.blocks = append(f.blocks, b)
	return nil
}

func (f *fakeContent) GetBlock(ctx context.Context, id string) (domain.Block, error) {
	for _, b := range f.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Block{}, domain.ErrNotFound
}

func (f *fakeContent) ListBlocks(ctx context.Context, sectionIDs []string, activeOnly bool) (map[string][]domain.Block, error) {
	in := map[string]bool{}
	for _, id := range sectionIDs {
		in[id] = true
	}
	out := map[string][]domain.Block{}
	for _, b := range f.blocks {
		if in[b.SectionID] && (!activeOnly || b.IsActive) {
			out[b.SectionID] = append(out[b.SectionID], b)
		}
	}
	for _, bs := range out {
		sort.Slice(bs, func(i, j int) bool { return bs[i].OrderIndex < bs[j].OrderIndex })
	}
	return out, nil
}

func (f *fakeContent) CountBlocks(ctx context.Context, sectionID string) (int, error) {
	n := 0
	for _, b := range f.blocks {
		if b.SectionID == sectionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeContent) UpdateBlock(ctx context.Context, id, title string, description, externalURL *string) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks[i].Title = title
			f.blocks[i].Description = description
			f.blocks[i].ExternalURL = externalURL
		}
	}
	return nil
}

func (f *fakeContent) SetBlockImage(ctx context.Context, id, assetID string) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks[i].ImageAssetID = &assetID
		}
	}
	return nil
}

func (f *fakeContent) DeleteBlock(ctx context.Context, id string) error {
	keep := f.blocks[:0]
	for _, b := range f.blocks {
		if b.ID != id {
			keep = append(keep, b)
		}
	}
	f.blocks = keep
	return nil
}

func (f *fakeContent) SeedContent(ctx context.Context, cs []domain.Content) error {
	f.contents = append(f.contents, cs...)
	return nil
}

func (f *fakeContent) ListContent(ctx context.Context, hotelID, lang string) ([]domain.Content, error) {
	var out []domain.Content
	for _, c := range f.contents {
		if c.HotelID == hotelID && c.Language == lang {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContent) UpdateContent(ctx context.Context, hotelID, lang, sectionType, title, body string) error {
	for i := range f.contents {
		c := f.contents[i]
		if c.HotelID == hotelID && c.Language == lang && c.SectionType == sectionType {
			f.contents[i].Title = title
			f.contents[i].Body = &body
		}
	}
	return nil
}

type fakeAssets struct {
	assets  []domain.Asset
	intents map[string]time.Time

	insertErr error
}

func (f *fakeAssets) InsertAsset(ctx context.Context, a domain.Asset) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.assets = append(f.assets, a)
	return nil
}

func (f *fakeAssets) GetAsset(ctx context.Context, id string) (domain.Asset, error) {
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Asset{}, domain.ErrNotFound
}

func (f *fakeAssets) ListAssets(ctx context.Context, hotelID string) ([]domain.Asset, error) {
	var out []domain.Asset
	for _, a := range f.assets {
		if a.HotelID == hotelID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssets) DeleteAsset(ctx context.Context, id string) error {
	keep := f.assets[:0]
	for _, a := range f.assets {
		if a.ID != id {
			keep = append(keep, a)
		}
	}
	f.assets = keep
	return nil
}

func (f *fakeAssets) InsertBlobIntent(ctx context.Context, path string) error {
	if f.intents == nil {
		f.intents = map[string]time.Time{}
	}
	f.intents[path] = time.Now()
	return nil
}

func (f *fakeAssets) DeleteBlobIntent(ctx context.Context, path string) error {
	delete(f.intents, path)
	return nil
}

func (f *fakeAssets) ListBlobIntents(ctx context.Context, olderThan time.Time) ([]string, error) {
	var out []string
	for p, at := range f.intents {
		if at.Before(olderThan) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeBlobs struct {
	objects map[string][]byte
	removed []string

	uploadErr error
}

func (f *fakeBlobs) Upload(ctx context.Context, path, contentType string, data []byte) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[path] = data
	return nil
}

func (f *fakeBlobs) Remove(ctx context.Context, path string) error {
	f.removed = append(f.removed, path)
	delete(f.objects, path)
	return nil
}

func (f *fakeBlobs) PublicURL(path string) string { return "https://blobs.test/" + path }

type fakeCache struct {
	store   map[string]any
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*app.PageView); ok {
		*d = v.(app.PageView)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.store, key)
	return nil
}

// ---- helpers ----

func ptr[T any](v T) *T { return &v }

var errBoom = errors.New("boom")
