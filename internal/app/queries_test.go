package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/domain"
)

func seededWorld() (*fakeHotels, *fakeContent, *fakeAssets, *fakeBlobs) {
	hotels := &fakeHotels{hotels: []domain.Hotel{{
		ID:                 "h-1",
		Name:               "Grand Vista",
		Slug:               "grand-vista",
		OwnerID:            "u-1",
		SupportedLanguages: []string{"en", "hr"},
		BackgroundColor:    domain.DefaultBackgroundColor,
		AccentColor:        domain.DefaultAccentColor,
		TextColor:          domain.DefaultTextColor,
		FontFamily:         domain.DefaultFontFamily,
	}}}
	content := &fakeContent{
		sections: []domain.Section{
			{ID: "s-1", HotelID: "h-1", Language: "en", Title: "Dining", SectionKey: "dining", OrderIndex: 0, IsActive: true},
			{ID: "s-2", HotelID: "h-1", Language: "en", Title: "Spa", SectionKey: "spa", OrderIndex: 1, IsActive: true},
			{ID: "s-3", HotelID: "h-1", Language: "en", Title: "Hidden", SectionKey: "hidden", OrderIndex: 2, IsActive: false},
		},
		blocks: []domain.Block{
			{ID: "b-1", SectionID: "s-1", Title: "Breakfast", ImageAssetID: ptr("a-1"), OrderIndex: 0, IsActive: true},
			{ID: "b-2", SectionID: "s-1", Title: "Lunch", ExternalURL: ptr("https://menu.example.com"), OrderIndex: 1, IsActive: true},
			{ID: "b-3", SectionID: "s-1", Title: "Closed", OrderIndex: 2, IsActive: false},
		},
	}
	assets := &fakeAssets{assets: []domain.Asset{
		{ID: "a-1", HotelID: "h-1", FileName: "breakfast.jpg", FilePath: "grand-vista/1-breakfast.jpg", FileType: "image"},
	}}
	return hotels, content, assets, &fakeBlobs{}
}

func pageService(h *fakeHotels, c *fakeContent, a *fakeAssets, b *fakeBlobs, cache *fakeCache) *app.PageService {
	return app.NewPageService(h, c, a, b, cache, 5*time.Minute)
}

func TestGetPage_RendersTree(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := pageService(h, c, a, b, &fakeCache{})

	pv, err := svc.GetPage(context.Background(), "grand-vista", "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pv.Language != "en" {
		t.Fatalf("expected default language en, got %s", pv.Language)
	}

	// s-2 has no blocks and s-3 is inactive: only Dining survives,
	// with its title casing untouched.
	if len(pv.Sections) != 1 || pv.Sections[0].Title != "Dining" {
		t.Fatalf("unexpected sections: %+v", pv.Sections)
	}
	bs := pv.Sections[0].Blocks
	if len(bs) != 2 {
		t.Fatalf("expected 2 active blocks, got %d", len(bs))
	}

	if bs[0].Title != "BREAKFAST" || bs[0].ImageURL != "https://blobs.test/grand-vista/1-breakfast.jpg" {
		t.Fatalf("unexpected first block: %+v", bs[0])
	}
	if bs[0].LinkURL != "#" || bs[0].External {
		t.Fatalf("block without url should anchor to #: %+v", bs[0])
	}

	if bs[1].Title != "LUNCH" || !bs[1].External || bs[1].LinkURL != "https://menu.example.com" {
		t.Fatalf("unexpected second block: %+v", bs[1])
	}
	if bs[1].ImageURL != "/placeholder.svg?height=120&width=160&text=Lunch" {
		t.Fatalf("expected placeholder image, got %s", bs[1].ImageURL)
	}
}

func TestGetPage_CacheMissThenHit(t *testing.T) {
	h, c, a, b := seededWorld()
	cache := &fakeCache{}
	svc := pageService(h, c, a, b, cache)

	pv, err := svc.GetPage(context.Background(), "grand-vista", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pv.Name != "Grand Vista" {
		t.Fatalf("unexpected page: %+v", pv)
	}

	// Mutate the store; the second read must come from cache.
	h.hotels[0].Name = "SHOULD NOT SEE THIS"

	pv2, err := svc.GetPage(context.Background(), "grand-vista", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pv2.Name != "Grand Vista" {
		t.Fatalf("expected cached name, got %s", pv2.Name)
	}
}

func TestGetPage_UnknownSlug(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := pageService(h, c, a, b, &fakeCache{})

	_, err := svc.GetPage(context.Background(), "no-such-hotel", "en")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetEditor_IncludesInactive(t *testing.T) {
	h, c, a, b := seededWorld()
	svc := pageService(h, c, a, b, &fakeCache{})

	ed, err := svc.GetEditor(context.Background(), "grand-vista", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(ed.Sections) != 3 {
		t.Fatalf("editor must list inactive sections too, got %d", len(ed.Sections))
	}
	if len(ed.Blocks["s-1"]) != 3 {
		t.Fatalf("editor must list inactive blocks too, got %d", len(ed.Blocks["s-1"]))
	}
}
