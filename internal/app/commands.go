package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotel_concierge/internal/domain"
)

// ContentService owns every mutation of the content tree. Each write
// invalidates the cached public page for the languages it can affect.
type ContentService struct {
	hotels  domain.HotelRepository
	content domain.ContentRepository
	cache   domain.Cache
}

func NewContentService(h domain.HotelRepository, c domain.ContentRepository, cache domain.Cache) *ContentService {
	return &ContentService{hotels: h, content: c, cache: cache}
}

// CreateHotel registers a new tenant and seeds its legacy template
// texts for both starting languages.
func (s *ContentService) CreateHotel(ctx context.Context, ownerID, name, slug, primaryLang, secondaryLang string) (domain.Hotel, error) {
	if slug == "" {
		slug = name
	}
	slug = domain.Slugify(slug)
	if slug == "" {
		return domain.Hotel{}, fmt.Errorf("empty slug for %q", name)
	}
	if _, err := s.hotels.GetHotelBySlug(ctx, slug); err == nil {
		return domain.Hotel{}, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Hotel{}, err
	}

	if primaryLang == "" {
		primaryLang = domain.DefaultLanguage
	}
	langs := []string{primaryLang}
	if secondaryLang != "" && secondaryLang != primaryLang {
		langs = append(langs, secondaryLang)
	}

	h := domain.Hotel{
		ID:                 uuid.NewString(),
		Name:               name,
		Slug:               slug,
		OwnerID:            ownerID,
		PrimaryLanguage:    primaryLang,
		SecondaryLanguage:  secondaryLang,
		SupportedLanguages: langs,
		BackgroundColor:    domain.DefaultBackgroundColor,
		AccentColor:        domain.DefaultAccentColor,
		TextColor:          domain.DefaultTextColor,
		FontFamily:         domain.DefaultFontFamily,
		WelcomeTitle:       domain.DefaultWelcomeTitle,
		WelcomeSubtitle:    domain.DefaultWelcomeSubtitle,
		PhoneInstructions:  domain.DefaultPhoneInstructions,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := s.hotels.CreateHotel(ctx, h); err != nil {
		return domain.Hotel{}, err
	}

	// Seeding is best-effort: a missing template row only degrades the
	// admin template view, never the public page.
	for _, lang := range langs {
		seeds := domain.DefaultContent(h.ID, lang)
		for i := range seeds {
			seeds[i].ID = uuid.NewString()
		}
		_ = s.content.SeedContent(ctx, seeds)
	}
	return h, nil
}

// UpdateHotelField writes a single whitelisted hotel column. The repo
// rejects fields outside the whitelist.
func (s *ContentService) UpdateHotelField(ctx context.Context, hotelID, field, value string) error {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return err
	}
	if err := s.hotels.UpdateHotelField(ctx, hotelID, field, value); err != nil {
		return err
	}
	s.invalidateAll(ctx, h)
	return nil
}

func (s *ContentService) UpdateSupportedLanguages(ctx context.Context, hotelID string, langs []string) error {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		langs = []string{h.PrimaryLanguage}
	}
	if err := s.hotels.UpdateSupportedLanguages(ctx, hotelID, langs); err != nil {
		return err
	}
	// The old and the new set can both be stale.
	invalidatePage(ctx, s.cache, h.Slug, append(append([]string{}, h.SupportedLanguages...), langs...))
	return nil
}

// CreateSection appends a new section at the end of one language's order.
func (s *ContentService) CreateSection(ctx context.Context, hotelID, lang, title string) (domain.Section, error) {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Section{}, err
	}
	n, err := s.content.CountSections(ctx, hotelID, lang)
	if err != nil {
		return domain.Section{}, err
	}
	sec := domain.Section{
		ID:         uuid.NewString(),
		HotelID:    hotelID,
		Language:   lang,
		Title:      title,
		SectionKey: domain.SectionKeyOf(title),
		OrderIndex: n,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.content.CreateSection(ctx, sec); err != nil {
		return domain.Section{}, err
	}
	invalidatePage(ctx, s.cache, h.Slug, []string{lang})
	return sec, nil
}

// MoveSection shifts a section one position up or down within its
// language. Moving past either end is a no-op.
func (s *ContentService) MoveSection(ctx context.Context, sectionID string, up bool) error {
	sec, err := s.content.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}
	all, err := s.content.ListSections(ctx, sec.HotelID, sec.Language, false)
	if err != nil {
		return err
	}
	pos := -1
	for i, x := range all {
		if x.ID == sectionID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return domain.ErrNotFound
	}
	swap := pos + 1
	if up {
		swap = pos - 1
	}
	if swap < 0 || swap >= len(all) {
		return nil
	}
	all[pos], all[swap] = all[swap], all[pos]

	ids := make([]string, len(all))
	for i, x := range all {
		ids[i] = x.ID
	}
	if err := s.content.ReorderSections(ctx, sec.HotelID, sec.Language, ids); err != nil {
		return err
	}
	s.invalidateFor(ctx, sec.HotelID, sec.Language)
	return nil
}

// DeleteSection removes a section (blocks cascade) and closes the gap
// in the remaining order.
func (s *ContentService) DeleteSection(ctx context.Context, sectionID string) error {
	sec, err := s.content.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}
	if err := s.content.DeleteSection(ctx, sectionID); err != nil {
		return err
	}
	rest, err := s.content.ListSections(ctx, sec.HotelID, sec.Language, false)
	if err == nil && len(rest) > 0 {
		ids := make([]string, len(rest))
		for i, x := range rest {
			ids[i] = x.ID
		}
		_ = s.content.ReorderSections(ctx, sec.HotelID, sec.Language, ids)
	}
	s.invalidateFor(ctx, sec.HotelID, sec.Language)
	return nil
}

// CreateBlock appends a block at the end of its section.
func (s *ContentService) CreateBlock(ctx context.Context, sectionID, title string, description, externalURL *string) (domain.Block, error) {
	sec, err := s.content.GetSection(ctx, sectionID)
	if err != nil {
		return domain.Block{}, err
	}
	n, err := s.content.CountBlocks(ctx, sectionID)
	if err != nil {
		return domain.Block{}, err
	}
	b := domain.Block{
		ID:          uuid.NewString(),
		SectionID:   sectionID,
		Title:       title,
		Description: description,
		ExternalURL: externalURL,
		OrderIndex:  n,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.content.CreateBlock(ctx, b); err != nil {
		return domain.Block{}, err
	}
	s.invalidateFor(ctx, sec.HotelID, sec.Language)
	return b, nil
}

func (s *ContentService) UpdateBlock(ctx context.Context, blockID, title string, description, externalURL *string) error {
	b, err := s.content.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	if err := s.content.UpdateBlock(ctx, blockID, title, description, externalURL); err != nil {
		return err
	}
	if sec, err := s.content.GetSection(ctx, b.SectionID); err == nil {
		s.invalidateFor(ctx, sec.HotelID, sec.Language)
	}
	return nil
}

func (s *ContentService) DeleteBlock(ctx context.Context, blockID string) error {
	b, err := s.content.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	if err := s.content.DeleteBlock(ctx, blockID); err != nil {
		return err
	}
	if sec, err := s.content.GetSection(ctx, b.SectionID); err == nil {
		s.invalidateFor(ctx, sec.HotelID, sec.Language)
	}
	return nil
}

// UpdateContent edits one legacy template text. The public renderer
// never reads these rows, so no cache eviction is needed.
func (s *ContentService) UpdateContent(ctx context.Context, hotelID, lang, sectionType, title, body string) error {
	return s.content.UpdateContent(ctx, hotelID, lang, sectionType, title, body)
}

func (s *ContentService) invalidateAll(ctx context.Context, h domain.Hotel) {
	invalidatePage(ctx, s.cache, h.Slug, h.SupportedLanguages)
}

func (s *ContentService) invalidateFor(ctx context.Context, hotelID, lang string) {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return
	}
	invalidatePage(ctx, s.cache, h.Slug, []string{lang})
}

func invalidatePage(ctx context.Context, c domain.Cache, slug string, langs []string) {
	if c == nil {
		return
	}
	for _, l := range langs {
		_ = c.Del(ctx, fmt.Sprintf("page:%s:%s", slug, l))
	}
}
