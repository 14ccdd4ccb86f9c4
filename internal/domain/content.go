package domain

import "time"

// Section is a top-level, language-scoped, orderable group of content
// blocks on a hotel's landing page.
type Section struct {
	ID         string
	HotelID    string
	Language   string
	Title      string
	SectionKey string // derived from the title, see SectionKeyOf
	OrderIndex int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Block is a single clickable item within a section. ImageAssetID is a
// weak reference: deleting the asset does not clear it, and an
// unresolved reference renders the same as no asset at all.
type Block struct {
	ID           string
	SectionID    string
	Title        string
	Description  *string
	ImageAssetID *string
	ExternalURL  *string
	OrderIndex   int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Legacy section types of the flat hotel_content table.
var ContentSectionTypes = []string{"welcome", "dining", "services", "activities", "contact"}

// Content is one row of the legacy flat content model: per-hotel,
// per-language title+body for a fixed section type. Seeded with defaults
// at hotel creation and edited in the admin template view; the public
// renderer never reads it.
type Content struct {
	ID          string
	HotelID     string
	Language    string
	SectionType string
	Title       string
	Body        *string
	OrderIndex  int
	IsActive    bool
}

// DefaultContent returns the legacy content rows seeded for one language
// of a freshly created hotel.
func DefaultContent(hotelID, lang string) []Content {
	seeds := []struct{ typ, title, body string }{
		{"welcome", "Welcome", "Welcome to our hotel!"},
		{"dining", "Dining", "Discover our restaurant and bar."},
		{"services", "Services", "Explore our hotel services."},
		{"activities", "Activities", "Find activities and attractions nearby."},
		{"contact", "Contact", "Get in touch with us."},
	}
	out := make([]Content, 0, len(seeds))
	for i, s := range seeds {
		body := s.body
		out = append(out, Content{
			HotelID:     hotelID,
			Language:    lang,
			SectionType: s.typ,
			Title:       s.title,
			Body:        &body,
			OrderIndex:  i,
			IsActive:    true,
		})
	}
	return out
}
