package app

import (
	"net/url"
	"strings"

	"hotel_concierge/internal/domain"
)

// PageView is everything the public renderer needs for one
// (hotel, language) landing page. It is what gets cached.
type PageView struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Website           string   `json:"website"`
	LogoURL           string   `json:"logo_url"`
	BackgroundColor   string   `json:"background_color"`
	AccentColor       string   `json:"accent_color"`
	TextColor         string   `json:"text_color"`
	FontFamily        string   `json:"font_family"`
	WelcomeTitle      string   `json:"welcome_title"`
	WelcomeSubtitle   string   `json:"welcome_subtitle"`
	PhoneInstructions string   `json:"phone_instructions"`
	Language          string   `json:"language"`
	Languages         []string `json:"languages"`

	Sections []SectionView `json:"sections"`
}

type SectionView struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Blocks []BlockView `json:"blocks"`
}

type BlockView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LinkURL     string `json:"link_url"`
	// External marks links that open in a new tab.
	External bool `json:"external"`
}

// buildPageView assembles the render model from the raw tree. Sections
// without a single active block are dropped entirely; block titles are
// uppercased for display, section titles keep their stored casing. A
// block whose image reference does not resolve renders a generated
// placeholder instead.
func buildPageView(h domain.Hotel, lang string, sections []domain.Section, blocks map[string][]domain.Block, assets map[string]domain.Asset, blobs domain.BlobStore) PageView {
	pv := PageView{
		Name:              h.Name,
		Slug:              h.Slug,
		Description:       deref(h.Description),
		Address:           deref(h.Address),
		Phone:             deref(h.Phone),
		Email:             deref(h.Email),
		Website:           deref(h.Website),
		BackgroundColor:   h.BackgroundColor,
		AccentColor:       h.AccentColor,
		TextColor:         h.TextColor,
		FontFamily:        h.FontFamily,
		WelcomeTitle:      h.WelcomeTitle,
		WelcomeSubtitle:   h.WelcomeSubtitle,
		PhoneInstructions: h.PhoneInstructions,
		Language:          lang,
		Languages:         h.SupportedLanguages,
	}
	if h.LogoAssetID != nil {
		if a, ok := assets[*h.LogoAssetID]; ok {
			pv.LogoURL = blobs.PublicURL(a.FilePath)
		}
	}

	for _, s := range sections {
		bs := blocks[s.ID]
		if len(bs) == 0 {
			continue
		}
		sv := SectionView{ID: s.ID, Title: s.Title}
		for _, b := range bs {
			sv.Blocks = append(sv.Blocks, buildBlockView(b, assets, blobs))
		}
		pv.Sections = append(pv.Sections, sv)
	}
	return pv
}

func buildBlockView(b domain.Block, assets map[string]domain.Asset, blobs domain.BlobStore) BlockView {
	bv := BlockView{
		ID:          b.ID,
		Title:       strings.ToUpper(b.Title),
		Description: deref(b.Description),
		LinkURL:     "#",
	}
	if b.ExternalURL != nil && *b.ExternalURL != "" {
		bv.LinkURL = *b.ExternalURL
		bv.External = true
	}
	if b.ImageAssetID != nil {
		if a, ok := assets[*b.ImageAssetID]; ok {
			bv.ImageURL = blobs.PublicURL(a.FilePath)
		}
	}
	if bv.ImageURL == "" {
		bv.ImageURL = placeholderURL(b.Title)
	}
	return bv
}

func placeholderURL(title string) string {
	return "/placeholder.svg?height=120&width=160&text=" + url.QueryEscape(title)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
