package domain

import "time"

// Languages the product ships UI strings and public pages for.
var Languages = []string{"en", "hr", "de", "it"}

// DefaultLanguage is used when a guest request carries no lang parameter.
const DefaultLanguage = "en"

type User struct {
	ID                 string
	Email              string
	FullName           *string
	PasswordHash       string
	SubscriptionPlan   string // basic|pro
	SubscriptionStatus string // active|inactive|cancelled
	AdminLanguage      string
	CreatedAt          time.Time
}

// Hotel is a tenant: it owns one landing page and its content tree.
type Hotel struct {
	ID                string
	Name              string
	Slug              string
	OwnerID           string
	Description       *string
	Address           *string
	Phone             *string
	Email             *string
	Website           *string
	PrimaryLanguage   string
	SecondaryLanguage string
	// SupportedLanguages drives the public language switcher; defaults to
	// [primary, secondary] at creation.
	SupportedLanguages []string
	BackgroundColor    string
	AccentColor        string
	TextColor          string
	FontFamily         string
	WelcomeTitle       string
	WelcomeSubtitle    string
	PhoneInstructions  string
	LogoAssetID        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Style defaults applied when a hotel is created.
const (
	DefaultBackgroundColor   = "#1f2937"
	DefaultAccentColor       = "#d4af37"
	DefaultTextColor         = "#ffffff"
	DefaultFontFamily        = "Raleway"
	DefaultWelcomeTitle      = "WELCOME TO"
	DefaultWelcomeSubtitle   = "Discover exclusive offers, bespoke services and key hotel information."
	DefaultPhoneInstructions = "For orders and information please use your in-room phone:\n- dial 1 for room service\n- dial 9 for reception desk"
)
