package i18n_test

import (
	"testing"

	"hotel_concierge/internal/i18n"
)

func TestT_Lookup(t *testing.T) {
	if got := i18n.T("hr", "addHotel", nil); got != "Dodaj hotel" {
		t.Fatalf("hr addHotel = %q", got)
	}
	if got := i18n.T("de", "signOut", nil); got != "Abmelden" {
		t.Fatalf("de signOut = %q", got)
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	// unknown language
	if got := i18n.T("fr", "addHotel", nil); got != "Add Hotel" {
		t.Fatalf("fr addHotel = %q", got)
	}
}

func TestT_PlaceholderSubstitution(t *testing.T) {
	got := i18n.T("en", "subscriptionInactive", map[string]string{"status": "inactive"})
	want := "Your subscription is inactive. Please activate your subscription to manage hotels."
	if got != want {
		t.Fatalf("got %q", got)
	}

	// unknown placeholders stay intact
	got = i18n.T("en", "landingPageUrl", map[string]string{"other": "x"})
	if got != "Your landing page will be available at: /{slug}" {
		t.Fatalf("got %q", got)
	}
}
