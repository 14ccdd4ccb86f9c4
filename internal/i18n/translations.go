// Package i18n holds the static UI translation table for the admin
// dashboard. Public landing pages carry owner-authored content and need
// no translation beyond the language switcher labels.
package i18n

import "strings"

// T looks up key for lang, falling back to English when the language or
// the key is unknown. Placeholders of the form {name} are substituted
// from args; unknown placeholders are left intact.
func T(lang, key string, args map[string]string) string {
	msgs, ok := table[lang]
	if !ok {
		msgs = table["en"]
	}
	s, ok := msgs[key]
	if !ok {
		s = table["en"][key]
	}
	for name, v := range args {
		s = strings.ReplaceAll(s, "{"+name+"}", v)
	}
	return s
}

// Has reports whether the language has its own message table.
func Has(lang string) bool {
	_, ok := table[lang]
	return ok
}

var table = map[string]map[string]string{
	"en": {
		"dashboard":            "Dashboard",
		"welcomeBack":          "Welcome back",
		"yourHotels":           "Your Hotels",
		"addHotel":             "Add Hotel",
		"signOut":              "Sign Out",
		"noHotelsYet":          "No hotels yet",
		"createFirstHotel":     "Create Your First Hotel",
		"slug":                 "Slug",
		"address":              "Address",
		"phone":                "Phone",
		"assets":               "Assets",
		"view":                 "View",
		"edit":                 "Edit",
		"customize":            "Customize your landing page",
		"hotelInfo":            "Hotel Info",
		"styleAndBranding":     "Style & Branding",
		"welcomeTexts":         "Welcome Texts",
		"contentStructure":     "Content Structure",
		"manageBlocks":         "Manage Blocks",
		"templateTexts":        "Template Texts",
		"addSection":           "Add Section",
		"sectionTitle":         "Section Title",
		"createSection":        "Create Section",
		"blockTitle":           "Block Title",
		"createBlock":          "Create Block",
		"updateBlock":          "Update Block",
		"uploadImage":          "Upload Image",
		"landingPageUrl":       "Your landing page will be available at: /{slug}",
		"confirmDeleteSection": "Are you sure? This will delete all blocks in this section.",
		"confirmDeleteBlock":   "Are you sure you want to delete this block?",
		"hotelNotFound":        "Hotel not found",
		"failedToLoad":         "Failed to load data",
		"updatedSuccessfully":  "Updated successfully!",
		"loading":              "Loading...",
		"subscriptionInactive": "Your subscription is {status}. Please activate your subscription to manage hotels.",
		"setupRequired":        "Configuration required. Set the store connection parameters to enable the dashboard.",
	},
	"hr": {
		"dashboard":            "Nadzorna ploča",
		"welcomeBack":          "Dobrodošli natrag",
		"yourHotels":           "Vaši hoteli",
		"addHotel":             "Dodaj hotel",
		"signOut":              "Odjava",
		"noHotelsYet":          "Još nema hotela",
		"createFirstHotel":     "Stvorite svoj prvi hotel",
		"slug":                 "URL oznaka",
		"address":              "Adresa",
		"phone":                "Telefon",
		"assets":               "Datoteke",
		"view":                 "Pogledaj",
		"edit":                 "Uredi",
		"customize":            "Prilagodite svoju stranicu",
		"hotelInfo":            "Podaci o hotelu",
		"styleAndBranding":     "Stil i brendiranje",
		"welcomeTexts":         "Tekstovi dobrodošlice",
		"contentStructure":     "Struktura sadržaja",
		"manageBlocks":         "Upravljanje blokovima",
		"templateTexts":        "Tekstovi predloška",
		"addSection":           "Dodaj sekciju",
		"sectionTitle":         "Naslov sekcije",
		"createSection":        "Stvori sekciju",
		"blockTitle":           "Naslov bloka",
		"createBlock":          "Stvori blok",
		"updateBlock":          "Ažuriraj blok",
		"uploadImage":          "Učitaj sliku",
		"landingPageUrl":       "Vaša stranica bit će dostupna na: /{slug}",
		"confirmDeleteSection": "Jeste li sigurni? Ovo će obrisati sve blokove u ovoj sekciji.",
		"confirmDeleteBlock":   "Jeste li sigurni da želite obrisati ovaj blok?",
		"hotelNotFound":        "Hotel nije pronađen",
		"failedToLoad":         "Neuspješno učitavanje podataka",
		"updatedSuccessfully":  "Uspješno ažurirano!",
		"loading":              "Učitavanje...",
		"subscriptionInactive": "Vaša pretplata je {status}. Aktivirajte pretplatu za upravljanje hotelima.",
		"setupRequired":        "Potrebna je konfiguracija. Postavite parametre veze na pohranu.",
	},
	"de": {
		"dashboard":            "Dashboard",
		"welcomeBack":          "Willkommen zurück",
		"yourHotels":           "Ihre Hotels",
		"addHotel":             "Hotel hinzufügen",
		"signOut":              "Abmelden",
		"noHotelsYet":          "Noch keine Hotels",
		"createFirstHotel":     "Erstellen Sie Ihr erstes Hotel",
		"slug":                 "URL-Slug",
		"address":              "Adresse",
		"phone":                "Telefon",
		"assets":               "Dateien",
		"view":                 "Ansehen",
		"edit":                 "Bearbeiten",
		"customize":            "Passen Sie Ihre Landingpage an",
		"hotelInfo":            "Hotel-Info",
		"styleAndBranding":     "Stil & Branding",
		"welcomeTexts":         "Willkommenstexte",
		"contentStructure":     "Inhaltsstruktur",
		"manageBlocks":         "Blöcke verwalten",
		"templateTexts":        "Vorlagentexte",
		"addSection":           "Bereich hinzufügen",
		"sectionTitle":         "Bereichstitel",
		"createSection":        "Bereich erstellen",
		"blockTitle":           "Block-Titel",
		"createBlock":          "Block erstellen",
		"updateBlock":          "Block aktualisieren",
		"uploadImage":          "Bild hochladen",
		"landingPageUrl":       "Ihre Landingpage wird verfügbar sein unter: /{slug}",
		"confirmDeleteSection": "Sind Sie sicher? Dies löscht alle Blöcke in diesem Bereich.",
		"confirmDeleteBlock":   "Sind Sie sicher, dass Sie diesen Block löschen möchten?",
		"hotelNotFound":        "Hotel nicht gefunden",
		"failedToLoad":         "Daten konnten nicht geladen werden",
		"updatedSuccessfully":  "Erfolgreich aktualisiert!",
		"loading":              "Laden...",
		"subscriptionInactive": "Ihr Abonnement ist {status}. Bitte aktivieren Sie Ihr Abonnement, um Hotels zu verwalten.",
		"setupRequired":        "Konfiguration erforderlich. Bitte Speicher-Verbindungsparameter setzen.",
	},
	"it": {
		"dashboard":            "Pannello",
		"welcomeBack":          "Bentornato",
		"yourHotels":           "I tuoi hotel",
		"addHotel":             "Aggiungi hotel",
		"signOut":              "Esci",
		"noHotelsYet":          "Ancora nessun hotel",
		"createFirstHotel":     "Crea il tuo primo hotel",
		"slug":                 "Slug URL",
		"address":              "Indirizzo",
		"phone":                "Telefono",
		"assets":               "File",
		"view":                 "Visualizza",
		"edit":                 "Modifica",
		"customize":            "Personalizza la tua pagina",
		"hotelInfo":            "Info hotel",
		"styleAndBranding":     "Stile e branding",
		"welcomeTexts":         "Testi di benvenuto",
		"contentStructure":     "Struttura dei contenuti",
		"manageBlocks":         "Gestisci blocchi",
		"templateTexts":        "Testi del modello",
		"addSection":           "Aggiungi sezione",
		"sectionTitle":         "Titolo sezione",
		"createSection":        "Crea sezione",
		"blockTitle":           "Titolo blocco",
		"createBlock":          "Crea blocco",
		"updateBlock":          "Aggiorna blocco",
		"uploadImage":          "Carica immagine",
		"landingPageUrl":       "La tua pagina sarà disponibile su: /{slug}",
		"confirmDeleteSection": "Sei sicuro? Verranno eliminati tutti i blocchi di questa sezione.",
		"confirmDeleteBlock":   "Sei sicuro di voler eliminare questo blocco?",
		"hotelNotFound":        "Hotel non trovato",
		"failedToLoad":         "Caricamento dati non riuscito",
		"updatedSuccessfully":  "Aggiornato con successo!",
		"loading":              "Caricamento...",
		"subscriptionInactive": "Il tuo abbonamento è {status}. Attiva l'abbonamento per gestire gli hotel.",
		"setupRequired":        "Configurazione richiesta. Imposta i parametri di connessione allo storage.",
	},
}
