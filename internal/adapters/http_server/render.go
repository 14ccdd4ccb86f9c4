package httpserver

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"deref": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"t": func(lang, key string) string {
		return i18n.T(lang, key, nil)
	},
	"tf": func(lang, key, name, value string) string {
		return i18n.T(lang, key, map[string]string{name: value})
	},
}).ParseFS(templateFS, "templates/*.html"))

// render buffers the template output so a mid-render failure turns into
// a clean 500 instead of a half-written page.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
