package httpserver

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/adapters/session"
)

type Handlers struct {
	Pages    *app.PageService
	Content  *app.ContentService
	Assets   *app.AssetService
	Auth     *app.AuthService
	Sessions *session.Manager

	// Configured is false while the store connection parameters are
	// missing; every page then degrades to the setup panel.
	Configured bool

	// PublicRPS caps guest page requests per client IP per second.
	// Zero means the default.
	PublicRPS int
}

const defaultPublicRPS = 20

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/placeholder.svg", h.placeholderSVG)

	s.mux.Get("/login", h.loginForm)
	s.mux.Post("/login", h.login)
	s.mux.Post("/logout", h.logout)

	s.mux.Route("/dashboard", func(r chi.Router) {
		r.Use(RequireSession(h.Sessions))
		r.Get("/", h.dashboard)
		r.Get("/new", h.hotelNewForm)
		r.Post("/new", h.hotelCreate)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/customize", h.customize)
			r.Post("/hotel", h.hotelUpdate)
			r.Post("/languages", h.languagesUpdate)
			r.Post("/sections", h.sectionCreate)
			r.Post("/sections/{id}/move", h.sectionMove)
			r.Post("/sections/{id}/delete", h.sectionDelete)
			r.Post("/blocks", h.blockCreate)
			r.Post("/blocks/{id}", h.blockUpdate)
			r.Post("/blocks/{id}/delete", h.blockDelete)
			r.Post("/blocks/{id}/image", h.blockImage)
			r.Get("/assets", h.assetsPage)
			r.Post("/assets", h.assetUpload)
			r.Post("/assets/{id}/delete", h.assetDelete)
			r.Post("/assets/{id}/logo", h.assetLogo)
			r.Post("/logo", h.logoUpload)
			r.Post("/content", h.contentUpdate)
		})
	})

	rps := h.PublicRPS
	if rps <= 0 {
		rps = defaultPublicRPS
	}
	// Public landing pages resolve last so fixed routes win.
	s.mux.With(RateLimitByIP(rps, rps*2)).Get("/{slug}", h.publicPage)
}

// setup short-circuits every page while the deployment is unconfigured.
func (h *Handlers) setup(w http.ResponseWriter) bool {
	if h.Configured {
		return false
	}
	render(w, http.StatusServiceUnavailable, "setup.html", nil)
	return true
}

type publicPageData struct {
	app.PageView
	FontURL string
}

func (h *Handlers) publicPage(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	slug := chi.URLParam(r, "slug")
	pv, err := h.Pages.GetPage(r.Context(), slug, r.URL.Query().Get("lang"))
	if err != nil {
		render(w, http.StatusNotFound, "notfound.html", nil)
		return
	}
	render(w, http.StatusOK, "public.html", publicPageData{PageView: pv, FontURL: fontURL(pv.FontFamily)})
}

func fontURL(family string) string {
	return "https://fonts.googleapis.com/css2?family=" + url.QueryEscape(family) + ":wght@300;400;600;700&display=swap"
}

// placeholderSVG draws the fallback tile used for blocks whose image
// reference does not resolve.
func (h *Handlers) placeholderSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	width := intOr(q.Get("width"), 160)
	height := intOr(q.Get("height"), 120)
	text := q.Get("text")

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="#6b7280" font-family="sans-serif" font-size="12">%s</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(text))
}

func intOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 2000 {
		return def
	}
	return n
}
