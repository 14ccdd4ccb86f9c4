package httpserver

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/adapters/session"
	"hotel_concierge/internal/app"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/i18n"
)

const maxUploadBytes = 10 << 20

// Hotel columns the customize form may write, keyed by form field name.
var hotelFormFields = []string{
	"name", "description", "address", "phone", "email", "website",
	"custom_background_color", "custom_accent_color", "custom_text_color",
	"custom_font_family", "custom_welcome_title", "custom_welcome_subtitle",
	"custom_phone_instructions",
}

// ---- auth ----

type loginData struct {
	Lang  string
	Error string
}

func (h *Handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	render(w, http.StatusOK, "login.html", loginData{Lang: adminLang(r)})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	u, err := h.Auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		render(w, http.StatusUnauthorized, "login.html", loginData{Lang: adminLang(r), Error: "Invalid email or password"})
		return
	}
	su := session.User{ID: u.ID, Email: u.Email}
	if u.FullName != nil {
		su.Name = *u.FullName
	}
	if err := h.Sessions.Issue(w, su); err != nil {
		log.Error().Err(err).Msg("issue session failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ---- dashboard ----

type dashboardData struct {
	Lang    string
	Name    string
	Hotels  []domain.Hotel
	Blocked string // subscription warning, empty when active
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	su, _ := SessionUser(r)
	u, err := h.Auth.UserByEmail(r.Context(), su.Email)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	hotels, err := h.Pages.Dashboard(r.Context(), u.ID)
	if err != nil {
		log.Error().Err(err).Msg("list hotels failed")
	}
	data := dashboardData{Lang: u.AdminLanguage, Name: su.Name, Hotels: hotels}
	if u.SubscriptionStatus != "active" {
		data.Blocked = i18n.T(u.AdminLanguage, "subscriptionInactive", map[string]string{"status": u.SubscriptionStatus})
	}
	render(w, http.StatusOK, "dashboard.html", data)
}

type hotelNewData struct {
	Lang      string
	Languages []string
	Error     string
}

func (h *Handlers) hotelNewForm(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	render(w, http.StatusOK, "hotel_new.html", hotelNewData{Lang: adminLang(r), Languages: domain.Languages})
}

func (h *Handlers) hotelCreate(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	su, _ := SessionUser(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	hotel, err := h.Content.CreateHotel(r.Context(), su.ID,
		r.PostFormValue("name"), r.PostFormValue("slug"),
		r.PostFormValue("primary_language"), r.PostFormValue("secondary_language"))
	if err != nil {
		msg := "Could not create hotel"
		if err == domain.ErrSlugTaken {
			msg = "That slug is already taken"
		}
		render(w, http.StatusUnprocessableEntity, "hotel_new.html", hotelNewData{Lang: adminLang(r), Languages: domain.Languages, Error: msg})
		return
	}
	http.Redirect(w, r, "/dashboard/"+hotel.Slug+"/customize", http.StatusSeeOther)
}

// ---- customize ----

type customizeData struct {
	Lang        string // admin UI language
	ContentLang string // language of the tree being edited
	Tab         string
	Editor      app.Editor
	Languages   []string
}

func (h *Handlers) customize(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	ed, ok := h.owned(w, r)
	if !ok {
		return
	}
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = "info"
	}
	render(w, http.StatusOK, "customize.html", customizeData{
		Lang:        adminLang(r),
		ContentLang: contentLang(r),
		Tab:         tab,
		Editor:      ed,
		Languages:   domain.Languages,
	})
}

func (h *Handlers) hotelUpdate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	for _, f := range hotelFormFields {
		vs, present := r.PostForm[f]
		if !present {
			continue
		}
		// name is required; a blanked field keeps the current value.
		if f == "name" && strings.TrimSpace(vs[0]) == "" {
			continue
		}
		if err := h.Content.UpdateHotelField(r.Context(), ed.Hotel.ID, f, vs[0]); err != nil {
			log.Error().Err(err).Str("field", f).Msg("hotel update failed")
		}
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/customize")
}

func (h *Handlers) languagesUpdate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	var langs []string
	for _, l := range r.PostForm["languages"] {
		if i18n.Has(l) {
			langs = append(langs, l)
		}
	}
	if err := h.Content.UpdateSupportedLanguages(r.Context(), ed.Hotel.ID, langs); err != nil {
		log.Error().Err(err).Msg("languages update failed")
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/customize?tab=info")
}

// ---- sections ----

func (h *Handlers) sectionCreate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	if title != "" {
		if _, err := h.Content.CreateSection(r.Context(), ed.Hotel.ID, contentLang(r), title); err != nil {
			log.Error().Err(err).Msg("create section failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

func (h *Handlers) sectionMove(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedSection(r, ed); found {
		if err := h.Content.MoveSection(r.Context(), id, r.PostFormValue("dir") == "up"); err != nil {
			log.Error().Err(err).Msg("move section failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

func (h *Handlers) sectionDelete(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedSection(r, ed); found {
		if err := h.Content.DeleteSection(r.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete section failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

// ---- blocks ----

func (h *Handlers) blockCreate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	sectionID, found := "", false
	if sectionID = r.PostFormValue("section_id"); sectionID != "" {
		for _, s := range ed.Sections {
			if s.ID == sectionID {
				found = true
			}
		}
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	if found && title != "" {
		if _, err := h.Content.CreateBlock(r.Context(), sectionID, title,
			optField(r, "description"), optField(r, "external_url")); err != nil {
			log.Error().Err(err).Msg("create block failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

func (h *Handlers) blockUpdate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedBlock(r, ed); found {
		if err := h.Content.UpdateBlock(r.Context(), id, r.PostFormValue("title"),
			optField(r, "description"), optField(r, "external_url")); err != nil {
			log.Error().Err(err).Msg("update block failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

func (h *Handlers) blockDelete(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedBlock(r, ed); found {
		if err := h.Content.DeleteBlock(r.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete block failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

// blockImage either stores a freshly uploaded file against the block or
// attaches an already uploaded asset picked from the select.
func (h *Handlers) blockImage(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	id, found := h.ownedBlock(r, ed)
	if !found {
		redirectBack(w, r, h.structureURL(ed))
		return
	}
	if file, hdr, err := r.FormFile("file"); err == nil {
		defer file.Close()
		if hdr.Filename != "" {
			data, rerr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
			if rerr != nil {
				http.Error(w, "read failed", http.StatusBadRequest)
				return
			}
			if _, err := h.Assets.UploadToBlock(r.Context(), ed.Hotel.ID, id, hdr.Filename,
				hdr.Header.Get("Content-Type"), data); err != nil {
				log.Error().Err(err).Str("file", hdr.Filename).Msg("block image upload failed")
			}
			redirectBack(w, r, h.structureURL(ed))
			return
		}
	}
	if aid := r.PostFormValue("asset_id"); aid != "" {
		if err := h.Assets.AttachToBlock(r.Context(), id, aid); err != nil {
			log.Error().Err(err).Msg("attach image failed")
		}
	}
	redirectBack(w, r, h.structureURL(ed))
}

// ---- assets ----

type assetItem struct {
	domain.Asset
	URL string
}

type assetsData struct {
	Lang   string
	Hotel  domain.Hotel
	Assets []assetItem
	Error  string
}

func (h *Handlers) assetsPage(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	ed, ok := h.owned(w, r)
	if !ok {
		return
	}
	items := make([]assetItem, 0, len(ed.Assets))
	for _, a := range ed.Assets {
		items = append(items, assetItem{Asset: a, URL: h.Assets.PublicURL(a)})
	}
	render(w, http.StatusOK, "assets.html", assetsData{Lang: adminLang(r), Hotel: ed.Hotel, Assets: items})
}

func (h *Handlers) assetUpload(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	ed, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "read failed", http.StatusBadRequest)
		return
	}
	_, err = h.Assets.Upload(r.Context(), ed.Hotel.ID, hdr.Filename,
		hdr.Header.Get("Content-Type"), data,
		optField(r, "section_type"), optField(r, "language"))
	if err != nil {
		log.Error().Err(err).Str("file", hdr.Filename).Msg("asset upload failed")
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/assets")
}

func (h *Handlers) assetDelete(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedAsset(r, ed); found {
		if err := h.Assets.Delete(r.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete asset failed")
		}
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/assets")
}

func (h *Handlers) assetLogo(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	if id, found := h.ownedAsset(r, ed); found {
		if err := h.Assets.SetLogo(r.Context(), ed.Hotel.ID, id); err != nil {
			log.Error().Err(err).Msg("set logo failed")
		}
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/assets")
}

// logoUpload stores the file and makes it the hotel logo in one step.
// Attaching an existing asset goes through assetLogo instead.
func (h *Handlers) logoUpload(w http.ResponseWriter, r *http.Request) {
	if h.setup(w) {
		return
	}
	ed, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "read failed", http.StatusBadRequest)
		return
	}
	if _, err := h.Assets.UploadLogo(r.Context(), ed.Hotel.ID, hdr.Filename,
		hdr.Header.Get("Content-Type"), data); err != nil {
		log.Error().Err(err).Str("file", hdr.Filename).Msg("logo upload failed")
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/customize?tab=style")
}

// ---- legacy template texts ----

func (h *Handlers) contentUpdate(w http.ResponseWriter, r *http.Request) {
	ed, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	st := r.PostFormValue("section_type")
	valid := false
	for _, t := range domain.ContentSectionTypes {
		if t == st {
			valid = true
		}
	}
	if valid {
		if err := h.Content.UpdateContent(r.Context(), ed.Hotel.ID, contentLang(r), st,
			r.PostFormValue("title"), r.PostFormValue("body")); err != nil {
			log.Error().Err(err).Msg("content update failed")
		}
	}
	redirectBack(w, r, "/dashboard/"+ed.Hotel.Slug+"/customize?tab=templates")
}

// ---- helpers ----

// owned loads the editor working set and enforces that the session user
// owns the hotel. Anything else looks like a 404.
func (h *Handlers) owned(w http.ResponseWriter, r *http.Request) (app.Editor, bool) {
	su, _ := SessionUser(r)
	ed, err := h.Pages.GetEditor(r.Context(), chi.URLParam(r, "slug"), contentLang(r))
	if err != nil || ed.Hotel.OwnerID != su.ID {
		render(w, http.StatusNotFound, "notfound.html", nil)
		return app.Editor{}, false
	}
	return ed, true
}

func (h *Handlers) ownedForm(w http.ResponseWriter, r *http.Request) (app.Editor, bool) {
	if h.setup(w) {
		return app.Editor{}, false
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return app.Editor{}, false
	}
	return h.owned(w, r)
}

func (h *Handlers) ownedSection(r *http.Request, ed app.Editor) (string, bool) {
	id := chi.URLParam(r, "id")
	for _, s := range ed.Sections {
		if s.ID == id {
			return id, true
		}
	}
	return "", false
}

func (h *Handlers) ownedBlock(r *http.Request, ed app.Editor) (string, bool) {
	id := chi.URLParam(r, "id")
	for _, bs := range ed.Blocks {
		for _, b := range bs {
			if b.ID == id {
				return id, true
			}
		}
	}
	return "", false
}

func (h *Handlers) ownedAsset(r *http.Request, ed app.Editor) (string, bool) {
	id := chi.URLParam(r, "id")
	for _, a := range ed.Assets {
		if a.ID == id {
			return id, true
		}
	}
	return "", false
}

func (h *Handlers) structureURL(ed app.Editor) string {
	return "/dashboard/" + ed.Hotel.Slug + "/customize?tab=structure"
}

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	to := r.Referer()
	if to == "" {
		to = fallback
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// adminLang picks the dashboard UI language from the lang query param.
func adminLang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); i18n.Has(l) {
		return l
	}
	return domain.DefaultLanguage
}

// contentLang picks which language's content tree is being viewed or
// edited. Unlike the UI language it is not validated against the
// translation table; hotels may carry content in any language code.
func contentLang(r *http.Request) string {
	if l := r.URL.Query().Get("content_lang"); l != "" {
		return l
	}
	return domain.DefaultLanguage
}

func optField(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.PostFormValue(name))
	if v == "" {
		return nil
	}
	return &v
}
