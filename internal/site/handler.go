package site

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyitalypro/landing/internal/content"
	"github.com/studyitalypro/landing/internal/i18n"
	"github.com/studyitalypro/landing/internal/leads"
	"github.com/studyitalypro/landing/pkg/logging"
)

const (
	defaultSessionCookie = "sip_session"
	defaultLocaleCookie  = "sip_lang"
	localeCookieMaxAge   = 365 * 24 * time.Hour
	contactAnchor        = "/#contact"
)

// Options wires a Handler.
type Options struct {
	Sessions      *leads.Sessions
	Catalog       *content.Catalog
	Translator    *i18n.Translator
	Renderer      *Renderer
	Logger        *logging.Logger
	SessionCookie string
	LocaleCookie  string
	SessionTTL    time.Duration
	SecureCookies bool
}

// Handler serves the landing page and the contact form endpoints. Each
// visitor gets their own form, keyed by a session cookie.
type Handler struct {
	sessions      *leads.Sessions
	catalog       *content.Catalog
	tr            *i18n.Translator
	renderer      *Renderer
	logger        *logging.Logger
	sessionCookie string
	localeCookie  string
	sessionTTL    time.Duration
	secure        bool
}

func NewHandler(opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.SessionCookie == "" {
		opts.SessionCookie = defaultSessionCookie
	}
	if opts.LocaleCookie == "" {
		opts.LocaleCookie = defaultLocaleCookie
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = leads.DefaultSessionTTL
	}
	return &Handler{
		sessions:      opts.Sessions,
		catalog:       opts.Catalog,
		tr:            opts.Translator,
		renderer:      opts.Renderer,
		logger:        opts.Logger,
		sessionCookie: opts.SessionCookie,
		localeCookie:  opts.LocaleCookie,
		sessionTTL:    opts.SessionTTL,
		secure:        opts.SecureCookies,
	}
}

// Index handles GET / requests.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(w, r)
	form := h.form(w, r)
	h.render(w, r, http.StatusOK, locale, h.formView(locale, form.Snapshot()))
}

// SubmitForm handles POST /contact requests from the HTML form.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	locale := h.locale(w, r)
	form := h.form(w, r)

	in := leads.Input{
		Name:      r.PostForm.Get("name"),
		Email:     r.PostForm.Get("email"),
		Phone:     r.PostForm.Get("phone"),
		Education: r.PostForm.Get("education"),
		Message:   r.PostForm.Get("message"),
	}

	_, err := form.Submit(r.Context(), in)
	switch {
	case err == nil:
		http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
	case errors.Is(err, leads.ErrFormBusy):
		h.render(w, r, http.StatusConflict, locale, h.formView(locale, form.Snapshot()))
	default:
		var fe leads.FieldErrors
		if !errors.As(err, &fe) {
			h.logger.Error("contact submit failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, locale, h.formView(locale, form.Snapshot()))
	}
}

// DismissForm handles POST /contact/dismiss requests.
func (h *Handler) DismissForm(w http.ResponseWriter, r *http.Request) {
	h.form(w, r).Reset()
	http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, locale string, fv FormView) {
	v := View{Page: h.catalog.Page(locale), Form: fv}
	if err := h.renderer.Render(w, status, v); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", "error", err, "locale", locale)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) formView(locale string, snap leads.Snapshot) FormView {
	return FormView{
		Values:          snap.Values,
		Errors:          h.messages(locale, snap.Errors),
		Submitting:      snap.Submitting,
		Succeeded:       snap.Succeeded,
		DismissInMillis: snap.DismissIn.Milliseconds(),
	}
}

func (h *Handler) messages(locale string, fe leads.FieldErrors) map[string]string {
	return fe.Messages(func(key, fallback string) string {
		if s, ok := h.tr.Lookup(locale, key); ok {
			return s
		}
		return fallback
	})
}

// form returns the visitor's form, issuing a session cookie on first visit.
func (h *Handler) form(w http.ResponseWriter, r *http.Request) *leads.Form {
	if c, err := r.Cookie(h.sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return h.sessions.Get(c.Value)
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Debug("contact form session started", "session_id", id)
	return h.sessions.Get(id)
}

// locale negotiates the request locale and remembers an explicit ?lang=.
func (h *Handler) locale(w http.ResponseWriter, r *http.Request) string {
	query := r.URL.Query().Get("lang")
	var cookie string
	if c, err := r.Cookie(h.localeCookie); err == nil {
		cookie = c.Value
	}
	locale := h.tr.Negotiate(query, cookie, r.Header.Get("Accept-Language"))
	if query != "" && strings.EqualFold(query, locale) && locale != cookie {
		http.SetCookie(w, &http.Cookie{
			Name:     h.localeCookie,
			Value:    locale,
			Path:     "/",
			MaxAge:   int(localeCookieMaxAge.Seconds()),
			Secure:   h.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return locale
}
