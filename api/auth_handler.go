package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  *SessionManager
	pages     *renderer
}

func newAuthHandler(sessions *SessionManager, pages *renderer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
		pages:     pages,
	}
}

// loginPage serves GET /admin (and its legacy alias). Authenticated callers
// go straight to the panel.
func (h authHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.sessions.IsAuthenticated(r) {
			http.Redirect(w, r, "/admin/panel", http.StatusSeeOther)
			return
		}
		h.pages.render(w, http.StatusOK, "admin_login.html", pageData{})
	}
}

// login handles POST /admin/login. The failure message never hints at how
// close the attempt was.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password, err := h.submittedPassword(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to read login request")
			h.pages.render(w, http.StatusBadRequest, "admin_login.html", pageData{Error: "Incorrect password"})
			return
		}

		if !h.sessions.Authenticate(password) {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login attempt")
			if isJSONRequest(r) {
				w.WriteHeader(http.StatusUnauthorized)
				h.responder.WriteJSON(w, map[string]string{"error": "Incorrect password"})
				return
			}
			h.pages.render(w, http.StatusOK, "admin_login.html", pageData{Error: "Incorrect password"})
			return
		}

		if err := h.sessions.IssueSession(w); err != nil {
			h.logger.Error().Err(err).Msg("failed to issue session")
			h.pages.render(w, http.StatusInternalServerError, "admin_login.html", pageData{Error: "Something went wrong, try again"})
			return
		}

		if isJSONRequest(r) {
			h.responder.WriteJSON(w, map[string]bool{"success": true})
			return
		}
		http.Redirect(w, r, "/admin/panel", http.StatusSeeOther)
	}
}

// logout serves GET /admin/logout. Idempotent; an anonymous caller just gets
// the same redirect.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.ClearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h authHandler) submittedPassword(r *http.Request) (string, error) {
	if isJSONRequest(r) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", err
		}
		return body.Password, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostFormValue("password"), nil
}
