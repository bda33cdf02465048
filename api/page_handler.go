package api

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/bikeoff/blog-backend/models"
	"github.com/bikeoff/blog-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the payload every template receives.
type pageData struct {
	Posts       []models.Post
	Post        *models.Post
	Error       string
	Success     string
	BuildNumber string
}

// renderer executes the embedded HTML templates. The markup itself is
// deliberately minimal; presentation is not this backend's concern.
type renderer struct {
	templates   *template.Template
	buildNumber string
	logger      zerolog.Logger
}

func newRenderer(buildNumber string) *renderer {
	return &renderer{
		templates:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
		buildNumber: buildNumber,
		logger:      log.With().Str("handlerName", "renderer").Logger(),
	}
}

func (re *renderer) render(w http.ResponseWriter, status int, name string, data pageData) {
	data.BuildNumber = re.buildNumber
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := re.templates.ExecuteTemplate(w, name, data); err != nil {
		re.logger.Error().Err(err).Str("template", name).Msg("error rendering template")
	}
}

type pageHandler struct {
	responder Responder
	posts     *services.PostService
	sessions  *SessionManager
	pages     *renderer
	logger    zerolog.Logger
}

func newPageHandler(posts *services.PostService, sessions *SessionManager, pages *renderer) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		posts:     posts,
		sessions:  sessions,
		pages:     pages,
		logger:    logger,
	}
}

// health reports liveness and the deployed build number.
func (h pageHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status":       "ok",
			"build_number": h.pages.buildNumber,
		})
	}
}

// index renders the blog listing, optionally filtered by ?type=<category>.
func (h pageHandler) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.posts.List(r.URL.Query().Get("type"))
		h.pages.render(w, http.StatusOK, "index.html", pageData{Posts: posts})
	}
}

// viewPost renders a single post, or a 404 page for an unknown id.
func (h pageHandler) viewPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 32)
		if err != nil {
			h.pages.render(w, http.StatusNotFound, "not_found.html", pageData{})
			return
		}

		post, err := h.posts.Get(uint(id))
		if err != nil {
			h.pages.render(w, http.StatusNotFound, "not_found.html", pageData{})
			return
		}

		h.pages.render(w, http.StatusOK, "post.html", pageData{Post: post})
	}
}

// adminPanel renders the post-management page. The auth middleware has
// already vetted the session.
func (h pageHandler) adminPanel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.pages.render(w, http.StatusOK, "admin_panel.html", pageData{Posts: h.posts.List("")})
	}
}

// editForm renders the edit form for an existing post.
func (h pageHandler) editForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 32)
		if err != nil {
			h.pages.render(w, http.StatusNotFound, "not_found.html", pageData{})
			return
		}

		post, err := h.posts.Get(uint(id))
		if err != nil {
			h.pages.render(w, http.StatusNotFound, "not_found.html", pageData{})
			return
		}

		h.pages.render(w, http.StatusOK, "admin_edit.html", pageData{Post: post})
	}
}
