package api

import (
	"net/http"
	"strconv"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *services.PostService
	pages     *renderer
}

func newPostHandler(posts *services.PostService, pages *renderer) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
		pages:     pages,
	}
}

// listPosts serves GET /api/posts. type=all, type=blog and no filter all
// mean everything; any other value is an exact category match.
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.posts.List(r.URL.Query().Get("type"))
		h.responder.WriteJSON(w, posts)
	}
}

// createPost handles POST /admin/create for both JSON and form callers,
// answering in the caller's encoding.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodePostInput(r)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		post, err := h.posts.Create(input)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		if isJSONRequest(r) {
			h.responder.WriteJSON(w, map[string]any{"success": true, "post": post})
			return
		}
		h.pages.render(w, http.StatusOK, "admin_panel.html", pageData{
			Posts:   h.posts.List(""),
			Success: "Post created successfully!",
		})
	}
}

// updatePost handles POST /admin/update/{postID}.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.postID(r)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		input, err := decodePostInput(r)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		post, err := h.posts.Update(id, input)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		if isJSONRequest(r) {
			h.responder.WriteJSON(w, map[string]any{"success": true, "post": post})
			return
		}
		h.pages.render(w, http.StatusOK, "admin_panel.html", pageData{
			Posts:   h.posts.List(""),
			Success: "Post updated successfully!",
		})
	}
}

// deletePost handles POST /admin/delete/{postID}. Deleting a missing post
// is reported as "not found", not raised as an error.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.postID(r)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		existed, err := h.posts.Delete(id)
		if err != nil {
			h.respondMutationError(w, r, err)
			return
		}

		if isJSONRequest(r) {
			if existed {
				h.responder.WriteJSON(w, map[string]any{"success": true, "message": "Post deleted successfully!"})
			} else {
				h.responder.WriteJSON(w, map[string]any{"success": false, "error": "Post not found!"})
			}
			return
		}

		data := pageData{Posts: h.posts.List("")}
		if existed {
			data.Success = "Post deleted successfully!"
		} else {
			data.Error = "Post not found!"
		}
		h.pages.render(w, http.StatusOK, "admin_panel.html", data)
	}
}

func (h postHandler) postID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "postID")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing postID")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid postID")
	}
	return uint(id), nil
}

// respondMutationError answers in the caller's encoding: JSON callers get
// the error envelope, form callers get the panel re-rendered with an inline
// message.
func (h postHandler) respondMutationError(w http.ResponseWriter, r *http.Request, err error) {
	if isJSONRequest(r) {
		h.responder.WriteError(w, err)
		return
	}

	message := "All fields are required"
	if !errs.IsMissingRequiredFieldError(err) {
		message = err.Error()
	}
	status := http.StatusOK
	if errs.IsNotFound(err) {
		status = http.StatusNotFound
	}
	h.pages.render(w, status, "admin_panel.html", pageData{
		Posts: h.posts.List(""),
		Error: message,
	})
}
