package api

import (
	"github.com/bikeoff/blog-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	postHandler postHandler
	pageHandler pageHandler
	authHandler authHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(posts *services.PostService, sessions *SessionManager, pages *renderer) *routeHandlers {
	return &routeHandlers{
		postHandler: newPostHandler(posts, pages),
		pageHandler: newPageHandler(posts, sessions, pages),
		authHandler: newAuthHandler(sessions, pages),
	}
}
