package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public pages, the JSON API and the guarded admin
// surface. Read routes never touch the guard.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.pageHandler.index())
		r.Get("/post/{postID}", handlers.pageHandler.viewPost())
		r.Get("/healthz", handlers.pageHandler.health())
		r.Get("/api/posts", handlers.postHandler.listPosts())

		r.Get("/admin", handlers.authHandler.loginPage())
		r.Get("/secret-admin-access", handlers.authHandler.loginPage())
		r.Post("/admin/login", handlers.authHandler.login())
		r.Get("/admin/logout", handlers.authHandler.logout())
	})

	// Admin routes, gated on an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireAdmin)

		r.Get("/admin/panel", handlers.pageHandler.adminPanel())
		r.Get("/admin/edit/{postID}", handlers.pageHandler.editForm())
		r.Post("/admin/create", handlers.postHandler.createPost())
		r.Post("/admin/update/{postID}", handlers.postHandler.updatePost())
		r.Post("/admin/delete/{postID}", handlers.postHandler.deletePost())
	})
}
