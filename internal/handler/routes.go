package handler

import (
	"net/http"

	"github.com/msomdec/inkpost/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The middleware
// assignment is a fixed table: profile read/update, post creation, the
// "my posts" listing, and post update/delete require authentication;
// everything else resolves the caller optionally.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, posts *service.PostService) {
	authHandler := NewAuthHandler(auth)
	postHandler := NewPostHandler(posts)

	required := func(h http.HandlerFunc) http.Handler { return RequireAuth(auth, h) }
	optional := func(h http.HandlerFunc) http.Handler { return OptionalAuth(auth, h) }

	mux.Handle("GET /{$}", optional(HandleHome))
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /auth/register", optional(authHandler.HandleRegister))
	mux.Handle("POST /auth/login", optional(authHandler.HandleLogin))
	mux.Handle("GET /auth/profile", required(authHandler.HandleProfile))
	mux.Handle("PUT /auth/profile", required(authHandler.HandleUpdateProfile))

	mux.Handle("GET /posts", optional(postHandler.HandleListAll))
	mux.Handle("POST /posts", required(postHandler.HandleCreate))
	mux.Handle("GET /posts/my", required(postHandler.HandleMyPosts))
	mux.Handle("GET /posts/{id}", optional(postHandler.HandleGet))
	mux.Handle("PUT /posts/{id}", required(postHandler.HandleUpdate))
	mux.Handle("DELETE /posts/{id}", required(postHandler.HandleDelete))
}
