package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/afzaalahmad/bookpal/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// companion API. It applies JSON content-type enforcement and request
// logging, and mounts the auth, answer, translation, activity, note,
// and progress endpoints.
//
// Routes:
//
//	POST   /auth/login         → authHandler.Login
//	POST   /auth/signup        → authHandler.Signup
//	POST   /api/rag/query      → ragHandler.Query
//	POST   /translate/urdu     → translateHandler.Urdu
//	POST   /activity/track     → activityHandler.Track (bearer auth)
//	POST   /notes              → noteHandler.Create    (bearer auth)
//	GET    /notes              → noteHandler.List      (bearer auth)
//	DELETE /notes/{id}         → noteHandler.Delete    (bearer auth)
//	POST   /progress           → progressHandler.Record (bearer auth)
//	GET    /progress           → progressHandler.List   (bearer auth)
func NewRouter(
	authHandler *AuthHandler,
	ragHandler *RagHandler,
	translateHandler *TranslateHandler,
	activityHandler *ActivityHandler,
	noteHandler *NoteHandler,
	progressHandler *ProgressHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/api/rag/query", ragHandler.Query)
	r.Post("/translate/urdu", translateHandler.Urdu)

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(jwtSecret))

		r.Post("/activity/track", activityHandler.Track)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.Create)
			r.Get("/", noteHandler.List)
			r.Delete("/{id}", noteHandler.Delete)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Post("/", progressHandler.Record)
			r.Get("/", progressHandler.List)
		})
	})

	return r
}
