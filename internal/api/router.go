package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ross/mindnotes/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// imageDir is the upload directory for note images.
// loc is the calendar zone; nil means the process-local zone.
func NewRouter(svc *noteservice.Service, authEnabled bool, token string, sseHandler http.Handler, imageDir string, loc *time.Location) chi.Router {
	h := NewHandler(svc, loc)
	ih := NewImageHandler(imageDir)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Notes.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.SaveNote)
	r.Post("/notes/restore", h.RestoreNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	// Calendar projection.
	r.Get("/calendar", h.Calendar)

	// Category lookup table.
	r.Get("/categories", h.Categories)

	// Image uploads (auth-protected).
	r.Post("/images", ih.Upload)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
