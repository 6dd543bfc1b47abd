package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/mannaz/internal/contactbook"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// events, if non-nil, is notified after successful mutations.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *contactbook.Service, authEnabled bool, token string, events EventPublisher, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, events)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Contacts CRD.
	r.Get("/contacts", h.ListContacts)
	r.Post("/contacts", h.CreateContact)
	r.Get("/contacts/{id}", h.GetContact)
	r.Delete("/contacts/{id}", h.DeleteContact)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
