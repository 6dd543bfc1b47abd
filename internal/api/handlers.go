package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/contactbook"
)

// EventPublisher receives a notification after each successful mutation.
// kind is "created" or "removed".
type EventPublisher interface {
	PublishContactEvent(kind, id string)
}

// Handler holds API route handlers.
type Handler struct {
	svc    *contactbook.Service
	events EventPublisher
}

// NewHandler creates a new Handler. events may be nil.
func NewHandler(svc *contactbook.Service, events EventPublisher) *Handler {
	return &Handler{svc: svc, events: events}
}

func (h *Handler) publish(kind, id string) {
	if h.events != nil {
		h.events.PublishContactEvent(kind, id)
	}
}

// ListContacts handles GET /contacts.
//
//	@Summary		List all contacts in stored order
//	@Tags			contacts
//	@Produce		json
//	@Success		200	{object}	ContactListResponse
//	@Security		BearerAuth
//	@Router			/contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, ContactListResponse{
		Contacts: contacts,
		Total:    len(contacts),
	})
}

// GetContact handles GET /contacts/{id}.
//
//	@Summary		Get a single contact by id
//	@Tags			contacts
//	@Produce		json
//	@Param			id	path		string	true	"Contact id"
//	@Success		200	{object}	Contact
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/contacts/{id} [get]
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	contact, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
		} else {
			slog.Error("get contact failed", slog.String("id", id), slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// CreateContact handles POST /contacts.
//
//	@Summary		Create a new contact
//	@Tags			contacts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateContactRequest	true	"Contact to create"
//	@Success		201		{object}	Contact
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "name, email and phone are required")
		return
	}
	contact, err := h.svc.Add(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		slog.Error("create contact failed", slog.String("name", req.Name), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.publish("created", contact.ID)
	writeJSON(w, http.StatusCreated, contact)
}

// DeleteContact handles DELETE /contacts/{id}. The removed record is
// returned so callers learn its prior value.
//
//	@Summary		Delete a contact
//	@Tags			contacts
//	@Produce		json
//	@Param			id	path		string	true	"Contact id"
//	@Success		200	{object}	Contact
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/contacts/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := h.svc.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
		} else {
			slog.Error("delete contact failed", slog.String("id", id), slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	h.publish("removed", removed.ID)
	writeJSON(w, http.StatusOK, removed)
}
