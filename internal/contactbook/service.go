// Package contactbook implements the contact collection over a single
// JSON file. Every operation is an independent read-modify-write cycle;
// no state is cached between calls.
package contactbook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/models"
	"github.com/starford/mannaz/internal/storage"
)

// Service owns the backing file through a storage.Provider.
//
// Concurrent mutations race on the read-modify-write cycle: the last
// full-file overwrite wins and silently discards any overlapping update.
// Single-process, low-concurrency usage is assumed.
type Service struct {
	store storage.Provider
}

// NewService creates a new contact book service.
func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// List returns the full ordered collection.
func (s *Service) List(_ context.Context) ([]models.Contact, error) {
	return s.load()
}

// Get returns the first contact whose id matches. Ids are expected
// unique, so stored order only matters if generation ever collides.
func (s *Service) Get(_ context.Context, id string) (*models.Contact, error) {
	contacts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Add appends a new contact with a generated id and rewrites the file.
// The inputs are stored as-is; no format or duplicate validation.
func (s *Service) Add(_ context.Context, name, email, phone string) (*models.Contact, error) {
	contacts, err := s.load()
	if err != nil {
		return nil, err
	}
	c := models.Contact{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	contacts = append(contacts, c)
	if err := s.save(contacts); err != nil {
		return nil, err
	}
	return &c, nil
}

// Remove deletes the contact with the given id and returns its prior
// value. When no contact matches, the file is left untouched and
// apperr.ErrNotFound is returned.
func (s *Service) Remove(_ context.Context, id string) (*models.Contact, error) {
	contacts, err := s.load()
	if err != nil {
		return nil, err
	}

	var removed *models.Contact
	kept := make([]models.Contact, 0, len(contacts))
	for i := range contacts {
		if contacts[i].ID == id {
			if removed == nil {
				c := contacts[i]
				removed = &c
			}
			continue
		}
		kept = append(kept, contacts[i])
	}
	if removed == nil {
		return nil, apperr.ErrNotFound
	}
	if err := s.save(kept); err != nil {
		return nil, err
	}
	return removed, nil
}

// load reads and parses the whole collection.
func (s *Service) load() ([]models.Contact, error) {
	data, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("contactbook: %w: %w", apperr.ErrUnavailable, err)
	}
	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("contactbook: %w: %w", apperr.ErrMalformed, err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// save serializes the whole collection and replaces the file.
func (s *Service) save(contacts []models.Contact) error {
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("contactbook: marshal: %w", err)
	}
	if err := s.store.Write(data); err != nil {
		return fmt.Errorf("contactbook: %w: %w", apperr.ErrUnavailable, err)
	}
	return nil
}
