package api

import "github.com/starford/mannaz/internal/models"

// CreateContactRequest is the request body for creating a contact.
type CreateContactRequest struct {
	Name  string `json:"name" example:"Alice Smith" validate:"required"`
	Email string `json:"email" example:"alice@example.com" validate:"required"`
	Phone string `json:"phone" example:"+1-555-0100" validate:"required"`
}

// Contact is the API representation of a contact (aliased from the domain layer).
type Contact = models.Contact

// ContactListResponse wraps contact listings.
type ContactListResponse struct {
	Contacts []Contact `json:"contacts" validate:"required"`
	Total    int       `json:"total" example:"42" validate:"required"`
}
