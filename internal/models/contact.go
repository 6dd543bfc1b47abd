// Package models defines the domain types for Mannaz.
package models

// Contact is a single address-book record. ID is generated at creation
// time and is the sole lookup key; the remaining fields are free text.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
