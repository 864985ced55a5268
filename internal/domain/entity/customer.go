// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// Customer is a person who signed up to track their prescriptions.
// The password is stored exactly as given; there is no hashing.
type Customer struct {
	ID          uuid.UUID `json:"id"`           // Assigned on creation, never changes.
	FirstName   string    `json:"first_name"`   // Given name.
	LastName    string    `json:"last_name"`    // Family name.
	Username    string    `json:"username"`     // Login name, unique across all customers.
	Password    string    `json:"password"`     // Login secret, plaintext.
	Email       string    `json:"email"`        // Contact email.
	PhoneNumber string    `json:"phone_number"` // Contact phone number.
}

// CustomerFields holds everything needed to construct a Customer except its identity.
type CustomerFields struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// NewCustomer builds a Customer with a freshly generated ID.
func NewCustomer(fields CustomerFields) Customer {
	return Customer{
		ID:          uuid.New(),
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Username:    fields.Username,
		Password:    fields.Password,
		Email:       fields.Email,
		PhoneNumber: fields.PhoneNumber,
	}
}

// FullName joins first and last name for display.
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}
