// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerReader is the read-only view of customers the validation checks work against.
type CustomerReader interface {
	// ListCustomers returns a snapshot of every customer in insertion order.
	ListCustomers() []entity.Customer
}

// CustomerRepository defines the operations on the customer collection.
type CustomerRepository interface {
	CustomerReader

	// AddCustomer constructs a customer with a fresh ID, appends it and returns the ID.
	// Username uniqueness is not checked here; validation runs before this is called.
	AddCustomer(fields entity.CustomerFields) uuid.UUID

	// FindCustomerByID reports false when no customer has the ID.
	FindCustomerByID(id uuid.UUID) (entity.Customer, bool)

	// FindCustomerByCredentials scans for an exact username and password match; the first match wins.
	FindCustomerByCredentials(username, password string) (entity.Customer, bool)

	// PersistCustomers overwrites the stored customer collection with the in-memory one.
	PersistCustomers(ctx context.Context) error
}
