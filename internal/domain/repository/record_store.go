package repository

import (
	"context"
)

// LoadStatus describes how one collection came out of Load.
type LoadStatus int

const (
	// LoadStatusLoaded means the stored collection was read and decoded.
	LoadStatusLoaded LoadStatus = iota
	// LoadStatusNotFound means nothing was stored yet (first run); seed data was written.
	LoadStatusNotFound
	// LoadStatusCorrupt means the stored collection could not be read or decoded; seed data was written.
	LoadStatusCorrupt
)

// String returns the status name.
func (s LoadStatus) String() string {
	switch s {
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusNotFound:
		return "not_found"
	case LoadStatusCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Seeded reports whether the collection was replaced by seed data.
func (s LoadStatus) Seeded() bool {
	return s != LoadStatusLoaded
}

// LoadReport tells the caller how each collection was obtained, so a first run can be told apart from corruption.
type LoadReport struct {
	Customers     LoadStatus
	Prescriptions LoadStatus
}

// RecordStore is the durable repository of customers and prescriptions.
type RecordStore interface {
	CustomerRepository
	PrescriptionRepository

	// Load replaces both in-memory collections from storage, seeding any collection that is missing or corrupt.
	// The only error is a failure to persist seed data.
	Load(ctx context.Context) (LoadReport, error)
}
