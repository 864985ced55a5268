package repository

import (
	"context"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionReader is the read-only view of prescriptions the validation checks work against.
type PrescriptionReader interface {
	// FindPrescriptionsByOwner returns the owner's prescriptions in insertion order, possibly none.
	FindPrescriptionsByOwner(ownerID uuid.UUID) []entity.Prescription
}

// PrescriptionRepository defines the operations on the prescription collection.
type PrescriptionRepository interface {
	PrescriptionReader

	// AddPrescription constructs a prescription taken "now" with no snooze, appends it and returns the ID.
	AddPrescription(ownerID uuid.UUID, fields entity.PrescriptionFields) uuid.UUID

	// FindPrescriptionByID reports false when no prescription has the ID.
	FindPrescriptionByID(id uuid.UUID) (entity.Prescription, bool)

	// ListPrescriptions returns a snapshot of every prescription in insertion order.
	ListPrescriptions() []entity.Prescription

	// DeletePrescription removes the earliest-added prescription matching both owner and drug name.
	// It reports whether anything was removed; no match is not an error.
	DeletePrescription(ownerID uuid.UUID, drugName string) bool

	// ReplacePrescription removes the earliest-added prescription matching owner and drug name and
	// appends a new one built from fields, under one write lock. The new record is taken "now" and
	// not snoozed. It reports false, adding nothing, when no prescription matched.
	ReplacePrescription(ownerID uuid.UUID, drugName string, fields entity.PrescriptionFields) (uuid.UUID, bool)

	// ModifyPrescription applies fn to the stored prescription with the ID under the write lock.
	// It reports false when no prescription has the ID.
	ModifyPrescription(id uuid.UUID, fn func(p *entity.Prescription)) bool

	// ModifyPrescriptions applies fn to every stored prescription under a single write lock.
	ModifyPrescriptions(fn func(p *entity.Prescription))

	// PersistPrescriptions overwrites the stored prescription collection with the in-memory one.
	PersistPrescriptions(ctx context.Context) error
}
