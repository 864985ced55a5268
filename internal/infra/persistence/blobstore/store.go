// Package blobstore keeps the customer and prescription collections in memory
// and writes each one as a JSON document to a gocloud.dev/blob bucket.
package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
)

const (
	// DefaultCustomersKey is the object key of the customer collection.
	DefaultCustomersKey = "customers.json"
	// DefaultPrescriptionsKey is the object key of the prescription collection.
	DefaultPrescriptionsKey = "prescriptions.json"

	collectionCustomers     = "customers"
	collectionPrescriptions = "prescriptions"

	documentContentType = "application/json"
)

// Store implements repository.RecordStore.
// Every mutation holds the write lock, so no two of them interleave.
type Store struct {
	mu            sync.RWMutex
	customers     []entity.Customer
	prescriptions []entity.Prescription

	// persistMu orders writes so a snapshot never lands on top of a newer one.
	persistMu sync.Mutex

	bucket           *blob.Bucket
	customersKey     string
	prescriptionsKey string
	now              func() time.Time
	logger           *slog.Logger
}

var _ repository.RecordStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of "now" for new prescriptions.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithKeys overrides the object keys of the two collections.
func WithKeys(customersKey, prescriptionsKey string) Option {
	return func(s *Store) {
		if customersKey != "" {
			s.customersKey = customersKey
		}
		if prescriptionsKey != "" {
			s.prescriptionsKey = prescriptionsKey
		}
	}
}

// NewStore creates an empty store backed by bucket. Call Load to fill it.
func NewStore(bucket *blob.Bucket, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		bucket:           bucket,
		customersKey:     DefaultCustomersKey,
		prescriptionsKey: DefaultPrescriptionsKey,
		now:              time.Now,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListCustomers returns a snapshot of every customer in insertion order.
func (s *Store) ListCustomers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.customers)
}

// AddCustomer appends a new customer and returns its ID.
func (s *Store) AddCustomer(fields entity.CustomerFields) uuid.UUID {
	customer := entity.NewCustomer(fields)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, customer)

	return customer.ID
}

// FindCustomerByID looks a customer up by ID.
func (s *Store) FindCustomerByID(id uuid.UUID) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, true
		}
	}

	return entity.Customer{}, false
}

// FindCustomerByCredentials returns the first customer whose username and password both match.
func (s *Store) FindCustomerByCredentials(username, password string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, customer := range s.customers {
		if customer.Username == username && customer.Password == password {
			return customer, true
		}
	}

	return entity.Customer{}, false
}

// AddPrescription appends a new prescription taken now and returns its ID.
func (s *Store) AddPrescription(ownerID uuid.UUID, fields entity.PrescriptionFields) uuid.UUID {
	prescription := entity.NewPrescription(ownerID, fields, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prescriptions = append(s.prescriptions, prescription)

	return prescription.ID
}

// FindPrescriptionByID looks a prescription up by ID.
func (s *Store) FindPrescriptionByID(id uuid.UUID) (entity.Prescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, prescription := range s.prescriptions {
		if prescription.ID == id {
			return prescription.Clone(), true
		}
	}

	return entity.Prescription{}, false
}

// FindPrescriptionsByOwner returns the owner's prescriptions in insertion order.
func (s *Store) FindPrescriptionsByOwner(ownerID uuid.UUID) []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]entity.Prescription, 0)
	for _, prescription := range s.prescriptions {
		if prescription.IsOwnedBy(ownerID) {
			owned = append(owned, prescription.Clone())
		}
	}

	return owned
}

// ListPrescriptions returns a snapshot of every prescription in insertion order.
func (s *Store) ListPrescriptions() []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePrescriptions(s.prescriptions)
}

// DeletePrescription removes the earliest-added prescription matching owner and drug name.
func (s *Store) DeletePrescription(ownerID uuid.UUID, drugName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByName(ownerID, drugName)
	if idx < 0 {
		return false
	}

	s.prescriptions = slices.Delete(s.prescriptions, idx, idx+1)

	return true
}

// ReplacePrescription deletes the earliest match and appends its replacement in one step.
func (s *Store) ReplacePrescription(ownerID uuid.UUID, drugName string, fields entity.PrescriptionFields) (uuid.UUID, bool) {
	replacement := entity.NewPrescription(ownerID, fields, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByName(ownerID, drugName)
	if idx < 0 {
		return uuid.Nil, false
	}

	s.prescriptions = append(slices.Delete(s.prescriptions, idx, idx+1), replacement)

	return replacement.ID, true
}

// ModifyPrescription applies fn to the prescription with the ID.
func (s *Store) ModifyPrescription(id uuid.UUID, fn func(p *entity.Prescription)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.prescriptions {
		if s.prescriptions[i].ID == id {
			fn(&s.prescriptions[i])

			return true
		}
	}

	return false
}

// ModifyPrescriptions applies fn to every prescription.
func (s *Store) ModifyPrescriptions(fn func(p *entity.Prescription)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.prescriptions {
		fn(&s.prescriptions[i])
	}
}

// PersistCustomers overwrites the stored customer document.
func (s *Store) PersistCustomers(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	snapshot := slices.Clone(s.customers)
	s.mu.RUnlock()

	return s.write(ctx, s.customersKey, collectionCustomers, snapshot)
}

// PersistPrescriptions overwrites the stored prescription document.
func (s *Store) PersistPrescriptions(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	snapshot := clonePrescriptions(s.prescriptions)
	s.mu.RUnlock()

	return s.write(ctx, s.prescriptionsKey, collectionPrescriptions, snapshot)
}

func (s *Store) write(ctx context.Context, key, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return domainerrors.NewPersistenceError(errors.Wrap(err, "encode"), collection)
	}

	opts := &blob.WriterOptions{ContentType: documentContentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist collection",
			slog.String("collection", collection),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return domainerrors.NewPersistenceError(errors.Wrapf(err, "write %s", key), collection)
	}

	return nil
}

// indexByName must be called with mu held.
func (s *Store) indexByName(ownerID uuid.UUID, drugName string) int {
	return slices.IndexFunc(s.prescriptions, func(p entity.Prescription) bool {
		return p.IsOwnedBy(ownerID) && p.DrugName == drugName
	})
}

func clonePrescriptions(src []entity.Prescription) []entity.Prescription {
	out := make([]entity.Prescription, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}

	return out
}
