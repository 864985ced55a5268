package blobstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var testNow = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*Store, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewStore(bucket, discardLogger(), WithClock(func() time.Time { return testNow }))

	return store, bucket
}

func testPrescriptionFields(drugName string) entity.PrescriptionFields {
	return entity.PrescriptionFields{
		DrugName:        drugName,
		DoctorName:      "Dr. Lee",
		Dosage:          "20mg",
		SideEffects:     "Drowsiness",
		TimeBetweenDose: 3600,
		DateIssued:      entity.MustDate(2024, time.January, 1),
		ExpirationDate:  entity.MustDate(2024, time.December, 31),
	}
}

func TestStore_AddCustomer_FindByID(t *testing.T) {
	store, _ := newTestStore(t)

	fields := entity.CustomerFields{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Username:    "ada",
		Password:    "engine1843",
		Email:       "ada@example.com",
		PhoneNumber: "555-0100",
	}

	id := store.AddCustomer(fields)
	require.NotEqual(t, uuid.Nil, id)

	customer, ok := store.FindCustomerByID(id)
	require.True(t, ok)
	assert.Equal(t, id, customer.ID)
	assert.Equal(t, fields.Username, customer.Username)
	assert.Equal(t, fields.Password, customer.Password)
	assert.Equal(t, fields.Email, customer.Email)
	assert.Equal(t, fields.PhoneNumber, customer.PhoneNumber)

	_, ok = store.FindCustomerByID(uuid.New())
	assert.False(t, ok)
}

func TestStore_FindCustomerByCredentials_FirstMatchWins(t *testing.T) {
	store, _ := newTestStore(t)

	first := store.AddCustomer(entity.CustomerFields{Username: "dup", Password: "secret123"})
	store.AddCustomer(entity.CustomerFields{Username: "dup", Password: "secret123"})

	customer, ok := store.FindCustomerByCredentials("dup", "secret123")
	require.True(t, ok)
	assert.Equal(t, first, customer.ID)

	_, ok = store.FindCustomerByCredentials("dup", "wrong")
	assert.False(t, ok)
}

func TestStore_AddPrescription_DefaultsReminderState(t *testing.T) {
	store, _ := newTestStore(t)
	owner := uuid.New()

	id := store.AddPrescription(owner, testPrescriptionFields("Aspirin"))

	owned := store.FindPrescriptionsByOwner(owner)
	require.Len(t, owned, 1)
	assert.Equal(t, id, owned[0].ID)
	assert.Equal(t, testNow, owned[0].WasTaken)
	assert.Nil(t, owned[0].Snooze)

	assert.Empty(t, store.FindPrescriptionsByOwner(uuid.New()))
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store, _ := newTestStore(t)
	id := store.AddPrescription(uuid.New(), testPrescriptionFields("Aspirin"))

	snooze := testNow
	require.True(t, store.ModifyPrescription(id, func(p *entity.Prescription) { p.Snooze = &snooze }))

	got, ok := store.FindPrescriptionByID(id)
	require.True(t, ok)
	later := testNow.Add(time.Hour)
	*got.Snooze = later
	got.DrugName = "changed"

	again, ok := store.FindPrescriptionByID(id)
	require.True(t, ok)
	assert.Equal(t, "Aspirin", again.DrugName)
	assert.Equal(t, testNow, *again.Snooze)
}

// Two prescriptions with the same drug name: exactly one goes, the earliest added.
func TestStore_DeletePrescription_DuplicateNames(t *testing.T) {
	store, _ := newTestStore(t)
	owner := uuid.New()

	first := store.AddPrescription(owner, testPrescriptionFields("Aspirin"))
	second := store.AddPrescription(owner, testPrescriptionFields("Aspirin"))

	assert.True(t, store.DeletePrescription(owner, "Aspirin"))

	remaining := store.FindPrescriptionsByOwner(owner)
	require.Len(t, remaining, 1)
	assert.Equal(t, second, remaining[0].ID)
	_, ok := store.FindPrescriptionByID(first)
	assert.False(t, ok)
}

func TestStore_DeletePrescription_NoMatchIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	owner := uuid.New()
	store.AddPrescription(owner, testPrescriptionFields("Aspirin"))

	assert.False(t, store.DeletePrescription(owner, "Ibuprofen"))
	assert.False(t, store.DeletePrescription(uuid.New(), "Aspirin"))
	assert.Len(t, store.ListPrescriptions(), 1)
}

func TestStore_ModifyPrescription_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	called := false
	ok := store.ModifyPrescription(uuid.New(), func(*entity.Prescription) { called = true })

	assert.False(t, ok)
	assert.False(t, called)
}

func TestStore_ModifyPrescriptions_VisitsAll(t *testing.T) {
	store, _ := newTestStore(t)
	store.AddPrescription(uuid.New(), testPrescriptionFields("A"))
	store.AddPrescription(uuid.New(), testPrescriptionFields("B"))

	snooze := testNow
	store.ModifyPrescriptions(func(p *entity.Prescription) { p.Snooze = &snooze })

	for _, p := range store.ListPrescriptions() {
		require.NotNil(t, p.Snooze)
		assert.Equal(t, testNow, *p.Snooze)
	}
}

func TestStore_PersistAndLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)

	ownerID := store.AddCustomer(entity.CustomerFields{Username: "ada", Password: "engine1843"})
	rxID := store.AddPrescription(ownerID, testPrescriptionFields("Aspirin"))
	snooze := testNow.Add(-time.Minute)
	store.ModifyPrescription(rxID, func(p *entity.Prescription) { p.Snooze = &snooze })

	require.NoError(t, store.PersistCustomers(ctx))
	require.NoError(t, store.PersistPrescriptions(ctx))

	reloaded := NewStore(bucket, discardLogger())
	report, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.LoadReport{
		Customers:     repository.LoadStatusLoaded,
		Prescriptions: repository.LoadStatusLoaded,
	}, report)

	assert.Equal(t, store.ListCustomers(), reloaded.ListCustomers())

	want := store.ListPrescriptions()
	got := reloaded.ListPrescriptions()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Fields(), got[i].Fields())
		assert.True(t, want[i].WasTaken.Equal(got[i].WasTaken))
		require.NotNil(t, got[i].Snooze)
		assert.True(t, want[i].Snooze.Equal(*got[i].Snooze))
	}
}

func TestStore_Persist_WriteFailure(t *testing.T) {
	store, bucket := newTestStore(t)
	require.NoError(t, bucket.Close())

	err := store.PersistPrescriptions(context.Background())
	require.Error(t, err)

	persistErr, ok := errors.AsType[*domainerrors.PersistenceError](err)
	require.True(t, ok)
	assert.Equal(t, collectionPrescriptions, persistErr.Collection())
}

func TestStore_ReplacePrescription(t *testing.T) {
	store, _ := newTestStore(t)
	owner := uuid.New()

	first := store.AddPrescription(owner, testPrescriptionFields("Aspirin"))
	other := store.AddPrescription(owner, testPrescriptionFields("Ibuprofen"))
	snooze := testNow
	store.ModifyPrescription(first, func(p *entity.Prescription) { p.Snooze = &snooze })

	fields := testPrescriptionFields("Aspirin")
	fields.Dosage = "40mg"
	replaced, ok := store.ReplacePrescription(owner, "Aspirin", fields)
	require.True(t, ok)
	assert.NotEqual(t, first, replaced)

	owned := store.FindPrescriptionsByOwner(owner)
	require.Len(t, owned, 2)
	assert.Equal(t, other, owned[0].ID)
	assert.Equal(t, replaced, owned[1].ID)
	assert.Equal(t, "40mg", owned[1].Dosage)
	assert.Nil(t, owned[1].Snooze)

	_, ok = store.ReplacePrescription(owner, "Unknown", fields)
	assert.False(t, ok)
	assert.Len(t, store.ListPrescriptions(), 2)
}
