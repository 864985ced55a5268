package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"medreminder/config"
	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_FirstRunSeedsAndPersists(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)

	report, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.LoadStatusNotFound, report.Customers)
	assert.Equal(t, repository.LoadStatusNotFound, report.Prescriptions)

	customers := store.ListCustomers()
	require.Len(t, customers, 2)
	assert.Equal(t, "thestr0ngest", customers[0].Username)
	assert.Equal(t, "kingofcurses", customers[1].Username)
	assert.Equal(t, "satorugojo@jjhs.edu", customers[0].Email)
	assert.Equal(t, "5551234567", customers[0].PhoneNumber)
	assert.Equal(t, "imhim@malevolentshrine.lol", customers[1].Email)
	assert.Equal(t, "5556666666", customers[1].PhoneNumber)

	gojo := customers[0]
	owned := store.FindPrescriptionsByOwner(gojo.ID)
	require.Len(t, owned, 2)
	assert.Equal(t, "Copium", owned[0].DrugName)
	assert.Equal(t, int64(604800), owned[0].TimeBetweenDose)
	assert.Equal(t, "Reverse Cursed Technique", owned[1].DrugName)
	assert.Equal(t, int64(120), owned[1].TimeBetweenDose)
	assert.Empty(t, store.FindPrescriptionsByOwner(customers[1].ID))

	exists, err := bucket.Exists(ctx, DefaultCustomersKey)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = bucket.Exists(ctx, DefaultPrescriptionsKey)
	require.NoError(t, err)
	assert.True(t, exists)

	// The seed is now what a second load finds.
	reloaded := NewStore(bucket, discardLogger())
	report, err = reloaded.Load(ctx)
	require.NoError(t, err)
	assert.False(t, report.Customers.Seeded())
	assert.False(t, report.Prescriptions.Seeded())
	assert.Equal(t, customers, reloaded.ListCustomers())
}

func TestStore_Load_CorruptCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)

	ownerID := store.AddCustomer(entity.CustomerFields{Username: "ada", Password: "engine1843"})
	require.NoError(t, store.PersistCustomers(ctx))
	require.NoError(t, bucket.WriteAll(ctx, DefaultPrescriptionsKey, []byte("{not json"), nil))

	reloaded := NewStore(bucket, discardLogger())
	report, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.LoadStatusLoaded, report.Customers)
	assert.Equal(t, repository.LoadStatusCorrupt, report.Prescriptions)

	customers := reloaded.ListCustomers()
	require.Len(t, customers, 1)
	assert.Equal(t, ownerID, customers[0].ID)

	// No seed owner among the loaded customers, so no seed prescriptions either.
	assert.Empty(t, reloaded.ListPrescriptions())
}

func TestStore_Load_SeedPersistFailure(t *testing.T) {
	store, bucket := newTestStore(t)
	require.NoError(t, bucket.Close())

	_, err := store.Load(context.Background())
	require.Error(t, err)
}

func TestStore_WithKeys(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)
	WithKeys("people.json", "")(store)

	require.NoError(t, store.PersistCustomers(ctx))

	exists, err := bucket.Exists(ctx, "people.json")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, DefaultPrescriptionsKey, store.prescriptionsKey)
}

func TestOpenBucket_LocalDir(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	bucket, err := OpenBucket(ctx, &config.StorageConfig{Dir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewStore(bucket, discardLogger(), WithClock(func() time.Time { return testNow }))
	_, err = store.Load(ctx)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, DefaultCustomersKey))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, DefaultPrescriptionsKey))
	assert.NoError(t, err)
}

func TestOpenBucket_URL(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), &config.StorageConfig{URL: "mem://"})
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())

	_, err = OpenBucket(context.Background(), &config.StorageConfig{URL: "nope://bucket"})
	assert.Error(t, err)
}
