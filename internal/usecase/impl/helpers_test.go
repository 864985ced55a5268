package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"medreminder/config"
	"medreminder/internal/domain/entity"
	"medreminder/internal/infra/persistence/blobstore"
	"medreminder/internal/usecase/validation"

	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var baseTime = time.Date(2024, time.May, 6, 8, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// newTestStore returns an empty record store on an in-memory bucket whose clock reads baseTime.
func newTestStore(t *testing.T) (*blobstore.Store, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := blobstore.NewStore(bucket, newDiscardLogger(), blobstore.WithClock(func() time.Time { return baseTime }))

	return store, bucket
}

func newTestValidators(store *blobstore.Store) *validation.Factory {
	return validation.NewFactory(store, store)
}

func hourlyFields(drugName string) entity.PrescriptionFields {
	return entity.PrescriptionFields{
		DrugName:        drugName,
		DoctorName:      "Dr. Lee",
		Dosage:          "20mg",
		SideEffects:     "Drowsiness",
		TimeBetweenDose: 3600,
		DateIssued:      entity.MustDate(2024, time.January, 1),
		ExpirationDate:  entity.MustDate(2024, time.September, 29),
	}
}
