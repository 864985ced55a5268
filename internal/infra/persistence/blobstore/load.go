package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/repository"
	"medreminder/internal/errors"

	"gocloud.dev/gcerrors"
)

// Load replaces both collections from the bucket.
// A collection that is missing or unreadable is replaced by seed data, which is written back at once.
func (s *Store) Load(ctx context.Context) (repository.LoadReport, error) {
	var report repository.LoadReport

	customers, status := readDocument[entity.Customer](ctx, s, s.customersKey, collectionCustomers)
	report.Customers = status
	if status.Seeded() {
		customers = seedCustomers()
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()

	if status.Seeded() {
		if err := s.PersistCustomers(ctx); err != nil {
			return report, err
		}
	}

	prescriptions, status := readDocument[entity.Prescription](ctx, s, s.prescriptionsKey, collectionPrescriptions)
	report.Prescriptions = status
	if status.Seeded() {
		prescriptions = s.seedPrescriptions()
	}

	s.mu.Lock()
	s.prescriptions = prescriptions
	s.mu.Unlock()

	if status.Seeded() {
		if err := s.PersistPrescriptions(ctx); err != nil {
			return report, err
		}
	}

	s.logger.InfoContext(ctx, "Record store loaded",
		slog.String("customers", report.Customers.String()),
		slog.String("prescriptions", report.Prescriptions.String()),
	)

	return report, nil
}

func readDocument[T any](ctx context.Context, s *Store, key, collection string) ([]T, repository.LoadStatus) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.InfoContext(ctx, "Collection not stored yet, seeding",
				slog.String("collection", collection),
				slog.String("key", key),
			)

			return nil, repository.LoadStatusNotFound
		}

		s.logger.WarnContext(ctx, "Collection unreadable, seeding",
			slog.String("collection", collection),
			slog.String("key", key),
			slog.Any("error", errors.Wrapf(err, "read %s", key)),
		)

		return nil, repository.LoadStatusCorrupt
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WarnContext(ctx, "Collection corrupt, seeding",
			slog.String("collection", collection),
			slog.String("key", key),
			slog.Any("error", errors.Wrapf(err, "decode %s", key)),
		)

		return nil, repository.LoadStatusCorrupt
	}

	return records, repository.LoadStatusLoaded
}
