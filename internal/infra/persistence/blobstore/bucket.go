package blobstore

import (
	"context"
	"log/slog"
	"strings"

	"medreminder/config"
	"medreminder/internal/domain/lifecycle"
	"medreminder/internal/domain/repository"
	"medreminder/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Drivers reachable through storage.url.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns a record store that loads on start
// and closes the bucket on stop.
func New(params Params) (repository.RecordStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is missing")
	}

	bucket, err := OpenBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	store := NewStore(bucket, params.Logger, WithKeys(cfg.CustomersKey, cfg.PrescriptionsKey))

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			_, err := store.Load(ctx)

			return err
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close storage bucket")
		},
	})

	return store, nil
}

// OpenBucket opens storage.url when set, otherwise the local storage.dir.
func OpenBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	if url := strings.TrimSpace(cfg.URL); url != "" {
		bucket, err := blob.OpenBucket(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %q", url)
		}

		return bucket, nil
	}

	bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage dir %q", cfg.Dir)
	}

	return bucket, nil
}
