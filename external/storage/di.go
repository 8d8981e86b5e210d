package storage

import (
	"context"
	"strings"
	"time"

	"github.com/foxseedlab/speech2srt/external/gcloud"
	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/storage"
	"github.com/samber/do/v2"
)

const storageInitTimeout = 15 * time.Second

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (storage.BlobStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return Open(cfg.OutputStorage, cfg.GoogleCloudCredentialsJSON)
	})
}

// Open picks the store implementation from the URI scheme: gs:// for Cloud
// Storage, file:// or a bare path for the local filesystem.
func Open(uri, credentialsJSON string) (storage.BlobStore, error) {
	if strings.HasPrefix(uri, "gs://") {
		opts, err := gcloud.ClientOptions(credentialsJSON)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), storageInitTimeout)
		defer cancel()
		return NewGCSStore(ctx, uri, opts...)
	}
	return NewLocalStore(strings.TrimPrefix(uri, "file://"))
}
