package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/foxseedlab/speech2srt/internal/storage"
	"google.golang.org/api/option"
)

type GCSStore struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSStore opens a store rooted at gs://bucket[/prefix].
func NewGCSStore(ctx context.Context, uri string, opts ...option.ClientOption) (*GCSStore, error) {
	bucket, prefix, err := splitGCSURI(uri)
	if err != nil {
		return nil, err
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix}, nil
}

func splitGCSURI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// uri: %q", uri)
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in %q", uri)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func (s *GCSStore) object(name string) *gcs.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.objectName(name))
}

func (s *GCSStore) objectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *GCSStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.object(name).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.Location(name), err)
	}
	return true, nil
}

func (s *GCSStore) Read(ctx context.Context, name string) ([]byte, error) {
	r, err := s.object(name).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Location(name), err)
	}
	defer func() {
		_ = r.Close()
	}()
	return io.ReadAll(r)
}

func (s *GCSStore) Write(ctx context.Context, name string, body []byte, contentType string) error {
	w := s.object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s: %w", s.Location(name), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", s.Location(name), err)
	}
	return nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	err := s.object(name).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (s *GCSStore) Location(name string) string {
	return fmt.Sprintf("gs://%s/%s", s.bucket, s.objectName(name))
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
