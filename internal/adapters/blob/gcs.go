// Package blob adapts Google Cloud Storage to the domain BlobStore port.
package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/storage"

	"hotel_concierge/internal/adapters/observability"
)

type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(client *storage.Client, bucket string) *GCS {
	return &GCS{client: client, bucket: bucket}
}

func (g *GCS) Upload(ctx context.Context, path, contentType string, data []byte) error {
	start := time.Now()
	w := g.client.Bucket(g.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"

	_, werr := w.Write(data)
	cerr := w.Close()
	err := werr
	if err == nil {
		err = cerr
	}
	observability.ObserveBlob("upload", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("blob upload %s: %w", path, err)
	}
	return nil
}

// Remove is best-effort from the caller's perspective; a missing object
// counts as success.
func (g *GCS) Remove(ctx context.Context, path string) error {
	start := time.Now()
	err := g.client.Bucket(g.bucket).Object(path).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		err = nil
	}
	observability.ObserveBlob("remove", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("blob remove %s: %w", path, err)
	}
	return nil
}

// PublicURL derives the public object URL. Pure, never fails; callers
// fall back to a placeholder image for unresolved assets, not here.
func (g *GCS) PublicURL(path string) string {
	return "https://storage.googleapis.com/" + g.bucket + "/" + path
}
