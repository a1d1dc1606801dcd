// Package archive stores raw upstream payloads in a gocloud blob bucket.
package archive

import (
	"context"
	"log/slog"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const contentTypeXML = "application/xml"

// BlobArchive writes payloads to a bucket opened from a URL.
type BlobArchive struct {
	bucket *blob.Bucket
}

// OpenBlobArchive opens the bucket behind bucketURL.
func OpenBlobArchive(ctx context.Context, bucketURL string) (*BlobArchive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", bucketURL)
	}

	return &BlobArchive{bucket: bucket}, nil
}

// Save overwrites any previous payload under key.
func (a *BlobArchive) Save(ctx context.Context, key string, payload []byte) error {
	err := a.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{ContentType: contentTypeXML})

	return errors.Wrapf(err, "archive %s", key)
}

// Read returns a stored payload.
func (a *BlobArchive) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := a.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read archived %s", key)
	}

	return data, nil
}

func (a *BlobArchive) Close() error {
	return a.bucket.Close()
}

type noopArchive struct{}

func (noopArchive) Save(context.Context, string, []byte) error { return nil }
func (noopArchive) Close() error                               { return nil }

// Params holds dependencies for the payload archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket, or returns an archive that discards everything.
func New(params Params) (service.PayloadArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || !cfg.Enabled || cfg.BucketURL == "" {
		params.Logger.Info("Payload archive disabled")

		return noopArchive{}, nil
	}

	archive, err := OpenBlobArchive(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Payload archive enabled", slog.String("bucket", cfg.BucketURL))
	params.Lc.Append(fx.StopHook(archive.Close))

	return archive, nil
}
