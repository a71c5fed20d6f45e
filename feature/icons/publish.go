package icons

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"departure-board/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var contentTypes = map[Format]string{
	FormatPNG: "image/png",
	FormatSVG: "image/svg+xml",
}

// Publisher uploads a generated icon set to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a Publisher for bucket.
func NewPublisher(client storage.Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish uploads every icon file in dir under prefix, creating the bucket
// when it does not exist. It returns the object keys written.
func (p *Publisher) Publish(ctx context.Context, dir, prefix string) ([]string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		p.logger.Info("Creating bucket", zap.String("bucket", p.bucket))
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var keys []string
	for _, e := range entries {
		_, format, ok := ParseFilename(e.Name())
		if e.IsDir() || !ok {
			continue
		}

		key := path.Join(prefix, e.Name())
		if err := p.upload(ctx, filepath.Join(dir, e.Name()), key, contentTypes[format]); err != nil {
			return keys, err
		}
		keys = append(keys, key)
		p.logger.Info("Published icon", zap.String("bucket", p.bucket), zap.String("key", key))
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no icons found in %s", dir)
	}
	return keys, nil
}

func (p *Publisher) upload(ctx context.Context, file, key, contentType string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
