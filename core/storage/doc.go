// Package storage wraps the MinIO Go client for publishing generated assets
// to AWS S3 or a self-hosted MinIO instance.
//
// The Client interface carries only what publishing needs, which keeps the
// testify mock in core/storage/mocks small.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
