// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the upload
// archive (every vendor spreadsheet is kept as uploaded, keyed by session)
// can be mocked in unit tests; the mock lives in core/storage/mocks. Both
// AWS S3 and self-hosted MinIO instances work.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
