// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface, so both AWS S3
// and self-hosted MinIO work and tests can substitute core/storage/mocks.
//
// The warehouse uses one bucket for two things:
//   - invoice line items (JSON) that restocking reads with GetObject
//   - catalog snapshot exports written with PutObject under ExportPrefix
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
package storage
