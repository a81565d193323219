// Package storage provides access to the object store holding import payloads.
//
// It wraps the MinIO Go client behind a small Client interface, which works
// against both AWS S3 and self-hosted MinIO and is mocked in tests
// (see core/storage/mocks).
//
// # Operations
//
//   - ReadObject: downloads a payload (JSON or XML) as text.
//   - WriteObject: publishes an import report as a text object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	payload, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "incoming/games.json")
package storage
