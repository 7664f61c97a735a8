// Package storage abstracts where uploaded media lands: S3-compatible
// object storage when a bucket is configured, local disk otherwise.
package storage

import (
	"context"
	"io"

	appconfig "brewvibe/internal/config"
)

// Backend stores an object and returns the public URL it will be served from.
type Backend interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewFromConfig selects the backend from configuration.
func NewFromConfig(ctx context.Context, cfg *appconfig.Config) (Backend, error) {
	if cfg.S3Bucket != "" {
		return newS3Backend(ctx, cfg)
	}
	return newLocalBackend(cfg.ImageUploadDir)
}
