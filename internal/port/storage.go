package port

import (
	"context"
	"io"
)

// UploadInput carries the data needed to store an evidence object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput contains metadata about a stored object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts evidence blob storage.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
}
