package port

import (
	"context"
	"io"
)

// UploadInput describes one rendered export to put into the exports bucket.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
	FileName    string // attachment name offered to browsers on download
}

// UploadOutput is what the store reports back for a stored export.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage keeps rendered exports and hands out time-limited links to them.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	// Delete removes an export whose record could not be committed.
	Delete(ctx context.Context, bucket, key string) error
}
