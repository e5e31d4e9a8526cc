package domain

import "time"

// StorageTag selects the blob storage backend a file lives in.
type StorageTag string

const (
	StorageR2     StorageTag = "r2"
	StorageImages StorageTag = "images"
)

// Valid reports whether t names a known backend.
func (t StorageTag) Valid() bool {
	return t == StorageR2 || t == StorageImages
}

// Document is a file attached to a transaction.
type Document struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Storage     StorageTag `json:"storage"`
	ContentType string     `json:"content_type,omitempty"`
	Size        int64      `json:"size"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
