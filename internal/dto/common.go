package dto

import (
	"io"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// ListParams are the query parameters accepted by every list endpoint.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    string  `form:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	ClientID  string  `form:"client_id"`
}

// UpdateStatusRequest changes the lifecycle status of a transaction.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// DocumentURLResponse carries a signed, short lived document URL.
type DocumentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MutationResponse is the {success, error} body of delete and status endpoints.
type MutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Upload is a file received with a create or update submission.
type Upload struct {
	// Field is the multipart key, e.g. document_file_0 or payment_proof_2.
	Field       string
	Index       int
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Upload field prefixes.
const (
	DocumentFilePrefix = "document_file_"
	PaymentProofPrefix = "payment_proof_"
)

// StoredUploads is the result of saving a submission's files. Proofs maps a
// payment_details index to the stored proof path.
type StoredUploads struct {
	Documents []domain.Document
	Proofs    map[int]string
}
