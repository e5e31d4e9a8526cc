package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"` // UserID Reference
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"` // UserID Reference
}

// Status is the lifecycle state shared by every transaction kind.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ServiceKind identifies the kind of transaction record.
type ServiceKind string

const (
	KindFlight      ServiceKind = "flight"
	KindTransfer    ServiceKind = "transfer"
	KindTranslation ServiceKind = "translation"
	KindOther       ServiceKind = "other"
)

// Profile is the joined client or agent profile returned alongside a transaction.
type Profile struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// ListFilter narrows a transaction listing. Empty fields do not filter.
type ListFilter struct {
	Status      Status
	ClientID    string
	ServiceType ServiceKind
}
