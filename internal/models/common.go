package models

import "time"

// AuditFields are the audit columns shared by every transaction table.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// ProfileRef is a LEFT JOINed profile row; every column is nullable.
type ProfileRef struct {
	ID             *string
	FullName       *string
	Email          *string
	Phone          *string
	DocumentNumber *string
}
