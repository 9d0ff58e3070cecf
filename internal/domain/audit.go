package domain

import (
	"time"
)

// AuditAction is the kind of mutation an audit record describes.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditDelete  AuditAction = "DELETE"
	AuditApprove AuditAction = "APPROVE"
	AuditReject  AuditAction = "REJECT"
)

// AuditRecord captures one mutation for the audit trail. Old and new
// values are serialized snapshots; the record itself is append-only.
type AuditRecord struct {
	ID         string // uuid
	CompanyID  int64
	UserID     int64
	Action     AuditAction
	EntityType string
	EntityID   string
	OldValues  string
	NewValues  string
	CreatedAt  time.Time
}
