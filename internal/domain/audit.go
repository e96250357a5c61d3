package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity. Append-only.
type AuditRecord struct {
	ID          uuid.UUID
	UserID      *uuid.UUID // nil for system actions
	EntityType  EntityType
	EntityID    *uuid.UUID
	Action      AuditAction
	Description string
	OldValues   map[string]any
	NewValues   map[string]any
	Metadata    map[string]any
	IPAddress   *string
	UserAgent   *string
	CreatedAt   time.Time
}

// RequestMeta carries client details copied into audit records.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
