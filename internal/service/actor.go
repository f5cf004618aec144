package service

import (
	"depo-backend/internal/model"

	"github.com/google/uuid"
)

// Actor identifies who performs an operation, snapshotted into the audit trail.
// Handlers build it from the JWT context and the client IP.
type Actor struct {
	ID       uuid.UUID
	Username string
	IP       string
}

// auditEntry builds a SystemLog row for the given actor and action
func auditEntry(actor Actor, action, entityType, entityID, details string) *model.SystemLog {
	entry := &model.SystemLog{
		Username:   actor.Username,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		SourceIP:   actor.IP,
	}
	if actor.ID != uuid.Nil {
		id := actor.ID
		entry.UserID = &id
	}
	return entry
}
