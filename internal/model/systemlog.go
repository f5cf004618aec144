package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit action tags
const (
	LogActionLogin   = "LOGIN"
	LogActionCreate  = "CREATE"
	LogActionUpdate  = "UPDATE"
	LogActionDelete  = "DELETE"
	LogActionApprove = "APPROVE"
	LogActionReject  = "REJECT"
	LogActionReturn  = "RETURN"
)

// SystemLog tracks Who, What, and When for significant system changes.
// Append-only; never mutated or deleted by the application.
type SystemLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for system actions
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Username   string     `gorm:"type:varchar(255)" json:"username"` // Display name snapshot at write time
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string     `gorm:"type:varchar(50);index" json:"entity_type"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	Details    string     `gorm:"type:text" json:"details"` // Arbitrary free text, may be empty
	SourceIP   string     `gorm:"type:varchar(45)" json:"source_ip"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
