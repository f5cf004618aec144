package model

import (
	"time"

	"github.com/google/uuid"
)

// TalepType enum constants — free-text in the store, validated at the API boundary
const (
	TalepTypeCariEkleme    = "CARI_EKLEME"
	TalepTypeMalzemeEkleme = "MALZEME_EKLEME"
	TalepTypeZimmetEkleme  = "ZIMMET_EKLEME"
	TalepTypeDiger         = "DIGER"
)

// TalepStatus enum constants
const (
	TalepPending  = "PENDING"
	TalepApproved = "APPROVED"
	TalepRejected = "REJECTED"
)

// Talep is a change request submitted by a user without edit rights and reviewed
// by an admin. Approval records the decision only; it does not apply the payload.
type Talep struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestType     string     `gorm:"type:varchar(30);not null;index" json:"request_type"`
	RequestedBy     uuid.UUID  `gorm:"type:uuid;not null;index" json:"requested_by"`
	Requester       *User      `gorm:"foreignKey:RequestedBy" json:"requester,omitempty"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Details         string     `gorm:"type:text;not null" json:"details"`
	RequestData     string     `gorm:"type:jsonb;not null;default:'{}'" json:"request_data"` // Opaque payload keyed by request type
	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid" json:"reviewed_by"`
	Reviewer        *User      `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidTalepType reports whether t is in the closed request-type set
func ValidTalepType(t string) bool {
	switch t {
	case TalepTypeCariEkleme, TalepTypeMalzemeEkleme, TalepTypeZimmetEkleme, TalepTypeDiger:
		return true
	}
	return false
}
