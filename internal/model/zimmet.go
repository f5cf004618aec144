package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ZimmetStatus enum constants
const (
	ZimmetActive   = "ACTIVE"
	ZimmetReturned = "RETURNED"
)

// Zimmet represents a custodial assignment of equipment to a staff member or department.
// At least one of PersonelID / BolumID must be set.
type Zimmet struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MalzemeID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"malzeme_id"`
	Malzeme      *Malzeme       `gorm:"foreignKey:MalzemeID" json:"malzeme,omitempty"`
	Quantity     int            `gorm:"type:int;not null;default:1" json:"quantity"`
	PersonelID   *uuid.UUID     `gorm:"type:uuid;index" json:"personel_id"`
	Personel     *Personel      `gorm:"foreignKey:PersonelID" json:"personel,omitempty"`
	BolumID      *uuid.UUID     `gorm:"type:uuid;index" json:"bolum_id"`
	Bolum        *Bolum         `gorm:"foreignKey:BolumID" json:"bolum,omitempty"`
	Status       string         `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"` // ACTIVE, RETURNED
	AssignedAt   time.Time      `gorm:"not null" json:"assigned_at"`
	ReturnedAt   *time.Time     `json:"returned_at"`
	Note         string         `gorm:"type:text" json:"note"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
