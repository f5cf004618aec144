package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bolum represents an organizational location node (building/floor/room)
type Bolum struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Building    string         `gorm:"type:varchar(255)" json:"building"`
	Floor       string         `gorm:"type:varchar(50)" json:"floor"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Personel represents a staff member who can hold custodial assignments
type Personel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string         `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(255);not null" json:"last_name"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	BolumID   *uuid.UUID     `gorm:"type:uuid;index" json:"bolum_id"`
	Bolum     *Bolum         `gorm:"foreignKey:BolumID" json:"bolum,omitempty"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`
	Email     string         `gorm:"type:varchar(255)" json:"email"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullName returns first and last name joined for display
func (p Personel) FullName() string {
	return p.FirstName + " " + p.LastName
}
