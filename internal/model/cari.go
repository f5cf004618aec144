package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CariType enum constants
const (
	CariTypeSupplier = "SUPPLIER"
	CariTypeCustomer = "CUSTOMER"
	CariTypeBoth     = "BOTH"
)

// Cari represents a business partner (supplier or customer) of the hospital warehouse
type Cari struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Type          string         `gorm:"type:varchar(20);not null;index" json:"type"` // SUPPLIER, CUSTOMER, BOTH
	TaxNumber     string         `gorm:"type:varchar(50)" json:"tax_number"`
	TaxOffice     string         `gorm:"type:varchar(255)" json:"tax_office"`
	ContactPerson string         `gorm:"type:varchar(255)" json:"contact_person"`
	Phone         string         `gorm:"type:varchar(50)" json:"phone"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	Address       string         `gorm:"type:text" json:"address"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
