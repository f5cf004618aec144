package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit enum constants — the closed set of stock units
const (
	UnitAdet     = "ADET"
	UnitKutu     = "KUTU"
	UnitPaket    = "PAKET"
	UnitLitre    = "LITRE"
	UnitKilogram = "KILOGRAM"
)

// Kategori represents a material category
type Kategori struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Malzeme represents a catalog line for a material/equipment item
type Malzeme struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	KategoriID    *uuid.UUID     `gorm:"type:uuid;index" json:"kategori_id"`
	Kategori      *Kategori      `gorm:"foreignKey:KategoriID" json:"kategori,omitempty"`
	Unit          string         `gorm:"type:varchar(20);not null" json:"unit"` // ADET, KUTU, PAKET, LITRE, KILOGRAM
	StockQuantity int            `gorm:"type:int;default:0;not null" json:"stock_quantity"`
	MinStockLevel int            `gorm:"type:int;default:0;not null" json:"min_stock_level"`
	Description   string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
