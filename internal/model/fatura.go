package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FaturaType enum constants
const (
	FaturaTypeAlis  = "ALIS"  // purchase invoice
	FaturaTypeSatis = "SATIS" // sales invoice
)

// Fatura represents an invoice with server-computed totals.
// Totals are always recomputed from the line items; client-sent values are ignored.
type Fatura struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceNo     string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"invoice_no"`
	CariID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"cari_id"`
	Cari          *Cari           `gorm:"foreignKey:CariID" json:"cari,omitempty"`
	Type          string          `gorm:"type:varchar(10);not null;index" json:"type"` // ALIS, SATIS
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	TotalDiscount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_discount"`
	TotalVAT      decimal.Decimal `gorm:"column:total_vat;type:decimal(18,2);not null;default:0" json:"total_vat"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"grand_total"` // subtotal - total_discount + total_vat
	Note          string          `gorm:"type:text" json:"note"`
	Items         []FaturaItem    `gorm:"foreignKey:FaturaID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// FaturaItem represents a line item within a Fatura
type FaturaItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FaturaID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"fatura_id"`
	MalzemeID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"malzeme_id"`
	Malzeme     *Malzeme        `gorm:"foreignKey:MalzemeID" json:"malzeme,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount_pct"`
	VATPct      decimal.Decimal `gorm:"column:vat_pct;type:decimal(5,2);not null;default:0" json:"vat_pct"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"line_total"`
}
