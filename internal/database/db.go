package database

import (
	"log"

	"depo-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.RefreshToken{},
		&model.Cari{},
		&model.Kategori{},
		&model.Malzeme{},
		&model.Bolum{},
		&model.Personel{},
		&model.Fatura{},
		&model.FaturaItem{},
		&model.Zimmet{},
		&model.Talep{},
		&model.SystemLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
