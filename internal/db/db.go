package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SalaVentasCO/reception-intake/internal/config"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Advisor{},
		&models.StaffUser{},
		&models.Registration{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db, cfg)

	return db
}

// seedDefaults deja la base usable en una instalación nueva: un usuario de
// recepción y el equipo de asesores. Idempotente; nunca pisa datos.
func seedDefaults(db *gorm.DB, cfg *config.Config) {
	var users int64
	db.Model(&models.StaffUser{}).Count(&users)
	if users == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		db.Create(&models.StaffUser{
			Nombre:       "Recepción",
			Email:        cfg.SeedEmail,
			PasswordHash: string(hashed),
			Rol:          "recepcion",
		})
	}

	var advisors int64
	db.Model(&models.Advisor{}).Count(&advisors)
	if advisors == 0 {
		db.Create(&[]models.Advisor{
			{Nombre: "Carlos Gómez", Turno: "Mañana", Activo: true},
			{Nombre: "Laura Pérez", Turno: "Tarde", Activo: true},
			{Nombre: "María Torres", Turno: "Mañana", Activo: true},
		})
	}
}
