package models

import "time"

// Asesor de ventas. Altas y bajas se hacen con tooling administrativo;
// esta API solo lee.
type Advisor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:100;not null" json:"nombre"`
	Turno  string `gorm:"size:20" json:"turno"`
	Activo bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
