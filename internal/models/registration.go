package models

import "time"

// Registration es el evento de recepción (cita o solicitud de informes).
// Una sola tabla con discriminador tipo_registro; los registros son
// inmutables una vez creados.
type Registration struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"publicId"`

	Nombre        string `gorm:"size:100;not null" json:"nombre"`
	Celular       string `gorm:"size:20;not null" json:"celular"`
	ComoNosConoce string `gorm:"size:50;not null" json:"comoNosConoce"`

	TipoRegistro string `gorm:"size:30;not null;index:idx_registrations_tipo_fecha,priority:1" json:"tipoRegistro"`
	NivelInteres string `gorm:"size:10;not null" json:"nivelInteres"`
	Notas        string `gorm:"type:text" json:"notas"`

	AsesorID uint    `json:"asesorId"`
	Asesor   Advisor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"asesor"`

	CreadoPorID uint      `json:"creadoPor"`
	CreadoPor   StaffUser `gorm:"foreignKey:CreadoPorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"usuario"`

	// Sello del servidor: fecha completa para filtros, hora civil "HH:MM"
	// para mostrar.
	FechaRegistro time.Time `gorm:"index:idx_registrations_tipo_fecha,priority:2" json:"fechaRegistro"`
	HoraRegistro  string    `gorm:"size:5;not null" json:"horaRegistro"`

	// Campos capturados por el formulario, sin validación del lado servidor.
	CanalPreferido   string `gorm:"size:30" json:"canalPreferido,omitempty"`
	EmailContacto    string `gorm:"size:100" json:"emailContacto,omitempty"`
	SolicitoInfo     string `gorm:"size:5" json:"solicitoInfo,omitempty"`
	SatisfaccionInfo string `gorm:"size:20" json:"satisfaccionInfo,omitempty"`
	ActitudCliente   string `gorm:"size:30" json:"actitudCliente,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
