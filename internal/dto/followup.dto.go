package dto

import "time"

type AdvisorDTO struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Turno  string `json:"turno"`
}

type AsesorRefDTO struct {
	Nombre string `json:"nombre"`
	Turno  string `json:"turno"`
}

type UsuarioRefDTO struct {
	Nombre string `json:"nombre"`
}

type FollowUpDTO struct {
	ID            uint      `json:"id"`
	PublicID      string    `json:"publicId"`
	Nombre        string    `json:"nombre"`
	Celular       string    `json:"celular"`
	ComoNosConoce string    `json:"comoNosConoce"`
	TipoRegistro  string    `json:"tipoRegistro"`
	NivelInteres  string    `json:"nivelInteres"`
	Notas         string    `json:"notas,omitempty"`
	FechaRegistro time.Time `json:"fechaRegistro"`
	HoraRegistro  string    `json:"horaRegistro"`

	Asesor  AsesorRefDTO  `json:"asesor"`
	Usuario UsuarioRefDTO `json:"usuario"`
}
