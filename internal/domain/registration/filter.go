package registration

import "time"

// Filter acota seguimiento y reportes. Los límites de fecha son inclusivos;
// FechaHasta cubre el día completo.
type Filter struct {
	NivelInteres string
	FechaDesde   *time.Time
	FechaHasta   *time.Time
}

// Agregados del reporte.

type InterestCount struct {
	NivelInteres string `json:"nivelInteres"`
	Total        int64  `json:"total"`
}

type AdvisorCount struct {
	AsesorID uint   `json:"asesorId"`
	Nombre   string `json:"nombre"`
	Total    int64  `json:"total"`
}
