package registration

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
)

// ======================================================
// ESTADÍSTICAS
// ======================================================

type Resumen struct {
	TotalProspectos int64 `json:"totalProspectos"`
	TotalCitas      int64 `json:"totalCitas"`
	TotalRegistros  int64 `json:"totalRegistros"`
}

type PorNivelInteres struct {
	Prospectos []domain.InterestCount `json:"prospectos"`
	Citas      []domain.InterestCount `json:"citas"`
}

type AdvisorShare struct {
	AsesorID   uint    `json:"asesorId"`
	Nombre     string  `json:"nombre"`
	Total      int64   `json:"total"`
	Porcentaje float64 `json:"porcentaje"`
}

type Statistics struct {
	Resumen         Resumen         `json:"resumen"`
	PorNivelInteres PorNivelInteres `json:"porNivelInteres"`
	PorAsesor       []AdvisorShare  `json:"porAsesor"`
}

type BuildReport struct {
	repo domain.Repository
}

func NewBuildReport(repo domain.Repository) *BuildReport {
	return &BuildReport{repo: repo}
}

func (uc *BuildReport) Statistics(
	ctx context.Context,
	f domain.Filter,
) (*Statistics, error) {

	totalProspectos, err := uc.repo.CountByKind(ctx, domain.KindProspecto, f)
	if err != nil {
		return nil, err
	}

	totalCitas, err := uc.repo.CountByKind(ctx, domain.KindCita, f)
	if err != nil {
		return nil, err
	}

	prospectosPorInteres, err := uc.repo.CountByInterest(ctx, domain.KindProspecto, f)
	if err != nil {
		return nil, err
	}

	citasPorInteres, err := uc.repo.CountByInterest(ctx, domain.KindCita, f)
	if err != nil {
		return nil, err
	}

	porAsesor, err := uc.repo.CountByAdvisor(ctx, f)
	if err != nil {
		return nil, err
	}

	total := totalProspectos + totalCitas

	shares := make([]AdvisorShare, 0, len(porAsesor))
	for _, ac := range porAsesor {
		share := AdvisorShare{
			AsesorID: ac.AsesorID,
			Nombre:   ac.Nombre,
			Total:    ac.Total,
		}
		if total > 0 {
			share.Porcentaje = float64(ac.Total) * 100 / float64(total)
		}
		shares = append(shares, share)
	}

	return &Statistics{
		Resumen: Resumen{
			TotalProspectos: totalProspectos,
			TotalCitas:      totalCitas,
			TotalRegistros:  total,
		},
		PorNivelInteres: PorNivelInteres{
			Prospectos: prospectosPorInteres,
			Citas:      citasPorInteres,
		},
		PorAsesor: shares,
	}, nil
}

// ======================================================
// CSV
// ======================================================

var csvHeaders = []string{
	"Fecha",
	"Hora",
	"Nombre",
	"Celular",
	"Como nos conoce",
	"Tipo",
	"Nivel de Interés",
	"Asesor",
	"Notas",
}

// CSV exporta únicamente prospectos (compatibilidad con la hoja de cálculo
// del equipo de ventas; las citas nunca formaron parte del export).
func (uc *BuildReport) CSV(
	ctx context.Context,
	f domain.Filter,
) ([]byte, error) {

	regs, err := uc.repo.ListByKind(ctx, domain.KindProspecto, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}

	for _, r := range regs {
		row := []string{
			r.FechaRegistro.Format("2/1/2006"),
			r.HoraRegistro,
			r.Nombre,
			r.Celular,
			r.ComoNosConoce,
			r.TipoRegistro,
			r.NivelInteres,
			r.Asesor.Nombre,
			r.Notas,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	return buf.Bytes(), nil
}
