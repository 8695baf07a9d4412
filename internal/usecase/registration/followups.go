package registration

import (
	"context"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/dto"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

type FollowUpList struct {
	Prospectos []dto.FollowUpDTO `json:"prospectos"`
	Citas      []dto.FollowUpDTO `json:"citas"`
	Total      int               `json:"total"`
}

type ListFollowUps struct {
	repo domain.Repository
}

func NewListFollowUps(repo domain.Repository) *ListFollowUps {
	return &ListFollowUps{repo: repo}
}

// Execute consulta ambos tipos con el mismo predicado, cada lista ordenada
// por fecha de registro descendente.
func (uc *ListFollowUps) Execute(
	ctx context.Context,
	f domain.Filter,
) (*FollowUpList, error) {

	prospectos, err := uc.repo.ListByKind(ctx, domain.KindProspecto, f)
	if err != nil {
		return nil, err
	}

	citas, err := uc.repo.ListByKind(ctx, domain.KindCita, f)
	if err != nil {
		return nil, err
	}

	return &FollowUpList{
		Prospectos: toFollowUpDTOs(prospectos),
		Citas:      toFollowUpDTOs(citas),
		Total:      len(prospectos) + len(citas),
	}, nil
}

func toFollowUpDTOs(regs []models.Registration) []dto.FollowUpDTO {
	out := make([]dto.FollowUpDTO, 0, len(regs))
	for _, r := range regs {
		out = append(out, dto.FollowUpDTO{
			ID:            r.ID,
			PublicID:      r.PublicID,
			Nombre:        r.Nombre,
			Celular:       r.Celular,
			ComoNosConoce: r.ComoNosConoce,
			TipoRegistro:  r.TipoRegistro,
			NivelInteres:  r.NivelInteres,
			Notas:         r.Notas,
			FechaRegistro: r.FechaRegistro,
			HoraRegistro:  r.HoraRegistro,
			Asesor: dto.AsesorRefDTO{
				Nombre: r.Asesor.Nombre,
				Turno:  r.Asesor.Turno,
			},
			Usuario: dto.UsuarioRefDTO{
				Nombre: r.CreadoPor.Nombre,
			},
		})
	}
	return out
}
