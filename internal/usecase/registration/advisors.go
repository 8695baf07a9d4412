package registration

import (
	"context"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/dto"
)

type ListAdvisors struct {
	repo domain.Repository
}

func NewListAdvisors(repo domain.Repository) *ListAdvisors {
	return &ListAdvisors{repo: repo}
}

// Execute devuelve solo asesores activos, ordenados por nombre.
func (uc *ListAdvisors) Execute(ctx context.Context) ([]dto.AdvisorDTO, error) {
	advisors, err := uc.repo.ListActiveAdvisors(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdvisorDTO, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, dto.AdvisorDTO{
			ID:     a.ID,
			Nombre: a.Nombre,
			Turno:  a.Turno,
		})
	}
	return out, nil
}
