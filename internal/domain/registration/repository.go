package registration

import (
	"context"

	"github.com/SalaVentasCO/reception-intake/internal/models"
)

type Repository interface {
	// -------- Asesores --------
	ListActiveAdvisors(
		ctx context.Context,
	) ([]models.Advisor, error)

	GetActiveAdvisor(
		ctx context.Context,
		id uint,
	) (*models.Advisor, error)

	// -------- Usuarios --------
	GetStaffUser(
		ctx context.Context,
		id uint,
	) (*models.StaffUser, error)

	// -------- Registros (create-only) --------
	CreateRegistration(
		ctx context.Context,
		reg *models.Registration,
	) error

	ListByKind(
		ctx context.Context,
		kind Kind,
		f Filter,
	) ([]models.Registration, error)

	CountByKind(
		ctx context.Context,
		kind Kind,
		f Filter,
	) (int64, error)

	// -------- Agregados --------
	CountByInterest(
		ctx context.Context,
		kind Kind,
		f Filter,
	) ([]InterestCount, error)

	CountByAdvisor(
		ctx context.Context,
		f Filter,
	) ([]AdvisorCount, error)
}
