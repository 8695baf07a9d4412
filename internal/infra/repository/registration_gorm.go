package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

type RegistrationGormRepository struct {
	db *gorm.DB
}

func NewRegistrationGormRepository(db *gorm.DB) *RegistrationGormRepository {
	return &RegistrationGormRepository{db: db}
}

// --------------------------------------------------
// Asesores
// --------------------------------------------------

func (r *RegistrationGormRepository) ListActiveAdvisors(
	ctx context.Context,
) ([]models.Advisor, error) {

	var advisors []models.Advisor
	if err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("nombre ASC").
		Find(&advisors).Error; err != nil {
		return nil, err
	}
	return advisors, nil
}

func (r *RegistrationGormRepository) GetActiveAdvisor(
	ctx context.Context,
	id uint,
) (*models.Advisor, error) {

	var advisor models.Advisor
	if err := r.db.WithContext(ctx).
		Where("id = ? AND activo = true", id).
		First(&advisor).Error; err != nil {
		return nil, err
	}
	return &advisor, nil
}

// --------------------------------------------------
// Usuarios
// --------------------------------------------------

func (r *RegistrationGormRepository) GetStaffUser(
	ctx context.Context,
	id uint,
) (*models.StaffUser, error) {

	var user models.StaffUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Registros
// --------------------------------------------------

func (r *RegistrationGormRepository) CreateRegistration(
	ctx context.Context,
	reg *models.Registration,
) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrationGormRepository) ListByKind(
	ctx context.Context,
	kind domain.Kind,
	f domain.Filter,
) ([]models.Registration, error) {

	var regs []models.Registration
	if err := r.filtered(ctx, kind, f).
		Preload("Asesor").
		Preload("CreadoPor").
		Order("fecha_registro DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationGormRepository) CountByKind(
	ctx context.Context,
	kind domain.Kind,
	f domain.Filter,
) (int64, error) {

	var count int64
	if err := r.filtered(ctx, kind, f).
		Model(&models.Registration{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Agregados
// --------------------------------------------------

func (r *RegistrationGormRepository) CountByInterest(
	ctx context.Context,
	kind domain.Kind,
	f domain.Filter,
) ([]domain.InterestCount, error) {

	var out []domain.InterestCount
	if err := r.filtered(ctx, kind, f).
		Model(&models.Registration{}).
		Select("nivel_interes, COUNT(*) AS total").
		Group("nivel_interes").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RegistrationGormRepository) CountByAdvisor(
	ctx context.Context,
	f domain.Filter,
) ([]domain.AdvisorCount, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Select("registrations.asesor_id, advisors.nombre, COUNT(*) AS total").
		Joins("JOIN advisors ON advisors.id = registrations.asesor_id").
		Group("registrations.asesor_id, advisors.nombre").
		Order("total DESC")

	q = applyFilter(q, f)

	var out []domain.AdvisorCount
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Filtro común
// --------------------------------------------------

func (r *RegistrationGormRepository) filtered(
	ctx context.Context,
	kind domain.Kind,
	f domain.Filter,
) *gorm.DB {
	q := r.db.WithContext(ctx).
		Where("tipo_registro = ?", string(kind))
	return applyFilter(q, f)
}

func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.NivelInteres != "" {
		q = q.Where("nivel_interes = ?", f.NivelInteres)
	}
	if f.FechaDesde != nil {
		q = q.Where("fecha_registro >= ?", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		// límite superior inclusivo: cubre el día completo
		q = q.Where("fecha_registro < ?", f.FechaHasta.Add(24*time.Hour))
	}
	return q
}

// Compile-time check
var _ domain.Repository = (*RegistrationGormRepository)(nil)
