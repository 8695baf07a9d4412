package registration

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

// ---------------------------------------------------------------------------
// In-memory stub repository (mirrors the SQL filters of the real repo)
// ---------------------------------------------------------------------------

type stubRepo struct {
	advisors map[uint]models.Advisor
	users    map[uint]models.StaffUser
	regs     []models.Registration

	nextID  uint
	failErr error // if set, every method returns this error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		advisors: make(map[uint]models.Advisor),
		users:    make(map[uint]models.StaffUser),
	}
}

func (r *stubRepo) ListActiveAdvisors(_ context.Context) ([]models.Advisor, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []models.Advisor
	for _, a := range r.advisors {
		if a.Activo {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubRepo) GetActiveAdvisor(_ context.Context, id uint) (*models.Advisor, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	a, ok := r.advisors[id]
	if !ok || !a.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	clone := a
	return &clone, nil
}

func (r *stubRepo) GetStaffUser(_ context.Context, id uint) (*models.StaffUser, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := u
	return &clone, nil
}

func (r *stubRepo) CreateRegistration(_ context.Context, reg *models.Registration) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.nextID++
	reg.ID = r.nextID
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *stubRepo) ListByKind(_ context.Context, kind domain.Kind, f domain.Filter) ([]models.Registration, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []models.Registration
	for _, reg := range r.regs {
		if reg.TipoRegistro != string(kind) || !matches(reg, f) {
			continue
		}
		// espejo de los Preload del repo real
		reg.Asesor = r.advisors[reg.AsesorID]
		reg.CreadoPor = r.users[reg.CreadoPorID]
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaRegistro.After(out[j].FechaRegistro)
	})
	return out, nil
}

func (r *stubRepo) CountByKind(ctx context.Context, kind domain.Kind, f domain.Filter) (int64, error) {
	regs, err := r.ListByKind(ctx, kind, f)
	if err != nil {
		return 0, err
	}
	return int64(len(regs)), nil
}

func (r *stubRepo) CountByInterest(ctx context.Context, kind domain.Kind, f domain.Filter) ([]domain.InterestCount, error) {
	regs, err := r.ListByKind(ctx, kind, f)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, reg := range regs {
		counts[reg.NivelInteres]++
	}
	var out []domain.InterestCount
	for nivel, total := range counts {
		out = append(out, domain.InterestCount{NivelInteres: nivel, Total: total})
	}
	return out, nil
}

func (r *stubRepo) CountByAdvisor(_ context.Context, f domain.Filter) ([]domain.AdvisorCount, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	counts := make(map[uint]int64)
	for _, reg := range r.regs {
		if matches(reg, f) {
			counts[reg.AsesorID]++
		}
	}
	var out []domain.AdvisorCount
	for id, total := range counts {
		out = append(out, domain.AdvisorCount{
			AsesorID: id,
			Nombre:   r.advisors[id].Nombre,
			Total:    total,
		})
	}
	return out, nil
}

func matches(reg models.Registration, f domain.Filter) bool {
	if f.NivelInteres != "" && reg.NivelInteres != f.NivelInteres {
		return false
	}
	if f.FechaDesde != nil && reg.FechaRegistro.Before(*f.FechaDesde) {
		return false
	}
	if f.FechaHasta != nil && !reg.FechaRegistro.Before(f.FechaHasta.Add(24*time.Hour)) {
		return false
	}
	return true
}

var _ domain.Repository = (*stubRepo)(nil)
