package registration

import (
	"context"
	"testing"
	"time"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 10, 0, 0, 0, time.UTC)
}

func seedFollowUps(repo *stubRepo) {
	repo.advisors[1] = models.Advisor{ID: 1, Nombre: "Carlos Gómez", Turno: "Mañana", Activo: true}
	repo.users[10] = models.StaffUser{ID: 10, Nombre: "Recepción"}

	repo.regs = []models.Registration{
		{ID: 1, TipoRegistro: string(domain.KindProspecto), NivelInteres: "Alto", Nombre: "P uno", AsesorID: 1, CreadoPorID: 10, FechaRegistro: day(1)},
		{ID: 2, TipoRegistro: string(domain.KindProspecto), NivelInteres: "Bajo", Nombre: "P dos", AsesorID: 1, CreadoPorID: 10, FechaRegistro: day(3)},
		{ID: 3, TipoRegistro: string(domain.KindProspecto), NivelInteres: "Alto", Nombre: "P tres", AsesorID: 1, CreadoPorID: 10, FechaRegistro: day(5)},
		{ID: 4, TipoRegistro: string(domain.KindCita), NivelInteres: "Alto", Nombre: "C uno", AsesorID: 1, CreadoPorID: 10, FechaRegistro: day(2)},
		{ID: 5, TipoRegistro: string(domain.KindCita), NivelInteres: "Medio", Nombre: "C dos", AsesorID: 1, CreadoPorID: 10, FechaRegistro: day(4)},
	}
}

func TestListFollowUpsInterestFilter(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewListFollowUps(repo)

	out, err := uc.Execute(context.Background(), domain.Filter{NivelInteres: "Alto"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(out.Prospectos) != 2 || len(out.Citas) != 1 {
		t.Fatalf("got %d prospectos, %d citas; want 2, 1", len(out.Prospectos), len(out.Citas))
	}
	if out.Total != 3 {
		t.Errorf("Total = %d, want 3", out.Total)
	}
	for _, r := range append(out.Prospectos, out.Citas...) {
		if r.NivelInteres != "Alto" {
			t.Errorf("record %d has nivel %q, want Alto", r.ID, r.NivelInteres)
		}
	}
}

func TestListFollowUpsOrderedByDateDesc(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewListFollowUps(repo)

	out, err := uc.Execute(context.Background(), domain.Filter{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for i := 1; i < len(out.Prospectos); i++ {
		if out.Prospectos[i].FechaRegistro.After(out.Prospectos[i-1].FechaRegistro) {
			t.Errorf("prospectos not in descending date order at index %d", i)
		}
	}
	for i := 1; i < len(out.Citas); i++ {
		if out.Citas[i].FechaRegistro.After(out.Citas[i-1].FechaRegistro) {
			t.Errorf("citas not in descending date order at index %d", i)
		}
	}
}

func TestListFollowUpsDateRange(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewListFollowUps(repo)

	desde := time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, time.August, 4, 0, 0, 0, 0, time.UTC)

	out, err := uc.Execute(context.Background(), domain.Filter{
		FechaDesde: &desde,
		FechaHasta: &hasta,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// días 2–4 inclusive: un prospecto (día 3) y dos citas (días 2 y 4)
	if out.Total != 3 {
		t.Errorf("Total = %d, want 3", out.Total)
	}
}

func TestListFollowUpsResolvesNames(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewListFollowUps(repo)

	out, err := uc.Execute(context.Background(), domain.Filter{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	r := out.Prospectos[0]
	if r.Asesor.Nombre != "Carlos Gómez" || r.Asesor.Turno != "Mañana" {
		t.Errorf("asesor = %+v, want Carlos Gómez / Mañana", r.Asesor)
	}
	if r.Usuario.Nombre != "Recepción" {
		t.Errorf("usuario = %+v, want Recepción", r.Usuario)
	}
}
