package registration

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/models"
)

func TestStatisticsTotals(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewBuildReport(repo)

	stats, err := uc.Statistics(context.Background(), domain.Filter{})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	r := stats.Resumen
	if r.TotalRegistros != r.TotalProspectos+r.TotalCitas {
		t.Errorf("totalRegistros = %d, want %d", r.TotalRegistros, r.TotalProspectos+r.TotalCitas)
	}
	if r.TotalProspectos != 3 || r.TotalCitas != 2 {
		t.Errorf("resumen = %+v, want 3 prospectos / 2 citas", r)
	}
}

func TestStatisticsAdvisorShare(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	repo.advisors[2] = models.Advisor{ID: 2, Nombre: "Laura Pérez", Turno: "Tarde", Activo: true}
	repo.regs = append(repo.regs, models.Registration{
		ID: 6, TipoRegistro: string(domain.KindProspecto), NivelInteres: "Medio",
		Nombre: "P cuatro", AsesorID: 2, CreadoPorID: 10, FechaRegistro: day(6),
	})

	uc := NewBuildReport(repo)

	stats, err := uc.Statistics(context.Background(), domain.Filter{})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	var sum float64
	for _, s := range stats.PorAsesor {
		if s.Nombre == "" {
			t.Errorf("advisor %d has no resolved name", s.AsesorID)
		}
		sum += s.Porcentaje
	}
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("advisor shares sum to %.2f, want 100", sum)
	}
}

func TestCSVRowCountMatchesProspects(t *testing.T) {
	repo := newStubRepo()
	seedFollowUps(repo)
	uc := NewBuildReport(repo)

	filter := domain.Filter{NivelInteres: "Alto"}

	doc, err := uc.CSV(context.Background(), filter)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	prospectos, _ := repo.CountByKind(context.Background(), domain.KindProspecto, filter)
	if int64(len(records)-1) != prospectos {
		t.Errorf("csv has %d data rows, want %d (citas must be excluded)", len(records)-1, prospectos)
	}
	if len(records[0]) != 9 {
		t.Errorf("header has %d columns, want 9", len(records[0]))
	}
}

func TestCSVEscapesEmbeddedDelimiters(t *testing.T) {
	repo := newStubRepo()
	repo.advisors[1] = models.Advisor{ID: 1, Nombre: "Carlos Gómez", Activo: true}
	repo.users[10] = models.StaffUser{ID: 10, Nombre: "Recepción"}
	repo.regs = []models.Registration{{
		ID:            1,
		TipoRegistro:  string(domain.KindProspecto),
		NivelInteres:  "Alto",
		Nombre:        `Pérez, "El Tigre"`,
		Celular:       "+573001234567",
		ComoNosConoce: "Otro",
		Notas:         "llamar lunes, antes de las 9\nurgente",
		AsesorID:      1,
		CreadoPorID:   10,
		FechaRegistro: day(1),
		HoraRegistro:  "10:00",
	}}

	uc := NewBuildReport(repo)

	doc, err := uc.CSV(context.Background(), domain.Filter{})
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want header + 1 row, got %d records", len(records))
	}

	row := records[1]
	if row[2] != `Pérez, "El Tigre"` {
		t.Errorf("nombre round-trip = %q", row[2])
	}
	if row[8] != "llamar lunes, antes de las 9\nurgente" {
		t.Errorf("notas round-trip = %q", row[8])
	}
}
