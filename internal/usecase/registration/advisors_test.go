package registration

import (
	"context"
	"sort"
	"testing"

	"github.com/SalaVentasCO/reception-intake/internal/models"
)

func TestListAdvisorsActiveOnlySorted(t *testing.T) {
	repo := newStubRepo()
	repo.advisors[3] = models.Advisor{ID: 3, Nombre: "Zoe Cabal", Turno: "Tarde", Activo: true}
	repo.advisors[1] = models.Advisor{ID: 1, Nombre: "Andrés Vega", Turno: "Mañana", Activo: true}
	repo.advisors[2] = models.Advisor{ID: 2, Nombre: "Berta Ríos", Turno: "Tarde", Activo: false}

	uc := NewListAdvisors(repo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("want 2 active advisors, got %d", len(out))
	}
	for _, a := range out {
		if a.ID == 2 {
			t.Error("inactive advisor leaked into the listing")
		}
	}

	names := []string{out[0].Nombre, out[1].Nombre}
	if !sort.StringsAreSorted(names) {
		t.Errorf("advisors not sorted by name: %v", names)
	}
}
