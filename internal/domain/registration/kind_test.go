package registration

import "testing"

func TestValidKind(t *testing.T) {
	for _, ok := range []string{"Cita", "Solicita informes"} {
		if !ValidKind(ok) {
			t.Errorf("ValidKind(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "cita", "Visita", "Prospecto"} {
		if ValidKind(bad) {
			t.Errorf("ValidKind(%q) = true", bad)
		}
	}
}

func TestValidInterestLevel(t *testing.T) {
	for _, ok := range []string{"Bajo", "Medio", "Alto"} {
		if !ValidInterestLevel(ok) {
			t.Errorf("ValidInterestLevel(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "bajo", "Muy alto"} {
		if ValidInterestLevel(bad) {
			t.Errorf("ValidInterestLevel(%q) = true", bad)
		}
	}
}

func TestValidDiscoveryChannel(t *testing.T) {
	if !ValidDiscoveryChannel("Me queda de paso") {
		t.Error("known channel rejected")
	}
	if ValidDiscoveryChannel("Televisión") {
		t.Error("unknown channel accepted")
	}
}
