package registration

// ===============================
// Registration Kind
// ===============================

type Kind string

const (
	// KindCita: cliente con contacto previo que agenda una visita.
	KindCita Kind = "Cita"
	// KindProspecto: cliente nuevo que solicita informes.
	KindProspecto Kind = "Solicita informes"
)

func ValidKind(k string) bool {
	switch Kind(k) {
	case KindCita, KindProspecto:
		return true
	}
	return false
}

// ===============================
// Nivel de interés
// ===============================

type InterestLevel string

const (
	InterestBajo  InterestLevel = "Bajo"
	InterestMedio InterestLevel = "Medio"
	InterestAlto  InterestLevel = "Alto"
)

func ValidInterestLevel(n string) bool {
	switch InterestLevel(n) {
	case InterestBajo, InterestMedio, InterestAlto:
		return true
	}
	return false
}

// ===============================
// Cómo nos conoce
// ===============================

var DiscoveryChannels = []string{
	"Redes Sociales",
	"Recomendación",
	"Me queda de paso",
	"Publicidad impresa",
	"Otro",
}

func ValidDiscoveryChannel(c string) bool {
	for _, v := range DiscoveryChannels {
		if v == c {
			return true
		}
	}
	return false
}
