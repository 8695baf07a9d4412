package registration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SalaVentasCO/reception-intake/internal/audit"
	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/httperr"
	"github.com/SalaVentasCO/reception-intake/internal/models"
	"github.com/SalaVentasCO/reception-intake/internal/timezone"
	"github.com/SalaVentasCO/reception-intake/internal/validation"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

// ======================================================
// INPUT
// ======================================================

type CreateRegistrationInput struct {
	Payload *validation.Payload

	// Identidad de sesión de quien registra; nunca viene del cliente.
	CreadoPorID uint
}

// ======================================================
// USE CASE
// ======================================================

// SubmissionGuard detecta reenvíos recientes del mismo celular+tipo.
// dedup.Guard lo implementa sobre Redis; un guard nil desactiva el chequeo.
type SubmissionGuard interface {
	IsDuplicate(ctx context.Context, celular, tipo string) (bool, error)
	Mark(ctx context.Context, celular, tipo string) error
}

// EventSink recibe eventos de auditoría sin bloquear la petición.
// audit.Dispatcher lo implementa con una cola en segundo plano.
type EventSink interface {
	Dispatch(ev audit.Event)
}

type CreateRegistration struct {
	repo  domain.Repository
	guard SubmissionGuard
	audit EventSink
}

func NewCreateRegistration(
	repo domain.Repository,
	guard SubmissionGuard,
	sink EventSink,
) *CreateRegistration {
	return &CreateRegistration{
		repo:  repo,
		guard: guard,
		audit: sink,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRegistration) Execute(
	ctx context.Context,
	in CreateRegistrationInput,
) (*models.Registration, error) {

	p := in.Payload

	// El asesor pudo desactivarse entre el listado y el envío: se
	// reverifica antes de escribir.
	advisor, err := uc.repo.GetActiveAdvisor(ctx, p.AsesorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("asesor_not_found")
		}
		return nil, err
	}

	user, err := uc.repo.GetStaffUser(ctx, in.CreadoPorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("usuario_not_found")
		}
		return nil, err
	}

	// Guarda anti doble-envío; best-effort, nunca tumba el registro.
	if uc.guard != nil {
		dup, gerr := uc.guard.IsDuplicate(ctx, p.Celular, string(p.Kind))
		if gerr != nil {
			logger.Get().Warn().Err(gerr).Msg("dedup guard unavailable, skipping")
		} else if dup {
			uc.dispatch(audit.Event{
				UserID: &in.CreadoPorID,
				Action: "registro_conflict",
				Entity: "registro",
				Metadata: map[string]any{
					"celular": p.Celular,
					"tipo":    string(p.Kind),
				},
			})
			return nil, httperr.ErrBusiness("duplicate_submission")
		}
	}

	// Sello del servidor: la hora del cliente no se confía nunca.
	now := timezone.Now()

	reg := &models.Registration{
		PublicID: uuid.NewString(),

		Nombre:        p.Nombre,
		Celular:       p.Celular,
		ComoNosConoce: p.ComoNosConoce,

		TipoRegistro: string(p.Kind),
		NivelInteres: p.NivelInteres,
		Notas:        p.Notas,

		AsesorID:    advisor.ID,
		CreadoPorID: user.ID,

		FechaRegistro: now,
		HoraRegistro:  now.Format("15:04"),

		CanalPreferido:   p.CanalPreferido,
		EmailContacto:    p.EmailContacto,
		SolicitoInfo:     p.SolicitoInfo,
		SatisfaccionInfo: p.SatisfaccionInfo,
		ActitudCliente:   p.ActitudCliente,
	}

	if err := uc.repo.CreateRegistration(ctx, reg); err != nil {
		return nil, err
	}

	// Respuesta con las referencias ya resueltas.
	reg.Asesor = *advisor
	reg.CreadoPor = *user

	if uc.guard != nil {
		if gerr := uc.guard.Mark(ctx, p.Celular, string(p.Kind)); gerr != nil {
			logger.Get().Warn().Err(gerr).Msg("dedup mark failed")
		}
	}

	uc.dispatch(audit.Event{
		UserID:   &in.CreadoPorID,
		Action:   "registro_created",
		Entity:   "registro",
		EntityID: &reg.ID,
		Metadata: map[string]any{
			"tipo":  reg.TipoRegistro,
			"nivel": reg.NivelInteres,
		},
	})

	return reg, nil
}

func (uc *CreateRegistration) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
