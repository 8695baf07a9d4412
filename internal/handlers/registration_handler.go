package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SalaVentasCO/reception-intake/internal/httperr"
	"github.com/SalaVentasCO/reception-intake/internal/httpresp"
	"github.com/SalaVentasCO/reception-intake/internal/metrics"
	"github.com/SalaVentasCO/reception-intake/internal/middleware"
	ucRegistration "github.com/SalaVentasCO/reception-intake/internal/usecase/registration"
	"github.com/SalaVentasCO/reception-intake/internal/validation"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

// ======================================================
// HANDLER
// ======================================================

type RegistrationHandler struct {
	create *ucRegistration.CreateRegistration
}

func NewRegistrationHandler(create *ucRegistration.CreateRegistration) *RegistrationHandler {
	return &RegistrationHandler{create: create}
}

// ======================================================
// CREATE
// ======================================================

func (h *RegistrationHandler) Create(c *gin.Context) {
	creadoPorID := c.MustGet(middleware.ContextUserID).(uint)

	var in validation.RegistroInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos de entrada inválidos")
		return
	}

	payload, err := validation.ValidateRegistro(in)
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			httperr.WriteDetails(c, 400, "validation_error", "Datos de entrada inválidos", ve.Fields)
			return
		}
		httperr.Internal(c, "validation_failed", "Error interno del servidor")
		return
	}

	reg, err := h.create.Execute(c.Request.Context(), ucRegistration.CreateRegistrationInput{
		Payload:     payload,
		CreadoPorID: creadoPorID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "asesor_not_found"):
			httperr.BadRequest(c, "asesor_not_found", "Asesor no encontrado o inactivo")
		case httperr.IsBusiness(err, "usuario_not_found"):
			httperr.BadRequest(c, "usuario_not_found", "Usuario no encontrado")
		case httperr.IsBusiness(err, "duplicate_submission"):
			httperr.Conflict(c, "duplicate_submission", "Este registro ya fue enviado hace un momento")
		default:
			logger.Get().Error().Err(err).Msg("failed to create registration")
			httperr.Internal(c, "failed_to_create_registration", "Error interno del servidor")
		}
		return
	}

	metrics.RegistrationsCreated.WithLabelValues(reg.TipoRegistro).Inc()

	httpresp.Created(c, reg, "Registro creado exitosamente")
}
