package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SalaVentasCO/reception-intake/internal/httperr"
	"github.com/SalaVentasCO/reception-intake/internal/httpresp"
	ucRegistration "github.com/SalaVentasCO/reception-intake/internal/usecase/registration"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

type AdvisorHandler struct {
	listAdvisors *ucRegistration.ListAdvisors
}

func NewAdvisorHandler(listAdvisors *ucRegistration.ListAdvisors) *AdvisorHandler {
	return &AdvisorHandler{listAdvisors: listAdvisors}
}

// List devuelve los asesores activos para poblar el selector del
// formulario. Un fallo de la base se reporta de inmediato, sin reintentos.
func (h *AdvisorHandler) List(c *gin.Context) {
	advisors, err := h.listAdvisors.Execute(c.Request.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list advisors")
		httperr.Internal(c, "failed_to_list_advisors", "Error al obtener la lista de asesores")
		return
	}

	httpresp.OK(c, advisors)
}
