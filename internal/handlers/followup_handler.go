package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SalaVentasCO/reception-intake/internal/httperr"
	"github.com/SalaVentasCO/reception-intake/internal/httpresp"
	ucRegistration "github.com/SalaVentasCO/reception-intake/internal/usecase/registration"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

type FollowUpHandler struct {
	list *ucRegistration.ListFollowUps
}

func NewFollowUpHandler(list *ucRegistration.ListFollowUps) *FollowUpHandler {
	return &FollowUpHandler{list: list}
}

func (h *FollowUpHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida")
		return
	}

	result, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list follow-ups")
		httperr.Internal(c, "failed_to_list_followups", "Error al obtener los registros de seguimiento")
		return
	}

	httpresp.OK(c, result)
}
