package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalaVentasCO/reception-intake/internal/httperr"
	"github.com/SalaVentasCO/reception-intake/internal/httpresp"
	ucRegistration "github.com/SalaVentasCO/reception-intake/internal/usecase/registration"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

type ReportHandler struct {
	report *ucRegistration.BuildReport
}

func NewReportHandler(report *ucRegistration.BuildReport) *ReportHandler {
	return &ReportHandler{report: report}
}

func (h *ReportHandler) Get(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida")
		return
	}

	if c.DefaultQuery("formato", "json") == "csv" {
		doc, err := h.report.CSV(c.Request.Context(), filter)
		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to build csv report")
			httperr.Internal(c, "failed_to_build_report", "Error al generar el reporte")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="reporte-registros.csv"`)
		c.Data(http.StatusOK, "text/csv", doc)
		return
	}

	stats, err := h.report.Statistics(c.Request.Context(), filter)
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to build report")
		httperr.Internal(c, "failed_to_build_report", "Error al generar el reporte")
		return
	}

	httpresp.OK(c, stats)
}
