package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
	"github.com/SalaVentasCO/reception-intake/internal/timezone"
)

// parseFilter lee nivelInteres/fechaDesde/fechaHasta de la query string.
// Las fechas se interpretan en la zona horaria de la sala de ventas.
func parseFilter(c *gin.Context) (domain.Filter, error) {
	f := domain.Filter{
		NivelInteres: c.Query("nivelInteres"),
	}

	loc := timezone.Location(timezone.DefaultTimezone)

	if s := c.Query("fechaDesde"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return f, err
		}
		f.FechaDesde = &t
	}

	if s := c.Query("fechaHasta"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return f, err
		}
		f.FechaHasta = &t
	}

	return f, nil
}
