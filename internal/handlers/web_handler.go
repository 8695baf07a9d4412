package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebHandler sirve las páginas HTML de la aplicación de recepción. La
// lógica vive en los endpoints JSON; estas vistas solo orquestan el
// formulario y las consultas vía fetch.
type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Iniciar sesión",
	})
}

func (h *WebHandler) IntakePage(c *gin.Context) {
	c.HTML(http.StatusOK, "recepcion.html", gin.H{
		"Title": "Registro de recepción",
	})
}

func (h *WebHandler) FollowUpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "seguimiento.html", gin.H{
		"Title": "Seguimiento",
	})
}

func (h *WebHandler) ReportPage(c *gin.Context) {
	c.HTML(http.StatusOK, "reportes.html", gin.H{
		"Title": "Reportes",
	})
}
