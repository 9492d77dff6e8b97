// internal/handlers/health/health_handler.go
package health

import (
	"net/http"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"
	service "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/patient"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	patientService *service.Service
}

func NewHealthHandler(patientService *service.Service) *HealthHandler {
	return &HealthHandler{patientService: patientService}
}

// Live serves GET /health.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Database serves GET /health/db with a round trip through the registry.
func (h *HealthHandler) Database(c *gin.Context) {
	total, err := h.patientService.Total(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "patients": total})
}
