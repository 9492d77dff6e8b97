// internal/handlers/clinic/services_handler.go
package clinic

import (
	"net/http"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/clinic"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"
	service "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/clinic"

	"github.com/gin-gonic/gin"
)

type ServicesHandler struct {
	catalogService *service.CatalogService
}

func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{catalogService: catalogService}
}

// ListServices serves GET /services as a bare JSON array.
func (h *ServicesHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if services == nil {
		services = []clinic.Service{}
	}

	c.JSON(http.StatusOK, services)
}
