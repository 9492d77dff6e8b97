// internal/handlers/billing/billing_handler.go
package billing

import (
	"net/http"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"
	service "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/billing"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingService *service.BillingService
}

func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GetSettings serves GET /billing/settings.
func (h *BillingHandler) GetSettings(c *gin.Context) {
	settings, err := h.billingService.Settings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
