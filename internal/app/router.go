// internal/app/router.go
package app

import (
	billingHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/billing"
	clinicHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/clinic"
	healthHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/health"
	patientHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/patient"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	PatientHandler  *patientHandler.PatientHandler
	BillingHandler  *billingHandler.BillingHandler
	ServicesHandler *clinicHandler.ServicesHandler
	HealthHandler   *healthHandler.HealthHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health ====================
	r.GET("/health", h.HealthHandler.Live)
	r.GET("/health/db", h.HealthHandler.Database)

	// ==================== Patients ====================
	patients := r.Group("/patients")
	{
		patients.GET("", h.PatientHandler.ListPatients)
		patients.GET("/counts", h.PatientHandler.GetCounts)
	}

	// ==================== Billing ====================
	r.GET("/billing/settings", h.BillingHandler.GetSettings)

	// ==================== Service catalog ====================
	r.GET("/services", h.ServicesHandler.ListServices)

	// ==================== Fallback ====================
	r.NoRoute(response.NotFound)
}
