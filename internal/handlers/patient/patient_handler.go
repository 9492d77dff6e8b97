// internal/handlers/patient/patient_handler.go
package patient

import (
	"net/http"
	"strconv"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/response"
	service "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/patient"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.Service
}

func NewPatientHandler(patientService *service.Service) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// ListPatients serves GET /patients. Selectors: ?today=true, ?date=YYYY-MM-DD,
// ?search=term, or none for the full listing; ?limit bounds the response.
// The body is a bare JSON array — the dashboard consumes it directly.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	q := service.Query{
		Today:  c.Query("today") == "true",
		Date:   c.Query("date"),
		Search: c.Query("search"),
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "limit must be an integer")
			return
		}
		q.Limit = n
	}

	records, err := h.patientService.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetCounts serves GET /patients/counts: {"today":n,"date":n,"all":n},
// with ?date defaulting to today.
func (h *PatientHandler) GetCounts(c *gin.Context) {
	counts, err := h.patientService.Counts(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
