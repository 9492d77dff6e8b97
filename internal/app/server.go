// internal/app/server.go
package app

import (
	"context"
	"net/http"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/config"
	billingHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/billing"
	clinicHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/clinic"
	healthHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/health"
	patientHandler "github.com/25ayu25/BGC-MedicalManagementSystem/internal/handlers/patient"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/middleware"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/repository/postgres"
	billingUsecase "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/billing"
	clinicUsecase "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/clinic"
	patientUsecase "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/patient"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Server owns the HTTP side of the read API. The connection pool is
// constructed by the caller and injected here; Shutdown stops the
// listener and then closes the pool.
type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
	http   *http.Server
}

func NewServer(cfg config.AppConfig, logger *zap.Logger, pool *pgxpool.Pool) *Server {
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine, logger: logger, pool: pool}
}

func (s *Server) Start() error {
	// ----- Repositories -----
	patientRepo := postgres.NewPatientRepository(s.pool)
	activityRepo := postgres.NewActivityRepository(s.pool)
	billingRepo := postgres.NewBillingSettingsRepository(s.pool)
	serviceRepo := postgres.NewServiceRepository(s.pool)

	// ----- Services -----
	patientService := patientUsecase.NewPatientService(patientRepo, activityRepo, s.cfg.QueryTimeout, s.logger)
	billingService := billingUsecase.NewBillingService(billingRepo, s.cfg.QueryTimeout, s.logger)
	catalogService := clinicUsecase.NewCatalogService(serviceRepo, s.cfg.QueryTimeout, s.logger)

	// ----- Handlers -----
	patientHandlerInst := patientHandler.NewPatientHandler(patientService)
	billingHandlerInst := billingHandler.NewBillingHandler(billingService)
	servicesHandlerInst := clinicHandler.NewServicesHandler(catalogService)
	healthHandlerInst := healthHandler.NewHealthHandler(patientService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		PatientHandler:  patientHandlerInst,
		BillingHandler:  billingHandlerInst,
		ServicesHandler: servicesHandlerInst,
		HealthHandler:   healthHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	s.http = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	s.pool.Close()
	return err
}
