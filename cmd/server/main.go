package main

import (
	"os"
	"os/signal"
	"syscall"

	"easymed-backend/internal/ai"
	"easymed-backend/internal/config"
	"easymed-backend/internal/database"
	"easymed-backend/internal/handler"
	"easymed-backend/internal/middleware"
	"easymed-backend/internal/repository"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Server.GinMode == gin.ReleaseMode {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Msg("Configuration loaded")

	// 3. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 4. Initialize database connection (runs schema migration)
	db := database.Connect(cfg)

	// 5. Initialize stores: gorm for the API, seeded memory for /api/demo
	store := repository.NewGormStore(db)
	demoStore := repository.NewMemoryStore()
	if err := repository.SeedDemoData(demoStore); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	// 6. Initialize the symptom-analysis adapter. Missing provider keys
	// are fine: the adapter serves its fallback responses.
	analyzer := ai.NewClient(cfg.AI)
	if cfg.AI.GeminiAPIKey == "" && cfg.AI.OpenAIAPIKey == "" {
		log.Warn().Msg("No language-model provider keys configured, symptom analysis will serve fallback responses")
	}

	// 7. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "easymed-backend",
		})
	})

	// 8. Register handlers for both trees
	handler.RegisterRoutes(r, buildHandlers(store, analyzer))
	handler.RegisterDemoRoutes(r, buildHandlers(demoStore, analyzer))

	// 9. Start server with graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server exited")
}

// buildHandlers wires the full handler set over one store. Called once
// per tree so the authenticated API and the demo tree share code but
// not data.
func buildHandlers(store repository.Store, analyzer ai.Analyzer) *handler.Handlers {
	return &handler.Handlers{
		Auth:         handler.NewAuthHandler(service.NewAuthService(store)),
		Doctor:       handler.NewDoctorHandler(service.NewDoctorService(store)),
		Patient:      handler.NewPatientHandler(service.NewPatientService(store)),
		Appointment:  handler.NewAppointmentHandler(service.NewAppointmentService(store)),
		Record:       handler.NewRecordHandler(service.NewRecordService(store)),
		Prescription: handler.NewPrescriptionHandler(service.NewPrescriptionService(store)),
		Lab:          handler.NewLabHandler(service.NewLabService(store)),
		Triage:       handler.NewTriageHandler(service.NewTriageService(store, analyzer)),
		Claim:        handler.NewClaimHandler(service.NewClaimService(store)),
		Dashboard:    handler.NewDashboardHandler(service.NewDashboardService(store)),
		Voice:        handler.NewVoiceHandler(),
	}
}
