package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/clinicdesk/clinic-api/internal/handler"
	appointmentHandler "github.com/clinicdesk/clinic-api/internal/handler/appointment"
	patientHandler "github.com/clinicdesk/clinic-api/internal/handler/patient"
	reportHandler "github.com/clinicdesk/clinic-api/internal/handler/report"
	treatmentHandler "github.com/clinicdesk/clinic-api/internal/handler/treatment"
	"github.com/clinicdesk/clinic-api/internal/metrics"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/internal/router"
	appointmentService "github.com/clinicdesk/clinic-api/internal/service/appointment"
	patientService "github.com/clinicdesk/clinic-api/internal/service/patient"
	treatmentService "github.com/clinicdesk/clinic-api/internal/service/treatment"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize services
	registry := patientService.NewService()
	book := appointmentService.NewService(cfg.Availability)
	ledger := treatmentService.NewService()

	m := metrics.New(cfg.Metrics.Prefix)

	// The reminder listener is the desk's stand-in for a front-desk
	// popup: every appointment announcement lands in the log.
	book.Subscribe("appointment-reminder", func(message string) {
		log.Info().Str("reminder", message).Msg("appointment reminder")
	})
	book.Subscribe("notification-metrics", func(string) {
		m.NotificationsDelivered.Inc()
	})

	if cfg.DemoSeed {
		seedDemoData(registry, book, ledger)
	}

	// Initialize handlers
	healthHandler := handler.NewHandler(m)
	patientH := patientHandler.NewHandler(registry, book, ledger, m)
	appointmentH := appointmentHandler.NewHandler(book, registry, m)
	treatmentH := treatmentHandler.NewHandler(ledger)
	reportH := reportHandler.NewHandler(registry, book, ledger)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	// Setup router
	r := router.NewRouter(
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RPS),
			RateBurst: cfg.RateLimit.Burst,
			CORS:      corsConfig,
			Timeout:   time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		},
		m,
		healthHandler,
		patientH,
		appointmentH,
		treatmentH,
		reportH,
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
