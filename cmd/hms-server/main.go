package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neudebri/hms/internal/config"
	"github.com/neudebri/hms/internal/domain/admin"
	"github.com/neudebri/hms/internal/domain/clinical"
	"github.com/neudebri/hms/internal/domain/dashboard"
	"github.com/neudebri/hms/internal/domain/finance"
	"github.com/neudebri/hms/internal/domain/hr"
	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/domain/inbox"
	"github.com/neudebri/hms/internal/domain/medication"
	"github.com/neudebri/hms/internal/domain/scheduling"
	"github.com/neudebri/hms/internal/platform/auth"
	"github.com/neudebri/hms/internal/platform/middleware"
	"github.com/neudebri/hms/internal/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Management API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the hospital management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			noSeed, _ := cmd.Flags().GetBool("no-seed")
			return runServer(!noSeed)
		},
	}
	cmd.Flags().Bool("no-seed", false, "Start with empty stores instead of the demo dataset")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the demo dataset as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stores := newStores()
			if err := seed.Apply(ctx, stores); err != nil {
				return err
			}
			data, err := seed.Dump(ctx, stores)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
}

func newStores() seed.Stores {
	return seed.Stores{
		Users:         identity.NewUserRepoMem(),
		Appointments:  scheduling.NewAppointmentRepoMem(),
		HealthRecords: clinical.NewHealthRecordRepoMem(),
		VitalSigns:    clinical.NewVitalSignsRepoMem(),
		LabResults:    clinical.NewLabResultRepoMem(),
		WoundRecords:  clinical.NewWoundRecordRepoMem(),
		Prescriptions: medication.NewPrescriptionRepoMem(),
		Messages:      inbox.NewMessageRepoMem(),
		Departments:   admin.NewDepartmentRepoMem(),
		Billings:      finance.NewBillingRepoMem(),
		Insurances:    finance.NewInsuranceRepoMem(),
		Employees:     hr.NewEmployeeRepoMem(),
		Attendance:    hr.NewAttendanceRepoMem(),
		Leaves:        hr.NewLeaveRepoMem(),
		Payroll:       hr.NewPayrollRepoMem(),
		Shifts:        hr.NewShiftRepoMem(),
		Certs:         hr.NewCertificationRepoMem(),
		Assets:        hr.NewAssetRepoMem(),
	}
}

func runServer(withSeed bool) error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Stores
	stores := newStores()
	payments := finance.NewPaymentRepoMem()
	reviews := hr.NewReviewRepoMem()

	ctx := context.Background()
	if withSeed {
		if err := seed.Apply(ctx, stores); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().Msg("demo dataset loaded")
	}

	// Services
	tokens := auth.NewTokenIssuer(cfg.TokenSecret, time.Duration(cfg.TokenTTL)*time.Minute)
	identitySvc := identity.NewService(stores.Users)
	schedulingSvc := scheduling.NewService(stores.Appointments, identitySvc)
	clinicalSvc := clinical.NewService(stores.HealthRecords, stores.VitalSigns, stores.LabResults, stores.WoundRecords, identitySvc)
	medicationSvc := medication.NewService(stores.Prescriptions, identitySvc)
	inboxSvc := inbox.NewService(stores.Messages, identitySvc)
	adminSvc := admin.NewService(stores.Departments)
	financeSvc := finance.NewService(stores.Billings, stores.Insurances, payments)
	hrSvc := hr.NewService(stores.Employees, stores.Attendance, stores.Leaves, stores.Payroll, reviews, stores.Shifts, stores.Certs, stores.Assets)
	dashboardSvc := dashboard.NewService(identitySvc, schedulingSvc, medicationSvc, clinicalSvc, inboxSvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API group
	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Viewer resolution: explicit query params win, then a bearer token,
	// then the configured demo identity.
	api.Use(auth.ResolveViewer(tokens, cfg.DefaultUserID, cfg.DefaultRole))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Domain handlers
	identity.NewHandler(identitySvc, tokens).RegisterRoutes(api)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(api)
	clinical.NewHandler(clinicalSvc, cfg.DefaultUserID).RegisterRoutes(api)
	medication.NewHandler(medicationSvc).RegisterRoutes(api)
	inbox.NewHandler(inboxSvc).RegisterRoutes(api)
	admin.NewHandler(adminSvc).RegisterRoutes(api)
	finance.NewHandler(financeSvc, cfg.DefaultUserID).RegisterRoutes(api)
	hr.NewHandler(hrSvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
