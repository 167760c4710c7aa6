package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/config"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/analysis"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/billing"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/catalog"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/clinic"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/consultation"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/patient"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/staff"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/visit"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/auth"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/db"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/middleware"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brosmed-server",
		Short: "Clinic management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s).\n", count)
			return nil
		},
	}
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a superadmin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, _ := cmd.Flags().GetString("phone")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")
			if phone == "" || password == "" {
				return fmt.Errorf("--phone and --password are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
			svc := staff.NewService(staff.NewRepo(pool), issuer)

			u := &staff.User{PhoneNumber: phone, Name: name, Role: workflow.RoleSuperadmin}
			if err := svc.CreateUser(ctx, u, password); err != nil {
				return err
			}
			fmt.Printf("Superadmin %s created: %s\n", phone, u.ID)
			return nil
		},
	}
	cmd.Flags().String("phone", "", "Login phone number")
	cmd.Flags().String("password", "", "Initial password")
	cmd.Flags().String("name", "admin", "Display name")
	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	txRunner := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.WithTx(ctx, pool, fn)
	}

	// Repositories and services
	staffRepo := staff.NewRepo(pool)
	staffSvc := staff.NewService(staffRepo, issuer)

	catalogRepo := catalog.NewRepo(pool)
	catalogSvc := catalog.NewService(catalogRepo)

	visitRepo := visit.NewRepo(pool)
	visitSvc := visit.NewService(visitRepo)

	patientRepo := patient.NewRepo(pool)
	patientSvc := patient.NewService(patientRepo, visitSvc, catalogRepo, staffRepo, txRunner)

	analysisRepo := analysis.NewRepo(pool)
	analysisSvc := analysis.NewService(analysisRepo, catalogRepo, patientSvc)

	consultationRepo := consultation.NewRepo(pool)
	consultationSvc := consultation.NewService(consultationRepo, patientSvc, txRunner)

	billingRepo := billing.NewRepo(pool)
	billingSvc := billing.NewService(billingRepo, patientRepo, analysisRepo)
	patientSvc.SetPaymentRecorder(billingSvc)

	clinicRepo := clinic.NewRepo(pool)
	clinicSvc := clinic.NewService(clinicRepo)

	// HTTP server
	e := echo.New()
	e.HideBanner = true

	// Clients call both /path and /path/.
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	staffHandler := staff.NewHandler(staffSvc)
	staffHandler.RegisterPublicRoutes(e)

	api := e.Group("/api/v1", auth.Middleware(issuer))
	staffHandler.RegisterRoutes(api)
	catalog.NewHandler(catalogSvc).RegisterRoutes(api)
	visit.NewHandler(visitSvc).RegisterRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	analysis.NewHandler(analysisSvc).RegisterRoutes(api)
	consultation.NewHandler(consultationSvc).RegisterRoutes(api)
	billing.NewHandler(billingSvc).RegisterRoutes(api)
	clinic.NewHandler(clinicSvc).RegisterRoutes(api)

	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
