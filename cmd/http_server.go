package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/analytics"
	analyticsRepo "github.com/frahmantamala/teampulse/internal/analytics/postgres"
	"github.com/frahmantamala/teampulse/internal/auth"
	authRepo "github.com/frahmantamala/teampulse/internal/auth/postgres"
	"github.com/frahmantamala/teampulse/internal/checkin"
	checkinRepo "github.com/frahmantamala/teampulse/internal/checkin/postgres"
	"github.com/frahmantamala/teampulse/internal/project"
	projectRepo "github.com/frahmantamala/teampulse/internal/project/postgres"
	"github.com/frahmantamala/teampulse/internal/team"
	teamRepo "github.com/frahmantamala/teampulse/internal/team/postgres"
	"github.com/frahmantamala/teampulse/internal/transport/rest"
	"github.com/frahmantamala/teampulse/internal/user"
	userRepo "github.com/frahmantamala/teampulse/internal/user/postgres"
	"github.com/frahmantamala/teampulse/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	registerRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func registerRoutes(deps *Dependencies) {
	log := deps.Logger

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.JWTSecret,
		deps.Config.Security.AccessTokenDuration,
	)

	authService := auth.NewService(authRepo.NewRepository(deps.GormDB), tokenGen, deps.Config.Security.BCryptCost, log)
	userService := user.NewService(userRepo.NewUserRepository(deps.GormDB), log)
	teamService := team.NewService(teamRepo.NewTeamRepository(deps.GormDB), log)
	projectService := project.NewService(projectRepo.NewProjectRepository(deps.GormDB), log)
	checkinService := checkin.NewService(checkinRepo.NewCheckInRepository(deps.GormDB), log)
	analyticsService := analytics.NewService(analyticsRepo.NewAnalyticsRepository(deps.GormDB), log)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		auth.NewHandler(authService),
		user.NewHandler(userService),
		team.NewHandler(teamService),
		project.NewHandler(projectService),
		checkin.NewHandler(checkinService),
		analytics.NewHandler(analyticsService),
		log,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
