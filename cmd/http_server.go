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

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/auth"
	"github.com/yarnuri/stampclock/internal/directory"
	directoryPostgres "github.com/yarnuri/stampclock/internal/directory/postgres"
	"github.com/yarnuri/stampclock/internal/stamp"
	stampPostgres "github.com/yarnuri/stampclock/internal/stamp/postgres"
	"github.com/yarnuri/stampclock/internal/transport/rest"
	"github.com/yarnuri/stampclock/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle stamping and roster requests`,
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

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
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

func setupRoutes(deps *Dependencies) error {
	userRepo := directoryPostgres.NewUserRepository(deps.GormDB)
	stampRepo := stampPostgres.NewStampRepository(deps.GormDB)

	userService := directory.NewService(userRepo, deps.Config.Security.BCryptCost, deps.Logger)
	stampService := stamp.NewService(stampRepo, deps.Logger)

	tokenGen := auth.NewJWTTokenGenerator(deps.Config.Security.JWTSecret, deps.Config.Security.AccessTokenDuration)
	authService := auth.NewService(userRepo, tokenGen, deps.Logger)

	// bootstrap seeding is idempotent and runs on every startup
	if err := userService.EnsureDefaults(); err != nil {
		return fmt.Errorf("bootstrap seeding failed: %w", err)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		auth.NewHandler(authService),
		directory.NewHandler(userService),
		stamp.NewHandler(stampService),
		deps.Logger,
	)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pooled connection through the pgx stdlib driver and hands
// the same pool to gorm, so repositories and the health check share it.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: dbConn.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	return dbConn, gormDB, nil
}
