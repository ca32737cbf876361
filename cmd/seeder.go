package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yarnuri/stampclock/internal/directory"
	directoryPostgres "github.com/yarnuri/stampclock/internal/directory/postgres"
	"github.com/yarnuri/stampclock/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the bootstrap accounts",
	Long:  `Seed the default admin and employee accounts when the roster is empty. Idempotent.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
		lg := logger.LoggerWrapper()

		db, gormDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		userRepo := directoryPostgres.NewUserRepository(gormDB)
		userService := directory.NewService(userRepo, cfg.Security.BCryptCost, lg)

		if err := userService.EnsureDefaults(); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}

		lg.Info("seeding complete")
	},
}
