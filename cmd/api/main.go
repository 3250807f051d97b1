package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/examscheduler/internal/bootstrap"
	"github.com/yigit/examscheduler/internal/db"
	"github.com/yigit/examscheduler/internal/pkg/logger"
	"github.com/yigit/examscheduler/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	configPath string
	envFile    string
)

// @title Exam Scheduler API
// @version 1.0
// @description REST API for creating, looking up, searching, updating and deleting exam timetable entries.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	rootCmd := &cobra.Command{
		Use:   "examscheduler",
		Short: "Exam Scheduler - exam timetable REST service",
		Long:  `Exam Scheduler stores exam timetable entries in PostgreSQL or SQLite and exposes them over a REST API.`,
		RunE:  runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a dotenv file loaded before the configuration")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  runMigrate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("examscheduler %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(server.Options{
		ConfigPath: configPath,
		EnvFile:    envFile,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		return err
	}

	logger.Info().Str("version", version).Msg("Application finished gracefully.")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, envFile)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return err
	}
	defer database.Close()

	return bootstrap.RunMigrations(context.Background(), database, lgr)
}
