package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/examscheduler/internal/app/controllers"
	appMigrations "github.com/yigit/examscheduler/internal/app/migrations"
	"github.com/yigit/examscheduler/internal/app/models/dto"
	appRepos "github.com/yigit/examscheduler/internal/app/repositories"
	appRoutes "github.com/yigit/examscheduler/internal/app/routes"
	appServices "github.com/yigit/examscheduler/internal/app/services"
	"github.com/yigit/examscheduler/internal/config"
	"github.com/yigit/examscheduler/internal/db"
	appMiddleware "github.com/yigit/examscheduler/internal/middleware"
	"github.com/yigit/examscheduler/internal/pkg/logger"
	"github.com/yigit/examscheduler/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database       db.Database
	Repos          *appRepos.Repositories
	ExamService    appServices.ExamService
	ExamController *appControllers.ExamController
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads the env file and configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath, envFile string) (*config.Config, zerolog.Logger, error) {
	loaded, err := config.LoadEnvFile(envFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load env file")
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	})

	lgr := logger.Get()
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Bool("envFileLoaded", loaded).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured database and applies pending migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(context.Background(), database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// RunMigrations applies the embedded migrations for the database's dialect.
func RunMigrations(ctx context.Context, database db.Database, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database).Migrate(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database db.Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}

	repos, err := appRepos.NewRepositories(database)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize repositories")
		return nil, err
	}
	deps.Repos = repos

	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), deps.ExamService, lgr); err != nil {
			// Seeding is best effort
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.ExamController)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewStatusResponse("success", "pong"))
	})

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := deps.Database.Ping(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Health check failed")
			resp := dto.NewStatusResponse("unavailable", "database unreachable")
			resp.Database = string(deps.Database.Dialect())
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp := dto.NewStatusResponse("ok", "service healthy")
		resp.Database = string(deps.Database.Dialect())
		c.JSON(http.StatusOK, resp)
	})

	return router
}
