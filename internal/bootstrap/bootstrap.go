package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mchellal/studia/internal/app/controllers"
	"github.com/mchellal/studia/internal/app/migrations"
	"github.com/mchellal/studia/internal/app/repositories"
	"github.com/mchellal/studia/internal/app/routes"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/config"
	"github.com/mchellal/studia/internal/db"
	"github.com/mchellal/studia/internal/middleware"
	"github.com/mchellal/studia/internal/pkg/auth"
	"github.com/mchellal/studia/internal/pkg/logger"
	"github.com/mchellal/studia/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Config       *config.Config
	DB           *db.PostgresDB
	Repositories *repositories.Repositories
	TokenService *auth.TokenService

	AuthService       *services.AuthService
	StudentService    *services.StudentService
	AdminService      *services.AdminService
	DepartmentService *services.DepartmentService
	FormationService  *services.FormationService
	EnrollmentService *services.EnrollmentService
}

// LoadConfigAndSetupLogger loads the configuration and configures logging
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
		Output: os.Stdout,
	})

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories and services together
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	repos := repositories.NewRepositories(database.Pool)
	log := logger.Get()

	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps := &Dependencies{
		Config:       cfg,
		DB:           database,
		Repositories: repos,
		TokenService: tokenService,

		AuthService: services.NewAuthService(
			repos.StudentRepository, repos.AdminRepository, tokenService, log),
		StudentService: services.NewStudentService(
			repos.StudentRepository, repos.DepartmentRepository, repos.EnrollmentRepository, log),
		AdminService: services.NewAdminService(repos.AdminRepository, log),
		DepartmentService: services.NewDepartmentService(
			repos.DepartmentRepository),
		FormationService: services.NewFormationService(
			repos.FormationRepository, repos.DepartmentRepository),
		EnrollmentService: services.NewEnrollmentService(
			repos.EnrollmentRepository, repos.FormationRepository, log),
	}

	if err := seed.Run(context.Background(), deps.AdminService, cfg, log); err != nil {
		return nil, fmt.Errorf("failed to seed admin: %w", err)
	}

	return deps, nil
}

// SetupRouter builds the gin engine with all routes registered
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	authMW := middleware.NewAuthMiddleware(deps.AuthService)

	ctrl := &routes.Controllers{
		Auth:       controllers.NewAuthController(deps.AuthService),
		Student:    controllers.NewStudentController(deps.StudentService),
		Admin:      controllers.NewAdminController(deps.AdminService, deps.StudentService),
		Department: controllers.NewDepartmentController(deps.DepartmentService),
		Formation:  controllers.NewFormationController(deps.FormationService, deps.EnrollmentService),
	}

	routes.SetupRoutes(router, ctrl, authMW)

	return router
}
