// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "inventory-api/internal/api"
	"inventory-api/internal/api/handler"
	"inventory-api/internal/auth"
	"inventory-api/internal/config"
	"inventory-api/internal/repository"
	"inventory-api/internal/repository/postgres"
	"inventory-api/internal/service"
	"inventory-api/internal/util"
	"inventory-api/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Auth primitives
	PasswordHasher *auth.PasswordHasher
	TokenManager   *auth.TokenManager

	// Repositories
	UserRepository    repository.UserRepository
	ProductRepository repository.ProductRepository

	// Services
	AuthService    service.AuthService
	ProductService service.ProductService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance. A logger is attached
// immediately so initialization failures can still be reported.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Auth primitives
	app.PasswordHasher = auth.NewPasswordHasher(app.Config.BcryptCost)
	app.TokenManager = auth.NewTokenManager(app.Config.JWTSecret, app.Config.TokenTTL)

	// 5. Bootstrap schema and optionally seed default data
	if err := postgres.Bootstrap(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	if app.Config.SeedDatabase {
		if err := postgres.Seed(ctx, app.DB, app.PasswordHasher); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		app.Logger.Info("Database seeded with default data.")
	}

	// 6. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.ProductRepository = postgres.NewProductRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 7. Initialize Services
	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, app.PasswordHasher, app.TokenManager)
	app.ProductService = service.NewProductService(app.DB, app.ProductRepository)
	app.Logger.Info("Services initialized.")

	// 8. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	productHandler := handler.NewProductHandler(app.ProductService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, productHandler, app.TokenManager, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
