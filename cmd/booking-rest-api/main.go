// cmd/booking-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "booking_service/internal/api/rest/v1"
	"booking_service/internal/app"
	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"
	"booking_service/internal/infrastructure/identity"
	"booking_service/internal/infrastructure/persistence"
	"booking_service/internal/infrastructure/persistence/models"
	"booking_service/internal/pkg/config"
	"booking_service/internal/pkg/logger"
	"booking_service/internal/pkg/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration from the environment (.env is loaded when present)
	restConfig, err := config.InitializeRestConfig()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
}

type appServices struct {
	user    users.UserService
	booking bookings.BookingService
	auth    auth.AuthService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.UserModel{}, &models.BookingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	bookingRepo, err := persistence.NewGormBookingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking repository: %w", err)
	}

	// Initialize identity components
	hasher := identity.NewBcryptPasswordHasher()

	tokenManager, err := identity.NewJwtTokenManager(&cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(userRepo, bookingRepo, hasher, tokenManager, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// HTTP metrics
	metrics := observability.NewMetrics("booking-service")
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.user,
		deps.services.booking,
		deps.services.auth,
	)

	// Serve OpenAPI spec
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/booking-service.yaml")
	})

	// Swagger UI renders the served OpenAPI spec
	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/docs/index.html")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(v1.BasePath+"/openapi.yaml")))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo users.UserRepository,
	bookingRepo bookings.BookingRepository,
	hasher auth.PasswordHasher,
	tokenManager auth.TokenManager,
	log logger.Logger,
) (*appServices, error) {
	userService, err := app.NewUserService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	bookingService, err := app.NewBookingService(bookingRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, tokenManager, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		user:    userService,
		booking: bookingService,
		auth:    authService,
	}, nil
}
