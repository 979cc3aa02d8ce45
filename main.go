package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/vinshop/admin_console/config"
	"github.com/vinshop/admin_console/controllers"
	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/render"
	"github.com/vinshop/admin_console/routes"
	"github.com/vinshop/admin_console/services"
	"github.com/vinshop/admin_console/store"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// Connect to Redis; Remember Me is disabled when unavailable
	config.ConnectRedis()
	defer config.CloseRedis()

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	e.Renderer = renderer

	validator := forms.New()
	e.Validator = validator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestID())

	// Backend API client and the per-session state mirrors
	api := services.NewAPIClient(cfg.APIBaseURL)
	stores := store.NewManager(api)

	sessions := &middleware.SessionWriter{
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.CookieSecure,
	}

	auth := controllers.NewAuthController(
		services.NewAuthService(api),
		services.NewRememberMeService(config.GetRedisClient()),
		sessions,
		stores,
		validator,
	)
	dashboard := controllers.NewDashboardController(stores)
	users := controllers.NewUserController(stores, validator)
	products := controllers.NewProductController(stores, validator)
	categories := controllers.NewCategoryController(stores, validator)
	collaborators := controllers.NewCollaboratorController(stores, validator)
	orders := controllers.NewOrderController(stores)
	surveys := controllers.NewSurveyController(stores, validator)
	revenue := controllers.NewRevenueController(stores)
	exports := controllers.NewExportController(stores)

	// Routes
	routes.RegisterMainRoutes(e)
	routes.RegisterAuthRoutes(e, auth)
	routes.RegisterAdminRoutes(e, routes.AdminControllers{
		Dashboard:     dashboard,
		Users:         users,
		Products:      products,
		Categories:    categories,
		Collaborators: collaborators,
		Orders:        orders,
		Surveys:       surveys,
		Revenue:       revenue,
		Exports:       exports,
	})
	routes.RegisterCollaboratorRoutes(e, routes.CollaboratorControllers{
		Dashboard: dashboard,
		Orders:    orders,
		Surveys:   surveys,
		Revenue:   revenue,
	})
	routes.RegisterUserRoutes(e, dashboard)

	log.Printf("Vinshop console listening on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
