package server

import (
	"log"

	"pdf-evidence-be/internal/bootstrap"
	"pdf-evidence-be/internal/config"
	"pdf-evidence-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App. The body limit leaves headroom over the per-file
	// cap since a batch carries several files plus multipart framing.
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Processing.MaxUploadBytes) * 5,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.WorkspaceController.RegisterRoutes(api)
	c.FileController.RegisterRoutes(api)
	c.EvidenceController.RegisterRoutes(api)
	c.EssayController.RegisterRoutes(api)
	c.EditorController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)

	c.StatusHandler.RegisterRoutes(api)
}
