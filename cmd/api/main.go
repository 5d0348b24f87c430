package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/loan-approval/internal/config"
	"alfredoptarigan/loan-approval/internal/handlers"
	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load model and scaler; nothing can be served without them
	artifacts, err := services.NewArtifactLoader().Load(cfg.Model.ModelPath, cfg.Model.ScalerPath)
	if err != nil {
		log.Fatalf("❌ Failed to load artifacts: %v", err)
	}
	log.Printf("✅ Loaded %s model from %s\n", artifacts.Model.Kind(), cfg.Model.ModelPath)

	schema := models.DefaultSchema()
	predictor, err := services.NewPredictor(
		schema,
		services.NewEncoder(services.LoanEncodingTable()),
		services.NewReconciler(schema, cfg.Model.StrictSchema),
		artifacts,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize predictor: %v", err)
	}
	log.Println("✅ Predictor initialized successfully")

	collector := services.NewFormCollector(models.LoanFormFields())

	// Initialize Handlers
	formHandler := handlers.NewFormHandler(collector, predictor)
	predictHandler := handlers.NewPredictHandler(collector, predictor)
	schemaHandler := handlers.NewSchemaHandler(collector, predictor)
	log.Println("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Loan Approval Prediction",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Form
	app.Get("/", formHandler.HandleForm)
	app.Post("/predict", formHandler.HandleSubmit)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"model":  predictor.ModelKind(),
			"time":   time.Now(),
		})
	})

	api.Get("/schema", schemaHandler.HandleGetSchema)
	api.Post("/predict", predictHandler.HandlePredict)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📝 Loan form: http://localhost%s/\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
