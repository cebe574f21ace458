package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/AhmedHussainCodes/Mockrithm/internal/config"
	"github.com/AhmedHussainCodes/Mockrithm/internal/handlers"
	"github.com/AhmedHussainCodes/Mockrithm/internal/logger"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
	"github.com/AhmedHussainCodes/Mockrithm/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Server.Env)
	log.Info().Msg("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize database")
	}

	// Initialize repositories
	feedbackRepo := repositories.NewFeedbackRepository(db)
	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	log.Info().Msg("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Evaluator.RetryMaxAttempts,
		cfg.Evaluator.RetryInitialDelay,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize Gemini AI")
	}
	log.Info().Msg("✅ Gemini AI initialized successfully")

	// Initialize services
	evaluator := services.NewFeedbackEvaluator(userRepo, geminiService)
	summaryService := services.NewSummaryService(
		feedbackRepo,
		cfg.Summary.RecentAssessments,
		cfg.Summary.TopThemes,
	)
	presenter := services.NewPresenter()
	log.Info().Msg("✅ Services initialized successfully")

	// Initialize handlers
	validate := validator.New()
	feedbackHandler := handlers.NewFeedbackHandler(
		feedbackRepo,
		evaluator,
		presenter,
		validate,
		cfg.Evaluator.Timeout,
	)
	summaryHandler := handlers.NewSummaryHandler(summaryService, presenter)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, cfg.Summary.LatestInterviews)
	log.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mockrithm Feedback API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/feedback", feedbackHandler.HandleCreateFeedback)
	api.Get("/feedback", feedbackHandler.HandleGetFeedback)
	api.Get("/feedback/list", feedbackHandler.HandleListFeedback)
	api.Delete("/feedback/:id", feedbackHandler.HandleDeleteFeedback)
	api.Get("/users/:userId/summary", summaryHandler.HandleGetSummary)
	api.Get("/users/:userId/interviews", interviewHandler.HandleListUserInterviews)
	api.Get("/interviews/latest", interviewHandler.HandleListLatestInterviews)
	api.Get("/interviews/:id", interviewHandler.HandleGetInterview)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
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
