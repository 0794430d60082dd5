package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/doae178/job-landing-page/internal/config"
	"github.com/doae178/job-landing-page/internal/handlers"
	"github.com/doae178/job-landing-page/internal/repositories"
	"github.com/doae178/job-landing-page/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.Recaptcha.Secret == "" {
		log.Println("⚠️  RECAPTCHA_SECRET is empty; every submission will fail verification")
	}

	// Initialize resume storage
	namer := services.NewUUIDNamer(cfg.Storage.UploadPath)
	resumeStorage := services.NewResumeStorage(namer, cfg.Storage.MaxFileSize)
	if err := resumeStorage.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize applicant repository
	applicantRepo := repositories.NewApplicantRepository(cfg.Storage.ApplicantsPath)
	if err := applicantRepo.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create applicants directory: %v", err)
	}
	log.Println("✅ Storage initialized successfully")

	// Initialize services
	fieldValidator := services.NewFieldValidator()
	challengeVerifier := services.NewRecaptchaVerifier(
		cfg.Recaptcha.Secret,
		cfg.Recaptcha.VerifyURL,
		cfg.Recaptcha.Timeout,
	)
	submissionService := services.NewSubmissionService(
		resumeStorage,
		fieldValidator,
		challengeVerifier,
		applicantRepo,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	applyHandler := handlers.NewApplyHandler(submissionService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. BodyLimit leaves headroom above the file cap for
	// the other multipart fields.
	app := fiber.New(fiber.Config{
		AppName:      "Job Landing Page",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// CSP mirrors what the reCAPTCHA widget needs to load.
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self' https://www.google.com https://www.gstatic.com https://www.recaptcha.net; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https://www.gstatic.com; " +
			"frame-src https://www.google.com https://www.recaptcha.net",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/apply", applyHandler.HandleApply)

	// Landing page and its assets
	app.Static("/", cfg.Storage.PublicPath)

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

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server running at http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
