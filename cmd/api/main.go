package main

// @title OutreachHQ API
// @version 1.0
// @description Sales outreach automation API: prospects, personalized email and call outreach, engagement tracking.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jordanlanch/outreachhq/config"
	"github.com/jordanlanch/outreachhq/pkg/ai/llm"
	"github.com/jordanlanch/outreachhq/pkg/api/handlers"
	"github.com/jordanlanch/outreachhq/pkg/cache"
	"github.com/jordanlanch/outreachhq/pkg/calls"
	"github.com/jordanlanch/outreachhq/pkg/database"
	"github.com/jordanlanch/outreachhq/pkg/email"
	"github.com/jordanlanch/outreachhq/pkg/engagement"
	"github.com/jordanlanch/outreachhq/pkg/export"
	"github.com/jordanlanch/outreachhq/pkg/jobs"
	"github.com/jordanlanch/outreachhq/pkg/metrics"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
	"github.com/jordanlanch/outreachhq/pkg/prospects"
	"github.com/jordanlanch/outreachhq/pkg/workflow"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it classification results are recomputed
	// on every request.
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, classification caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Content generation
	openaiClient := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.OpenAITemperature),
	}, nil)
	generator := personalization.NewGenerator(openaiClient, nil)
	generator.OnFallback = prometheusMetrics.RecordGenerationFallback

	// Email dispatch: SendGrid in production, console in development
	var emailProvider email.Provider
	if cfg.SendGridAPIKey != "" {
		emailProvider = email.NewSendGridProvider(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName, nil)
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		emailProvider = email.NewConsoleProvider(nil)
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	// Services
	prospectService := prospects.NewService(db.Ent, nil)
	engagementService := engagement.NewService(db.Ent, nil)
	engagementService.OnEvent = prometheusMetrics.RecordEngagementEvent

	emailService := email.NewService(db.Ent, generator, emailProvider, email.SenderIdentity{
		Name:  cfg.FromName,
		Email: cfg.FromEmail,
		Phone: cfg.ContactPhone,
	}, nil)
	emailService.OnSent = prometheusMetrics.RecordEmailSent

	callProvider := calls.NewSimulatedProvider(nil)
	callService := calls.NewService(db.Ent, generator, callProvider, cfg.FromPhone, nil)
	callService.OnPlaced = prometheusMetrics.RecordCallPlaced

	workflowService := workflow.NewService(prospectService, emailService, generator, redisClient, nil)
	workflowService.OnBatchItem = prometheusMetrics.RecordBatchItem

	exportService := export.NewService(db.Ent)

	// Cron jobs
	cronManager := jobs.NewCronManager(db.Ent, prometheusMetrics, nil)
	if cfg.FeatureCronJobs {
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to set up cron jobs: %v", err)
		}
		cronManager.Start()
	} else {
		log.Printf("ℹ️  Cron jobs disabled (FEATURE_CRON_JOBS=false)")
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Service info (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "OutreachHQ API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	// Health check (public)
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		cacheStatus := "disabled"
		if redisClient != nil {
			if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]any{
					"status": "unhealthy",
					"cache":  "down",
				})
			}
			cacheStatus = "up"
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    cacheStatus,
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Handlers
	prospectHandler := handlers.NewProspectHandler(prospectService, engagementService, workflowService, exportService)
	emailHandler := handlers.NewEmailHandler(workflowService, engagementService)
	callHandler := handlers.NewCallHandler(callService)

	// API v1 routes
	v1 := e.Group("/api/v1")

	prospectGroup := v1.Group("/prospects")
	{
		prospectGroup.POST("", prospectHandler.CreateProspect)
		prospectGroup.GET("", prospectHandler.ListProspects)
		prospectGroup.POST("/import", prospectHandler.ImportProspects)
		prospectGroup.POST("/import-csv", prospectHandler.ImportProspectsCSV)
		prospectGroup.GET("/export", prospectHandler.ExportProspects)
		prospectGroup.GET("/:id", prospectHandler.GetProspect)
		prospectGroup.PUT("/:id", prospectHandler.UpdateProspect)
		prospectGroup.DELETE("/:id", prospectHandler.DeleteProspect)
		prospectGroup.GET("/:id/classification", prospectHandler.GetProspectClassification)
		prospectGroup.GET("/:id/engagements", prospectHandler.GetProspectEngagements)
	}

	emailGroup := v1.Group("/emails")
	{
		emailGroup.POST("/generate", emailHandler.GenerateEmail)
		emailGroup.POST("/send", emailHandler.SendEmail)
		emailGroup.POST("/send-batch", emailHandler.SendBatch)
		emailGroup.GET("/engagement/:id", emailHandler.GetEngagement)
		emailGroup.POST("/engagement/:id/track", emailHandler.TrackEngagementEvent)
	}

	callGroup := v1.Group("/calls")
	{
		callGroup.POST("/generate-script", callHandler.GenerateScript)
		callGroup.POST("/make-call", callHandler.MakeCall)
		callGroup.POST("/update-outcome", callHandler.UpdateOutcome)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 OutreachHQ API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🤖 OpenAI model: %s (temperature %.1f)", cfg.OpenAIModel, cfg.OpenAITemperature)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cfg.FeatureCronJobs {
		cronManager.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
