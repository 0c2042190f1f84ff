package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"ai-service/config"
	"ai-service/database"
	"ai-service/handlers"
	"ai-service/insights"
	"ai-service/payments"
	"ai-service/predictor"
	"ai-service/registry"
	"ai-service/routes"
	"ai-service/sampledata"
	"ai-service/scheduler"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize storage, falling back to SQLite when PostgreSQL is
	// unreachable.
	store, err := database.Connect(context.Background(), cfg.Database.URL, cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	// Restore model statuses persisted by earlier runs.
	reg := registry.New(time.Duration(cfg.Registry.TTLHours) * time.Hour)
	if rows, err := store.AllModelStatuses(context.Background()); err != nil {
		log.Printf("Error loading model statuses: %v", err)
	} else {
		for _, r := range rows {
			st := registry.Status{Trained: r.IsTrained, Accuracy: r.AccuracyScore}
			if r.LastTrained != nil {
				st.LastTrained = *r.LastTrained
			}
			reg.Set(r.CompanyID, r.ModelType, st)
		}
		if len(rows) > 0 {
			log.Printf("Restored %d model statuses from the database", len(rows))
		}
	}

	// Assemble the AI engines over the synthetic data generator.
	var narrator *insights.Narrator
	if cfg.Gemini.APIKey != "" {
		narrator = insights.NewNarrator(cfg.Gemini.APIKey, cfg.Gemini.Model)
		log.Println("Gemini narrative enrichment enabled")
	}
	gen := sampledata.New(sampledata.DefaultConfig(), nil)
	h := handlers.New(
		predictor.New(gen, nil),
		payments.New(gen, nil),
		insights.New(gen, nil, narrator),
		reg,
		store,
	)

	app := fiber.New(fiber.Config{
		AppName:      "AI Business Management Service",
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware stack
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, h, cfg.Auth.APIKey, cfg.Auth.JWTSecret)

	// Nightly retraining over every company the registry has seen.
	sched := scheduler.New(func() {
		companies := reg.Companies()
		if len(companies) == 0 {
			log.Println("[scheduler] no companies to retrain")
			return
		}
		log.Printf("[scheduler] retraining models for %d companies", len(companies))
		for _, id := range companies {
			h.TrainCompany(id)
		}
	})
	if err := sched.Register(cfg.Schedule.RetrainCron); err != nil {
		log.Fatalf("Scheduler setup failed: %v", err)
	}
	sched.Start()
	if cfg.Schedule.RunOnStart {
		go sched.RunNow()
	}

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("AI service started on port %s", cfg.Server.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	store.Close()
	reg.Stop()
	log.Println("Server shutdown complete")
}
