package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/domain/fiber/handler"
	"github.com/movya/candidate-suite/internal/middleware"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/repository"
	"github.com/movya/candidate-suite/internal/service"
	"github.com/movya/candidate-suite/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	store := NewTimestampStore()

	sheets := service.NewSheetService(config.LoadSheetConfig())
	webhookConfig := config.LoadWebhookConfig()
	rosterAPI := service.NewRosterAPIService(webhookConfig)
	webhook := service.NewWebhookService(webhookConfig)

	candidateUC := usecase.NewCandidateUsecase(sheets, rosterAPI, webhook, store)
	selectionUC := usecase.NewSelectionUsecase(sheets, webhook, rosterAPI, store, candidateUC, webhookConfig.AcceptDelay)

	handler.NewCandidateHandler(candidateUC).RegisterRoutes(app)
	handler.NewSelectionHandler(selectionUC).RegisterRoutes(app)
	handler.NewPostHandler(webhook).RegisterRoutes(app)

	// Warm both caches; the refresh endpoints recover from a cold start too
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := candidateUC.Refresh(ctx); err != nil {
			log.Printf("initial roster load failed: %v", err)
		}
		if err := selectionUC.Refresh(ctx); err != nil {
			log.Printf("initial selection load failed: %v", err)
		}
	}()

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// NewTimestampStore picks the backend: Postgres when a database is configured,
// a JSON file otherwise.
func NewTimestampStore() repository.TimestampStore {
	dbConfig := config.LoadDBConfig()
	if !dbConfig.Enabled() {
		return repository.NewFileTimestampStore(dbConfig.TimestampFile)
	}
	return repository.NewDBTimestampStore(ConnectDB())
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.CandidateTimestamp{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
