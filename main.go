package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"learnhub_backend/internals/configs"
	database "learnhub_backend/internals/databases"
	"learnhub_backend/internals/features/lms/batch/scheduler"
	"learnhub_backend/internals/logging"
	"learnhub_backend/internals/middlewares"
	"learnhub_backend/internals/route"
	"learnhub_backend/internals/services/email"
)

func main() {
	configs.LoadEnv()

	logg, err := logging.Init(configs.GetEnv("LOG_LEVEL", "info"), configs.GetEnv("APP_ENV", "dev"))
	if err != nil {
		panic(err)
	}
	defer logg.Closer()
	sugar := logg.Sugar

	db := database.ConnectDB()
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		sugar.Fatalw("migration failed", "err", err)
	}

	var mailer email.Service
	if configs.SendgridAPIKey != "" {
		mailer = email.NewSendgridService(configs.SendgridAPIKey, configs.EmailFrom)
		sugar.Infow("email delivery enabled", "provider", "sendgrid")
	} else {
		mailer = email.NewConsoleService(sugar)
		sugar.Infow("email delivery disabled, logging messages to console")
	}

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		sugar.Fatalw("cannot create upload directory", "dir", configs.UploadDir, "err", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "LearnHub Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    12 * 1024 * 1024,
	})

	middlewares.SetupMiddlewares(app, sugar)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	route.SetupRoutes(app, db, mailer, sugar, configs.UploadDir)

	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	notifier := scheduler.NewNotifier(db, sugar)
	go notifier.Start(notifierCtx)

	go func() {
		port := configs.GetEnv("PORT", "3000")
		sugar.Infow("server starting", "port", port)
		if err := app.Listen(":" + port); err != nil {
			sugar.Fatalw("server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sugar.Infow("shutdown signal received")
	stopNotifier()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "err", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
	sugar.Infow("server stopped cleanly")
}
