package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/api"
	"github.com/terraincognita07/herhealth/internal/cli"
	"github.com/terraincognita07/herhealth/internal/config"
	"github.com/terraincognita07/herhealth/internal/db"
	"github.com/terraincognita07/herhealth/internal/enrichment"
	"github.com/terraincognita07/herhealth/internal/logging"
)

const resetPasswordCommand = "reset-password"

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("herhealth exited")
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case resetPasswordCommand:
			if len(args) != 2 {
				return fmt.Errorf("usage: herhealth %s <email>", resetPasswordCommand)
			}
			return runResetPassword(args[1])
		default:
			return fmt.Errorf("unknown command %q", args[0])
		}
	}
	return serve()
}

func runResetPassword(email string) error {
	cfg, err := config.LoadWithoutSecret()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.Environment)
	return cli.RunResetPasswordCommand(databaseOptions(cfg), email, os.Stdout, log)
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, cfg.Environment)
	location := mustLoadLocation(cfg.TimeZone, log)
	time.Local = location

	database, err := db.Open(databaseOptions(cfg), log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, location, log, cfg.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	accessLog := log.Writer()
	defer accessLog.Close()
	app := newApp(handler, accessLog)

	repositories := db.NewRepositories(database)
	job := enrichment.NewJob(repositories.Predictions, repositories.Notifications, log)
	if err := job.Start(cfg.EnrichmentCron); err != nil {
		return err
	}
	defer job.Stop()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"db_driver": cfg.DBDriver,
		"tz":        location.String(),
	}).Info("herhealth listening")
	if err := app.Listen(":" + cfg.Port); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "herhealth",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: accessLog,
	}))

	api.RegisterRoutes(app, handler)
	return app
}

func databaseOptions(cfg *config.AppConfig) db.Options {
	return db.Options{
		Driver:      cfg.DBDriver,
		SQLitePath:  cfg.DBPath,
		PostgresDSN: cfg.DatabaseURL,
	}
}

func mustLoadLocation(name string, log logrus.FieldLogger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.WithField("tz", name).Warn("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}
