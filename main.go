package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paddle-scheduler/config"
	"paddle-scheduler/handlers"
	"paddle-scheduler/models"
	"paddle-scheduler/services"
	"paddle-scheduler/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Player{},
		&models.MatchBlock{},
		&models.WeekendEvent{},
		&models.PlayerAvailability{},
		&models.Match{},
		&models.EmailLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "paddle-scheduler",
	})
	app.Use(cors.New())

	mailer := services.NewMailer(db, cfg)
	rsvpService := services.NewRSVPService(services.NewGormRSVPStore(db))
	eventService := services.NewEventService(db)
	blockService := services.NewBlockService(db)
	matchService := services.NewMatchService(db)
	rosterService := services.NewRosterService(db, cfg.Roster.SheetCSVURL)
	inviteService := services.NewInviteService(db, mailer, eventService)
	reminderService := services.NewReminderService(db, mailer)

	handlers.SetupRSVPRoutes(app, rsvpService)
	handlers.SetupAdminRoutes(app, eventService, blockService, matchService, rosterService, inviteService)
	handlers.SetupCronRoutes(app, reminderService, cfg.Cron.Secret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.InProcess {
		sched, err := workers.StartReminderScheduler(reminderService, cfg.Cron.Hour)
		if err != nil {
			logrus.Fatalf("failed to start reminder scheduler: %v", err)
		}
		defer func() { _ = sched.Shutdown() }()
	}

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logrus.Errorf("server error: %v", err)
		}
	}()

	logrus.Infof("✅ Server running on http://localhost:%s", cfg.Server.Port)
	logrus.Infof("✅ RSVP links will point at %s/rsvp", cfg.Server.AppURL)

	<-ctx.Done()
	logrus.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
