package main

import (
	"context"
	"os/signal"
	"syscall"

	"receiptor-bot/internal/clock"
	"receiptor-bot/internal/config"
	"receiptor-bot/internal/database"
	"receiptor-bot/internal/handler"
	"receiptor-bot/internal/repository"
	"receiptor-bot/internal/service"
	"receiptor-bot/pkg/nager"
	"receiptor-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Config initialized...")

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open database")
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	scheduleRepo, err := repository.NewGormWorkScheduleRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create work schedule repository")
	}

	holidayRepo, err := repository.NewGormUserHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday repository")
	}

	publicHolidayRepo, err := repository.NewGormPublicHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create public holiday repository")
	}

	receiptRepo, err := repository.NewGormReceiptRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create receipt repository")
	}

	var source service.HolidaySource
	if cfg.HolidayFile != "" {
		source, err = nager.NewFileSource(cfg.HolidayFile)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to load holiday file")
		}
		logrus.Infof("Public holidays are read from %s", cfg.HolidayFile)
	} else {
		source = nager.NewClient(
			nager.WithBaseURL(cfg.NagerBaseURL),
			nager.WithTimeout(cfg.NagerTimeout),
		)
	}

	userService := service.NewUserService(userRepo, scheduleRepo, holidayRepo, receiptRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	holidayService := service.NewHolidayService(holidayRepo)
	publicHolidayService := service.NewPublicHolidayService(publicHolidayRepo, source)
	receiptService := service.NewReceiptService(receiptRepo)

	clk := &clock.RealClock{}
	dashboardService := service.NewDashboardService(
		userRepo,
		scheduleService,
		holidayService,
		publicHolidayService,
		receiptService,
		clk,
		cfg.Location,
	)
	reportService := service.NewReportService(dashboardService, userService, receiptService, holidayService, scheduleService)

	syncJob, err := service.NewHolidaySyncJob(userRepo, publicHolidayService, clk, cfg.HolidaySyncSpec, cfg.NagerTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday sync job")
	}

	if err := userService.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, handler.Services{
		Users:          userService,
		Schedules:      scheduleService,
		Holidays:       holidayService,
		PublicHolidays: publicHolidayService,
		Receipts:       receiptService,
		Dashboard:      dashboardService,
		Reports:        reportService,
		Sync:           syncJob,
	}, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		result, err := syncJob.Run(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Startup holiday sync finished with errors")
			return
		}
		logrus.Infof("Startup holiday sync: %d countries, %d holidays", result.Refreshed, result.Holidays)
	}()
	syncJob.Start()

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)
	done := make(chan struct{})
	go func() {
		botHandler.HandleUpdates(ctx, updates)
		close(done)
	}()

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-ctx.Done()

	client.Stop()
	<-done
	<-syncJob.Stop().Done()

	if err := database.Close(db); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
