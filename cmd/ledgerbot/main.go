package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"ledgerbot/internal/bot"
	"ledgerbot/internal/config"
	gsheet "ledgerbot/internal/ledger/google"
	applog "ledgerbot/internal/log"
	"ledgerbot/internal/scheduler"
	"ledgerbot/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	logger.Info("Starting ledgerbot")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credentials, err := cfg.CredentialsJSON()
	if err != nil {
		logger.Error("Failed to load Google credentials", "error", err)
		os.Exit(1)
	}

	store, err := gsheet.New(ctx, cfg.SpreadsheetID, cfg.ExpensesSheetName, cfg.EarningsSheetName, credentials)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.SpreadsheetID)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Error("Failed to initialize Telegram client", "error", err)
		os.Exit(1)
	}
	logger.Info("Telegram client initialized", "username", api.Self.UserName)

	summaryService := services.NewSummaryService(store, logger.WithComponent(applog.ComponentSummary))
	b := bot.New(api, store, store, summaryService, logger.WithComponent(applog.ComponentBot))

	// Both validated above.
	weekday, _ := cfg.Weekday()
	location, _ := cfg.Location()

	weekly := scheduler.NewWeeklySummaryService(summaryService, b, scheduler.WeeklySummaryConfig{
		Weekday:  weekday,
		At:       cfg.SummaryTime,
		Location: location,
		ChatID:   cfg.SummaryChatID,
	}, logger.WithComponent(applog.ComponentScheduler))

	if err := weekly.Start(ctx); err != nil {
		logger.Error("Failed to start weekly summary scheduler", "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.Run(gctx)
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("ledgerbot shutdown complete")
}
