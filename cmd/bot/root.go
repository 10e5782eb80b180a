package main

import (
	"context"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		envFile string
		once    bool
	)

	cmd := &cobra.Command{
		Use:   "homework-bot",
		Short: "Relays homework review status changes to Telegram",
		Long: "Polls the homework review API on a fixed period and sends a Telegram message " +
			"to the configured chat whenever a homework status changes.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd.Context(), envFile, once)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load instead of ./.env")
	cmd.Flags().BoolVar(&once, "once", false, "run a single poll iteration and exit")
	return cmd
}

func run(ctx context.Context, envFile string, once bool) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		bootLog, _ := logger.New(config.Defaults())
		bootLog.WithError(err).Fatal("Could not load application configuration")
	}

	log, logFile := logger.New(cfg)
	defer logFile.Close()
	mainLogger := log.WithField("component", "main")

	mainLogger.WithFields(logrus.Fields{
		"environment":  cfg.Environment,
		"endpoint":     cfg.Endpoint,
		"retry_period": cfg.RetryPeriod.String(),
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, "")
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logrus.NewEntry(log))

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout, logrus.NewEntry(log))
	pollScheduler := scheduler.NewPollScheduler(cfg.RetryPeriod, logrus.NewEntry(log))
	pollService := app.NewPollService(apiClient, notifier, pollScheduler, logrus.NewEntry(log))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state := pollService.NewPollState(cfg.RetryPeriod)
	if once {
		pollService.PollOnce(ctx, state)
		mainLogger.Info("Single poll finished")
		return
	}

	mainLogger.Info("Application setup complete. Polling is starting...")
	err = pollService.Run(ctx, state)
	mainLogger.WithError(err).Info("Application shut down gracefully.")
}
