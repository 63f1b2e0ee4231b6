package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	telegram "seed-segmenter/internal/api"
	"seed-segmenter/internal/logger"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram front end",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.TelegramToken == "" {
			return errors.New("TELEGRAM_TOKEN is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		bot, err := telegram.NewBot(cfg.TelegramToken, newContainer())
		if err != nil {
			return err
		}

		logger.Log.Info("bot is running")
		return bot.Run(ctx)
	},
}
