package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultWindowTitle = "Image viewer"

type Config struct {
	TelegramToken string
	LogMode       string
	WindowTitle   string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogMode:       os.Getenv("LOG_MODE"),
		WindowTitle:   os.Getenv("WINDOW_TITLE"),
	}

	if cfg.WindowTitle == "" {
		cfg.WindowTitle = defaultWindowTitle
	}

	return cfg, nil
}
