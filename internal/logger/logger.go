package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log глобальный логгер приложения. До вызова Init пишет в никуда.
var Log = zap.NewNop()

// Init настраивает логгер: release — JSON для продакшена, иначе цветной dev-вывод.
func Init(mode string) error {
	var cfg zap.Config

	if mode == "release" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l
	return nil
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
