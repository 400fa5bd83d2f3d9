package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// get builds the logger at the first logging call rather than at package
// init, so LOG_ENV can come from a .env file loaded by main.
func get() *zap.Logger {
	once.Do(func() {
		env := os.Getenv(logEnvKey)
		if env == "" {
			env = defaultLogEnv
		}

		var err error
		if env == "dev" {
			logger, err = zap.NewDevelopment()
		} else if env == "prod" {
			logger, err = zap.NewProduction()
		}

		if err != nil || logger == nil {
			log.Fatal("logger init", err)
		}
	})
	return logger
}

func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	get().Fatal(msg, fields...)
}
