package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/clients/console"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/config"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/logger"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/messages"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/reports"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/storage"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	expenseStorage, err := storage.NewFileStore(conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}

	client := console.New()
	if n := len(expenseStorage.DecodeWarnings()); n > 0 {
		_ = client.Print(fmt.Sprintf("Heads up: skipped %d malformed lines in %s", n, conf.Storage().File()))
	}

	generator := reports.NewGenerator(expenseStorage)
	msgService := messages.NewService(client, expenseStorage, generator, conf.App())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	msgService.Run(ctx)
}
