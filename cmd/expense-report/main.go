package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/config"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/logger"
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

	generator := reports.NewGenerator(expenseStorage)

	period := "all"
	if len(os.Args) > 1 {
		period = os.Args[1]
	}

	var summary *reports.Summary
	switch period {
	case "all":
		summary = generator.CategoryBreakdown()
	case "month":
		summary, err = generator.MonthToDate(time.Now())
		if err != nil {
			logger.Fatal("failed to generate report:", zap.Error(err))
		}
	default:
		logger.Fatal("unsupported period, want all or month", zap.String("period", period))
	}

	printSummary(summary, conf.App().CurrencySymbol())
}

func printSummary(summary *reports.Summary, currency string) {
	if len(summary.Lines) == 0 {
		fmt.Println("No expenses recorded")
		return
	}
	for _, line := range summary.Lines {
		fmt.Printf("%s: %s%s (%d expenses)\n", line.Category, currency, line.Amount.StringFixed(2), line.Count)
	}
	fmt.Printf("\nTotal: %s%s\n", currency, summary.Total.StringFixed(2))
}
