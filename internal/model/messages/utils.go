package messages

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/reports"
)

var periodStarts = map[string]func() time.Time{
	"week":  now.BeginningOfWeek,
	"month": now.BeginningOfMonth,
	"year":  now.BeginningOfYear,
}

func periodRange(period string) (expense.Date, expense.Date, bool) {
	f, ok := periodStarts[strings.ToLower(strings.TrimSpace(period))]
	if !ok {
		return expense.Date{}, expense.Date{}, false
	}
	return expense.DateOf(f()), expense.DateOf(time.Now()), true
}

func parseDateOrToday(text string) (expense.Date, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return expense.DateOf(time.Now()), nil
	}
	return expense.ParseDate(text)
}

func formatRecord(rec expense.Record, currency string) string {
	return fmt.Sprintf("#%d %s %s%s %s (%s)",
		rec.ID, rec.Date, currency, rec.Amount.StringFixed(2), rec.Category, rec.Description)
}

func formatRecords(records []expense.Record, total decimal.Decimal, currency string) string {
	res := make([]string, 0, len(records)+2)
	for _, rec := range records {
		res = append(res, formatRecord(rec, currency))
	}
	res = append(res, "", fmt.Sprintf("Total: %s%s", currency, total.StringFixed(2)))
	return strings.Join(res, "\n")
}

func formatSummary(summary *reports.Summary, currency string) string {
	res := make([]string, 0, len(summary.Lines)+2)
	for _, line := range summary.Lines {
		res = append(res, fmt.Sprintf("%s: %s%s", line.Category, currency, line.Amount.StringFixed(2)))
	}
	res = append(res, "", fmt.Sprintf("Total: %s%s", currency, summary.Total.StringFixed(2)))
	return strings.Join(res, "\n")
}
