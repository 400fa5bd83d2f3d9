package reports

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
)

type expensesStorage interface {
	List() ([]expense.Record, decimal.Decimal)
	FilterByDateRange(start, end expense.Date) ([]expense.Record, decimal.Decimal, error)
}

type Generator struct {
	storage expensesStorage
}

func NewGenerator(storage expensesStorage) *Generator {
	return &Generator{storage: storage}
}

type SummaryLine struct {
	Category string
	Amount   decimal.Decimal
	Count    int
}

type Summary struct {
	Lines []SummaryLine
	Total decimal.Decimal
}

// CategoryBreakdown totals every stored expense per category, biggest
// spender first.
func (g *Generator) CategoryBreakdown() *Summary {
	records, total := g.storage.List()
	return groupRecords(records, total)
}

// MonthToDate reports the breakdown for the month of ref, up to ref itself.
func (g *Generator) MonthToDate(ref time.Time) (*Summary, error) {
	start := expense.DateOf(now.New(ref).BeginningOfMonth())
	end := expense.DateOf(ref)

	records, total, err := g.storage.FilterByDateRange(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "month to date")
	}
	return groupRecords(records, total), nil
}

func groupRecords(records []expense.Record, total decimal.Decimal) *Summary {
	m := make(map[string]*SummaryLine)
	for _, rec := range records {
		line, ok := m[rec.Category]
		if !ok {
			line = &SummaryLine{Category: rec.Category}
			m[rec.Category] = line
		}
		line.Amount = line.Amount.Add(rec.Amount)
		line.Count++
	}

	lines := make([]SummaryLine, 0, len(m))
	for _, line := range m {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Amount.Equal(lines[j].Amount) {
			return lines[i].Category < lines[j].Category
		}
		return lines[i].Amount.GreaterThan(lines[j].Amount)
	})

	return &Summary{Lines: lines, Total: total}
}
