package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
)

// One record per line: id|amount|category|date|description.
// A literal pipe inside category or description is stored as "&#124;"
// so every stored line splits into exactly recordFields parts.
const (
	fieldSeparator   = "|"
	escapedSeparator = "&#124;"
	recordFields     = 5
)

func encodeRecord(rec expense.Record) string {
	fields := []string{
		strconv.FormatInt(rec.ID, 10),
		rec.Amount.StringFixed(2),
		escapeField(rec.Category),
		rec.Date.String(),
		escapeField(rec.Description),
	}
	return strings.Join(fields, fieldSeparator)
}

// decodeRecord parses one line of the backing file. Blank lines carry no
// record and report ok=false with no error. Any malformed field rejects
// the whole line.
func decodeRecord(line string) (expense.Record, bool, error) {
	if strings.TrimSpace(line) == "" {
		return expense.Record{}, false, nil
	}

	parts := strings.Split(line, fieldSeparator)
	if len(parts) != recordFields {
		return expense.Record{}, false, fmt.Errorf("want %d fields, got %d", recordFields, len(parts))
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return expense.Record{}, false, errors.Wrap(err, "parse id")
	}
	if id <= 0 {
		return expense.Record{}, false, fmt.Errorf("id %d is not positive", id)
	}

	amount, err := decimal.NewFromString(parts[1])
	if err != nil {
		return expense.Record{}, false, errors.Wrap(err, "parse amount")
	}
	if !amount.IsPositive() {
		return expense.Record{}, false, fmt.Errorf("amount %s is not positive", parts[1])
	}

	date, err := expense.ParseDate(parts[3])
	if err != nil {
		return expense.Record{}, false, errors.Wrap(err, "parse date")
	}

	category := strings.TrimSpace(unescapeField(parts[2]))
	if category == "" {
		return expense.Record{}, false, errors.New("category is blank")
	}
	description := strings.TrimSpace(unescapeField(parts[4]))
	if description == "" {
		return expense.Record{}, false, errors.New("description is blank")
	}

	rec := expense.Record{
		ID:          id,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	}
	return rec, true, nil
}

func escapeField(s string) string {
	return strings.ReplaceAll(s, fieldSeparator, escapedSeparator)
}

func unescapeField(s string) string {
	return strings.ReplaceAll(s, escapedSeparator, fieldSeparator)
}
