package storage

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/logger"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/customerr"
)

const fileMode = 0644

type config interface {
	File() string
}

// FileStore keeps every expense in memory and mirrors each mutation to a
// plain-text backing file. Mutations apply in memory first; a failed write
// is returned to the caller but not rolled back.
type FileStore struct {
	path     string
	records  []expense.Record
	nextID   int64
	warnings []customerr.DecodeError
}

func NewFileStore(config config) (*FileStore, error) {
	s := &FileStore{path: config.File(), nextID: 1}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no backing file yet, starting empty", zap.String("path", s.path))
			return nil
		}
		return &customerr.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		rec, ok, err := decodeRecord(line)
		if err != nil {
			decErr := customerr.DecodeError{Line: i + 1, Input: line, Err: err}
			s.warnings = append(s.warnings, decErr)
			logger.Warn("skipping malformed line",
				zap.String("path", s.path), zap.Int("line", i+1), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		s.records = append(s.records, rec)
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}

	logger.Info("loaded expenses",
		zap.String("path", s.path), zap.Int("count", len(s.records)))
	return nil
}

func (s *FileStore) save() error {
	var sb strings.Builder
	for _, rec := range s.records {
		sb.WriteString(encodeRecord(rec))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), fileMode); err != nil {
		logger.Warn("writing backing file failed",
			zap.String("path", s.path), zap.Error(err))
		return &customerr.PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// DecodeWarnings reports the lines skipped by the last load.
func (s *FileStore) DecodeWarnings() []customerr.DecodeError {
	return s.warnings
}

func (s *FileStore) Add(amount decimal.Decimal, category string, date expense.Date, description string) (int64, error) {
	rec := expense.Record{
		Amount:      amount.Round(2),
		Category:    strings.TrimSpace(category),
		Date:        date,
		Description: strings.TrimSpace(description),
	}
	if err := validateRecord(rec); err != nil {
		return 0, err
	}

	rec.ID = s.nextID
	s.nextID++
	s.records = append(s.records, rec)
	return rec.ID, s.save()
}

func (s *FileStore) Update(id int64, patch expense.Patch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return errors.Wrapf(customerr.ErrNotFound, "expense %d", id)
	}

	rec := s.records[idx]
	if patch.Amount != nil {
		rec.Amount = patch.Amount.Round(2)
	}
	if patch.Category != nil {
		rec.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if patch.Description != nil {
		rec.Description = strings.TrimSpace(*patch.Description)
	}
	if err := validateRecord(rec); err != nil {
		return err
	}

	s.records[idx] = rec
	return s.save()
}

func (s *FileStore) Delete(id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return errors.Wrapf(customerr.ErrNotFound, "expense %d", id)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return s.save()
}

// List returns every expense ordered by date, oldest first, with the sum
// of all amounts.
func (s *FileStore) List() ([]expense.Record, decimal.Decimal) {
	return sortedByDate(s.records), sumAmounts(s.records)
}

func (s *FileStore) FilterByCategory(category string) ([]expense.Record, decimal.Decimal, error) {
	query := strings.TrimSpace(category)
	if query == "" {
		return nil, decimal.Zero, &customerr.ValidationError{Field: "category", Reason: "is required"}
	}

	matched := make([]expense.Record, 0)
	for _, rec := range s.records {
		if strings.EqualFold(rec.Category, query) {
			matched = append(matched, rec)
		}
	}
	return sortedByDate(matched), sumAmounts(matched), nil
}

func (s *FileStore) FilterByDateRange(start, end expense.Date) ([]expense.Record, decimal.Decimal, error) {
	if start.After(end) {
		return nil, decimal.Zero, &customerr.ValidationError{Field: "date range", Reason: "starts after it ends"}
	}

	matched := make([]expense.Record, 0)
	for _, rec := range s.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		matched = append(matched, rec)
	}
	return sortedByDate(matched), sumAmounts(matched), nil
}

// Extremes returns the most and the least expensive records. Equal amounts
// resolve to the record added first.
func (s *FileStore) Extremes() (expense.Record, expense.Record, error) {
	if len(s.records) == 0 {
		return expense.Record{}, expense.Record{}, customerr.ErrNoRecords
	}

	highest, lowest := s.records[0], s.records[0]
	for _, rec := range s.records[1:] {
		if rec.Amount.GreaterThan(highest.Amount) ||
			(rec.Amount.Equal(highest.Amount) && rec.ID < highest.ID) {
			highest = rec
		}
		if rec.Amount.LessThan(lowest.Amount) ||
			(rec.Amount.Equal(lowest.Amount) && rec.ID < lowest.ID) {
			lowest = rec
		}
	}
	return highest, lowest, nil
}

// Categories returns the distinct category strings in alphabetical order.
func (s *FileStore) Categories() []string {
	seen := make(map[string]struct{}, len(s.records))
	cats := make([]string, 0)
	for _, rec := range s.records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		cats = append(cats, rec.Category)
	}

	sort.Slice(cats, func(i, j int) bool {
		a, b := strings.ToLower(cats[i]), strings.ToLower(cats[j])
		if a == b {
			return cats[i] < cats[j]
		}
		return a < b
	})
	return cats
}

func (s *FileStore) indexOf(id int64) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func validateRecord(rec expense.Record) error {
	if !rec.Amount.IsPositive() {
		return &customerr.ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	if rec.Category == "" {
		return &customerr.ValidationError{Field: "category", Reason: "is required"}
	}
	if rec.Date.IsZero() {
		return &customerr.ValidationError{Field: "date", Reason: "is required"}
	}
	if rec.Description == "" {
		return &customerr.ValidationError{Field: "description", Reason: "is required"}
	}
	return nil
}

func sortedByDate(recs []expense.Record) []expense.Record {
	res := make([]expense.Record, len(recs))
	copy(res, recs)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Date.Equal(res[j].Date) {
			return res[i].ID < res[j].ID
		}
		return res[i].Date.Before(res[j].Date)
	})
	return res
}

func sumAmounts(recs []expense.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range recs {
		total = total.Add(rec.Amount)
	}
	return total
}
