package messages

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/reports"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/storage"
)

type consoleMock struct {
	answers  []string
	confirms []bool
	printed  []string
}

func (c *consoleMock) Print(text string) error {
	c.printed = append(c.printed, text)
	return nil
}

func (c *consoleMock) Prompt(_ string) (string, error) {
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *consoleMock) Confirm(_ string) (bool, error) {
	if len(c.confirms) == 0 {
		return false, io.EOF
	}
	answer := c.confirms[0]
	c.confirms = c.confirms[1:]
	return answer, nil
}

type configMock struct {
	confirmDelete bool
}

func (c configMock) CurrencySymbol() string {
	return "$"
}

func (c configMock) ConfirmDelete() bool {
	return c.confirmDelete
}

type storageConfig struct {
	path string
}

func (c storageConfig) File() string {
	return c.path
}

func newTestStorage(t *testing.T) *storage.FileStore {
	t.Helper()
	s, err := storage.NewFileStore(storageConfig{filepath.Join(t.TempDir(), "expenses.txt")})
	require.NoError(t, err)
	return s
}

func seedExpense(t *testing.T, s *storage.FileStore, amount, category, date, description string) int64 {
	t.Helper()
	d, err := expense.ParseDate(date)
	require.NoError(t, err)
	id, err := s.Add(decimal.RequireFromString(amount), category, d, description)
	require.NoError(t, err)
	return id
}

func newTestHandler(t *testing.T, s *storage.FileStore, console *consoleMock, confirmDelete bool) *HandlerService {
	t.Helper()
	return newHandler(console, s, reports.NewGenerator(s), configMock{confirmDelete})
}

func Test_OnAddSelection_ShouldSaveExpenseAndReportID(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"25.50", "Food", "2025-02-26", "Lunch with team"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(addOption)

	assert.NoError(t, err)
	assert.Equal(t, "Gotcha! Saved expense #1", resp)

	records, total := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, "Food", records[0].Category)
	assert.Equal(t, "Lunch with team", records[0].Description)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")))
}

func Test_OnAddSelection_ShouldAnswerWithAmountHintOnBadAmount(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"ten"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(addOption)

	assert.NoError(t, err)
	assert.Equal(t, incorrectAmountMessage, resp)
	records, _ := s.List()
	assert.Len(t, records, 0)
}

func Test_OnAddSelection_ShouldAcceptCommaAmountAndEmptyDate(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"12,50", "Food", "", "Coffee"}}
	h := newTestHandler(t, s, console, true)

	_, err := h.HandleSelection(addOption)

	assert.NoError(t, err)
	records, _ := s.List()
	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("12.50")))
	assert.False(t, records[0].Date.IsZero())
}

func Test_OnAddSelection_ShouldPropagateClosedInput(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{}
	h := newTestHandler(t, s, console, true)

	_, err := h.HandleSelection(addOption)

	assert.ErrorIs(t, err, io.EOF)
}

func Test_OnUnknownSelection_ShouldAnswerWithMenuHint(t *testing.T) {
	s := newTestStorage(t)
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection("42")

	assert.NoError(t, err)
	assert.Equal(t, dontUnderstandMessage, resp)
}

func Test_OnListSelection_ShouldRenderDateOrderedReport(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	seedExpense(t, s, "15.00", "Transport", "2025-02-10", "Taxi")
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection(listOption)

	assert.NoError(t, err)
	assert.Equal(t,
		"#2 2025-02-10 $15.00 Transport (Taxi)\n"+
			"#1 2025-02-26 $25.50 Food (Lunch)\n"+
			"\nTotal: $40.50",
		resp)
}

func Test_OnListSelection_ShouldAnswerWhenEmpty(t *testing.T) {
	s := newTestStorage(t)
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection(listOption)

	assert.NoError(t, err)
	assert.Equal(t, noExpensesMessage, resp)
}

func Test_OnUpdateSelection_ShouldKeepOmittedFields(t *testing.T) {
	s := newTestStorage(t)
	id := seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"1", "", "Groceries", "", ""}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(updateOption)

	assert.NoError(t, err)
	assert.Equal(t, updatedMessage, resp)

	records, _ := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "Groceries", records[0].Category)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, "Lunch", records[0].Description)
}

func Test_OnUpdateSelection_ShouldAnswerWhenNothingChanges(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"1", "", "", "", ""}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(updateOption)

	assert.NoError(t, err)
	assert.Equal(t, nothingToChangeMessage, resp)
}

func Test_OnUpdateSelection_ShouldReportUnknownID(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"99", "12.00", "", "", ""}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(updateOption)

	assert.NoError(t, err)
	assert.Equal(t, "Can't find expense #99", resp)
}

func Test_OnUpdateSelection_ShouldRejectBadID(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"first"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(updateOption)

	assert.NoError(t, err)
	assert.Equal(t, incorrectIDMessage, resp)
}

func Test_OnDeleteSelection_ShouldAskBeforeDeleting(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"1"}, confirms: []bool{false}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(deleteOption)

	assert.NoError(t, err)
	assert.Equal(t, deleteCancelledMessage, resp)
	records, _ := s.List()
	assert.Len(t, records, 1)
}

func Test_OnDeleteSelection_ShouldDeleteAfterConfirmation(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"1"}, confirms: []bool{true}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(deleteOption)

	assert.NoError(t, err)
	assert.Equal(t, deletedMessage, resp)
	records, _ := s.List()
	assert.Len(t, records, 0)
}

func Test_OnDeleteSelection_ShouldSkipConfirmationWhenDisabled(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"1"}}
	h := newTestHandler(t, s, console, false)

	resp, err := h.HandleSelection(deleteOption)

	assert.NoError(t, err)
	assert.Equal(t, deletedMessage, resp)
}

func Test_OnDeleteSelection_ShouldReportUnknownID(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"7"}, confirms: []bool{true}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(deleteOption)

	assert.NoError(t, err)
	assert.Equal(t, "Can't find expense #7", resp)
}

func Test_OnFilterCategorySelection_ShouldMatchCaseInsensitively(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	seedExpense(t, s, "9.99", "FOOD", "2025-03-01", "Coffee")
	seedExpense(t, s, "15.00", "Transport", "2025-02-10", "Taxi")
	console := &consoleMock{answers: []string{"food"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(categoryOption)

	assert.NoError(t, err)
	assert.Contains(t, resp, "Lunch")
	assert.Contains(t, resp, "Coffee")
	assert.NotContains(t, resp, "Taxi")
	assert.Contains(t, resp, "Total: $35.49")
}

func Test_OnFilterCategorySelection_ShouldRejectBlankQuery(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"   "}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(categoryOption)

	assert.NoError(t, err)
	assert.Contains(t, resp, "category is required")
}

func Test_OnFilterCategorySelection_ShouldAnswerWhenNothingMatches(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	console := &consoleMock{answers: []string{"travel"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(categoryOption)

	assert.NoError(t, err)
	assert.Equal(t, noMatchesMessage, resp)
}

func Test_OnDateRangeSelection_ShouldIncludeBounds(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "15.00", "Transport", "2025-02-10", "Taxi")
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	seedExpense(t, s, "9.99", "Food", "2025-03-01", "Coffee")
	console := &consoleMock{answers: []string{"2025-02-10", "2025-02-26"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(dateRangeOption)

	assert.NoError(t, err)
	assert.Contains(t, resp, "Taxi")
	assert.Contains(t, resp, "Lunch")
	assert.NotContains(t, resp, "Coffee")
	assert.Contains(t, resp, "Total: $40.50")
}

func Test_OnDateRangeSelection_ShouldRejectBackwardsRange(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"2025-03-01", "2025-02-01"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(dateRangeOption)

	assert.NoError(t, err)
	assert.Contains(t, resp, "date range")
}

func Test_OnDateRangeSelection_ShouldServePeriodShortcut(t *testing.T) {
	s := newTestStorage(t)
	today := expense.DateOf(time.Now())
	_, err := s.Add(decimal.RequireFromString("7.77"), "Food", today, "Snack")
	require.NoError(t, err)
	console := &consoleMock{answers: []string{"", "month"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(dateRangeOption)

	assert.NoError(t, err)
	assert.Contains(t, resp, "Snack")
}

func Test_OnDateRangeSelection_ShouldRejectUnknownPeriod(t *testing.T) {
	s := newTestStorage(t)
	console := &consoleMock{answers: []string{"", "decade"}}
	h := newTestHandler(t, s, console, true)

	resp, err := h.HandleSelection(dateRangeOption)

	assert.NoError(t, err)
	assert.Equal(t, incorrectPeriodMessage, resp)
}

func Test_OnExtremesSelection_ShouldReportHighestAndLowest(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	seedExpense(t, s, "15.00", "Transport", "2025-02-10", "Taxi")
	seedExpense(t, s, "9.99", "Food", "2025-03-01", "Coffee")
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection(extremesOption)

	assert.NoError(t, err)
	assert.Equal(t,
		"Highest: #1 2025-02-26 $25.50 Food (Lunch)\n"+
			"Lowest:  #3 2025-03-01 $9.99 Food (Coffee)",
		resp)
}

func Test_OnCategoriesSelection_ShouldListDistinctSorted(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "1.00", "transport", "2025-01-01", "a")
	seedExpense(t, s, "2.00", "Food", "2025-01-02", "b")
	seedExpense(t, s, "3.00", "Food", "2025-01-03", "c")
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection(categoriesOption)

	assert.NoError(t, err)
	assert.Equal(t, "Food\ntransport", resp)
}

func Test_OnReportSelection_ShouldGroupSpendingByCategory(t *testing.T) {
	s := newTestStorage(t)
	seedExpense(t, s, "25.50", "Food", "2025-02-26", "Lunch")
	seedExpense(t, s, "9.99", "Food", "2025-03-01", "Coffee")
	seedExpense(t, s, "15.00", "Transport", "2025-02-10", "Taxi")
	h := newTestHandler(t, s, &consoleMock{}, true)

	resp, err := h.HandleSelection(reportOption)

	assert.NoError(t, err)
	assert.Equal(t, "Food: $35.49\nTransport: $15.00\n\nTotal: $50.49", resp)
}
