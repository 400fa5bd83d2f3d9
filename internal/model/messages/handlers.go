package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/entity/expense"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/customerr"
	"github.com/yasmin-gamal1/personal-expense-tracker/internal/model/reports"
)

const menuMessage = `What would you like to do?
 1) Add an expense
 2) List all expenses
 3) Update an expense
 4) Delete an expense
 5) Filter by category
 6) Filter by date range
 7) Highest and lowest
 8) List categories
 9) Spending by category
 0) Exit`

const (
	helloMessage           = "Hello! I am your expense tracker 🤖"
	byeMessage             = "Bye! Your expenses are in good hands"
	dontUnderstandMessage  = "That is not a menu option :("
	somethingWrongMessage  = "Sorry, something wrong happened..."
	noExpensesMessage      = "You have no expenses yet"
	noMatchesMessage       = "No expenses match"
	nothingToChangeMessage = "Nothing to change"
	deleteCancelledMessage = "Okay, kept it"

	incorrectAmountMessage = "Your expense amount is incorrect"
	incorrectDateMessage   = "The date is incorrect. Should be YYYY-MM-DD"
	incorrectIDMessage     = "The id is incorrect. Should be a whole number"
	incorrectPeriodMessage = "The period is incorrect. Should be week, month or year"

	addedTemplate          = "Gotcha! Saved expense #%d"
	updatedMessage         = "Gotcha! Expense updated"
	deletedMessage         = "Gotcha! Expense deleted"
	notFoundTemplate       = "Can't find expense #%d"
	invalidInputTemplate   = "That doesn't look right: %s"
	extremesTemplate       = "Highest: %s\nLowest:  %s"
	addedNotSavedTemplate  = "Saved expense #%d in memory, but writing the file failed"
	updatedNotSavedMessage = "Updated in memory, but writing the file failed"
	deletedNotSavedMessage = "Deleted in memory, but writing the file failed"
)

const (
	selectPrompt      = "Select an option: "
	amountPrompt      = "Amount: "
	categoryPrompt    = "Category: "
	datePrompt        = "Date (YYYY-MM-DD, empty for today): "
	descriptionPrompt = "Description: "
	idPrompt          = "Expense id: "

	newAmountPrompt      = "New amount (empty to keep): "
	newCategoryPrompt    = "New category (empty to keep): "
	newDatePrompt        = "New date (empty to keep): "
	newDescriptionPrompt = "New description (empty to keep): "

	startDatePrompt = "Start date (YYYY-MM-DD, empty to pick a period): "
	endDatePrompt   = "End date (YYYY-MM-DD, empty for today): "
	periodPrompt    = "Period (week, month or year): "

	confirmDeletePrompt = "Delete it? [y/N]: "
)

const (
	addOption        = "1"
	listOption       = "2"
	updateOption     = "3"
	deleteOption     = "4"
	categoryOption   = "5"
	dateRangeOption  = "6"
	extremesOption   = "7"
	categoriesOption = "8"
	reportOption     = "9"
	exitOption       = "0"
)

type expenseStorage interface {
	Add(amount decimal.Decimal, category string, date expense.Date, description string) (int64, error)
	Update(id int64, patch expense.Patch) error
	Delete(id int64) error
	List() ([]expense.Record, decimal.Decimal)
	FilterByCategory(category string) ([]expense.Record, decimal.Decimal, error)
	FilterByDateRange(start, end expense.Date) ([]expense.Record, decimal.Decimal, error)
	Extremes() (expense.Record, expense.Record, error)
	Categories() []string
}

type reportGenerator interface {
	CategoryBreakdown() *reports.Summary
}

type prompter interface {
	Prompt(label string) (string, error)
	Confirm(label string) (bool, error)
}

type handler func() (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap   handlerMap
	storage       expenseStorage
	reports       reportGenerator
	prompter      prompter
	currency      string
	confirmDelete bool
}

func newHandler(prompter prompter, storage expenseStorage, reports reportGenerator, config config) *HandlerService {
	res := &HandlerService{
		handlersMap:   nil,
		storage:       storage,
		reports:       reports,
		prompter:      prompter,
		currency:      config.CurrencySymbol(),
		confirmDelete: config.ConfirmDelete(),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleSelection(choice string) (string, error) {
	handler, ok := s.handlersMap[strings.TrimSpace(choice)]
	if ok {
		return handler()
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[addOption] = s.handleAdd
	m[listOption] = s.handleList
	m[updateOption] = s.handleUpdate
	m[deleteOption] = s.handleDelete
	m[categoryOption] = s.handleFilterCategory
	m[dateRangeOption] = s.handleFilterDates
	m[extremesOption] = s.handleExtremes
	m[categoriesOption] = s.handleCategories
	m[reportOption] = s.handleCategoryReport

	return m
}

func (s *HandlerService) handleAdd() (string, error) {
	amountText, err := s.prompter.Prompt(amountPrompt)
	if err != nil {
		return "", err
	}
	amount, err := expense.ParseAmount(amountText)
	if err != nil {
		return incorrectAmountMessage, nil
	}

	category, err := s.prompter.Prompt(categoryPrompt)
	if err != nil {
		return "", err
	}

	dateText, err := s.prompter.Prompt(datePrompt)
	if err != nil {
		return "", err
	}
	date, err := parseDateOrToday(dateText)
	if err != nil {
		return incorrectDateMessage, nil
	}

	description, err := s.prompter.Prompt(descriptionPrompt)
	if err != nil {
		return "", err
	}

	id, err := s.storage.Add(amount, category, date, description)
	if errors.Is(err, customerr.ErrValidation) {
		return fmt.Sprintf(invalidInputTemplate, err), nil
	}
	if err != nil {
		return fmt.Sprintf(addedNotSavedTemplate, id), errors.Wrap(err, "handle add")
	}
	return fmt.Sprintf(addedTemplate, id), nil
}

func (s *HandlerService) handleList() (string, error) {
	records, total := s.storage.List()
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	return formatRecords(records, total, s.currency), nil
}

func (s *HandlerService) handleUpdate() (string, error) {
	id, msg, err := s.promptID()
	if err != nil || msg != "" {
		return msg, err
	}

	patch, msg, err := s.promptPatch()
	if err != nil || msg != "" {
		return msg, err
	}
	if patch.Empty() {
		return nothingToChangeMessage, nil
	}

	err = s.storage.Update(id, patch)
	switch {
	case errors.Is(err, customerr.ErrNotFound):
		return fmt.Sprintf(notFoundTemplate, id), nil
	case errors.Is(err, customerr.ErrValidation):
		return fmt.Sprintf(invalidInputTemplate, err), nil
	case err != nil:
		return updatedNotSavedMessage, errors.Wrap(err, "handle update")
	}
	return updatedMessage, nil
}

func (s *HandlerService) handleDelete() (string, error) {
	id, msg, err := s.promptID()
	if err != nil || msg != "" {
		return msg, err
	}

	if s.confirmDelete {
		ok, err := s.prompter.Confirm(confirmDeletePrompt)
		if err != nil {
			return "", err
		}
		if !ok {
			return deleteCancelledMessage, nil
		}
	}

	err = s.storage.Delete(id)
	switch {
	case errors.Is(err, customerr.ErrNotFound):
		return fmt.Sprintf(notFoundTemplate, id), nil
	case err != nil:
		return deletedNotSavedMessage, errors.Wrap(err, "handle delete")
	}
	return deletedMessage, nil
}

func (s *HandlerService) handleFilterCategory() (string, error) {
	category, err := s.prompter.Prompt(categoryPrompt)
	if err != nil {
		return "", err
	}

	records, total, err := s.storage.FilterByCategory(category)
	if errors.Is(err, customerr.ErrValidation) {
		return fmt.Sprintf(invalidInputTemplate, err), nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle filter by category")
	}
	if len(records) == 0 {
		return noMatchesMessage, nil
	}
	return formatRecords(records, total, s.currency), nil
}

func (s *HandlerService) handleFilterDates() (string, error) {
	startText, err := s.prompter.Prompt(startDatePrompt)
	if err != nil {
		return "", err
	}

	var start, end expense.Date
	if strings.TrimSpace(startText) == "" {
		period, err := s.prompter.Prompt(periodPrompt)
		if err != nil {
			return "", err
		}
		var ok bool
		start, end, ok = periodRange(period)
		if !ok {
			return incorrectPeriodMessage, nil
		}
	} else {
		start, err = expense.ParseDate(strings.TrimSpace(startText))
		if err != nil {
			return incorrectDateMessage, nil
		}
		endText, err := s.prompter.Prompt(endDatePrompt)
		if err != nil {
			return "", err
		}
		end, err = parseDateOrToday(endText)
		if err != nil {
			return incorrectDateMessage, nil
		}
	}

	records, total, err := s.storage.FilterByDateRange(start, end)
	if errors.Is(err, customerr.ErrValidation) {
		return fmt.Sprintf(invalidInputTemplate, err), nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle filter by dates")
	}
	if len(records) == 0 {
		return noMatchesMessage, nil
	}
	return formatRecords(records, total, s.currency), nil
}

func (s *HandlerService) handleExtremes() (string, error) {
	highest, lowest, err := s.storage.Extremes()
	if errors.Is(err, customerr.ErrNoRecords) {
		return noExpensesMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle extremes")
	}
	return fmt.Sprintf(extremesTemplate,
		formatRecord(highest, s.currency), formatRecord(lowest, s.currency)), nil
}

func (s *HandlerService) handleCategories() (string, error) {
	cats := s.storage.Categories()
	if len(cats) == 0 {
		return noExpensesMessage, nil
	}
	return strings.Join(cats, "\n"), nil
}

func (s *HandlerService) handleCategoryReport() (string, error) {
	summary := s.reports.CategoryBreakdown()
	if len(summary.Lines) == 0 {
		return noExpensesMessage, nil
	}
	return formatSummary(summary, s.currency), nil
}

func (s *HandlerService) promptID() (int64, string, error) {
	text, err := s.prompter.Prompt(idPrompt)
	if err != nil {
		return 0, "", err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, incorrectIDMessage, nil
	}
	return id, "", nil
}

func (s *HandlerService) promptPatch() (expense.Patch, string, error) {
	var patch expense.Patch

	amountText, err := s.prompter.Prompt(newAmountPrompt)
	if err != nil {
		return patch, "", err
	}
	if strings.TrimSpace(amountText) != "" {
		amount, err := expense.ParseAmount(amountText)
		if err != nil {
			return patch, incorrectAmountMessage, nil
		}
		patch.Amount = &amount
	}

	categoryText, err := s.prompter.Prompt(newCategoryPrompt)
	if err != nil {
		return patch, "", err
	}
	if strings.TrimSpace(categoryText) != "" {
		patch.Category = &categoryText
	}

	dateText, err := s.prompter.Prompt(newDatePrompt)
	if err != nil {
		return patch, "", err
	}
	if strings.TrimSpace(dateText) != "" {
		date, err := expense.ParseDate(strings.TrimSpace(dateText))
		if err != nil {
			return patch, incorrectDateMessage, nil
		}
		patch.Date = &date
	}

	descriptionText, err := s.prompter.Prompt(newDescriptionPrompt)
	if err != nil {
		return patch, "", err
	}
	if strings.TrimSpace(descriptionText) != "" {
		patch.Description = &descriptionText
	}

	return patch, "", nil
}
