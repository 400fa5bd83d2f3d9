package messages

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/yasmin-gamal1/personal-expense-tracker/internal/logger"
)

type console interface {
	Print(text string) error
	Prompt(label string) (string, error)
	Confirm(label string) (bool, error)
}

type config interface {
	CurrencySymbol() string
	ConfirmDelete() bool
}

type Service struct {
	console console
	handler *HandlerService
}

func NewService(console console, storage expenseStorage, reports reportGenerator, config config) *Service {
	return &Service{
		console: console,
		handler: newHandler(console, storage, reports, config),
	}
}

// Run serves the menu until the user exits, input closes, or ctx is done.
func (s *Service) Run(ctx context.Context) {
	logger.Info("start serving the menu")
	_ = s.console.Print(helloMessage)

	for {
		select {
		case <-ctx.Done():
			logger.Info("stop serving the menu")
			return
		default:
		}

		if !s.serveOnce() {
			logger.Info("stop serving the menu")
			return
		}
	}
}

func (s *Service) serveOnce() bool {
	_ = s.console.Print("\n" + menuMessage)

	choice, err := s.console.Prompt(selectPrompt)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Error("reading selection", zap.Error(err))
		}
		return false
	}
	if strings.TrimSpace(choice) == exitOption {
		_ = s.console.Print(byeMessage)
		return false
	}

	resp, err := s.handler.HandleSelection(choice)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}
		logger.Error("error processing selection", zap.Error(err))
		if resp == "" {
			resp = somethingWrongMessage
		}
	}
	_ = s.console.Print(resp)
	return true
}
