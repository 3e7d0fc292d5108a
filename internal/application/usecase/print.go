package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/logging"
)

// PrintDeckUseCase renders the whole deck through a Printer.
type PrintDeckUseCase struct {
	store   *deck.Store
	printer port.Printer
}

// NewPrintDeckUseCase creates a new PrintDeckUseCase.
func NewPrintDeckUseCase(store *deck.Store, printer port.Printer) *PrintDeckUseCase {
	return &PrintDeckUseCase{
		store:   store,
		printer: printer,
	}
}

// Execute prints every slide in deck order and returns the output location.
func (uc *PrintDeckUseCase) Execute(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	out, err := uc.printer.Print(ctx, uc.store.All())
	if err != nil {
		return "", fmt.Errorf("print deck: %w", err)
	}

	log.Info().Str("output", out).Int("slides", uc.store.Count()).Msg("deck printed")
	return out, nil
}
