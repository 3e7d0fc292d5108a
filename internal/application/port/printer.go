package port

import (
	"context"

	"github.com/bnema/lectern/internal/domain/entity"
)

// Printer renders slides into a printable artifact.
type Printer interface {
	// Print writes the slides and returns where the output went.
	Print(ctx context.Context, slides []entity.Slide) (string, error)
}
