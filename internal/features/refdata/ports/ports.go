package ports

import (
	"context"

	"waste-movements/internal/features/refdata/domain"
)

// ReferenceDataProvider is the secondary port for the seeded regulatory
// lists the form pages render.
type ReferenceDataProvider interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	WasteCodes(ctx context.Context) ([]domain.WasteCodeGroup, error)
	EWCCodes(ctx context.Context) ([]domain.EWCCode, error)
	Pops(ctx context.Context) ([]domain.Pop, error)
}
