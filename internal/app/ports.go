package app

import (
	"context"

	"github.com/alexanderramin/visotime/internal/domain"
)

// Expected failures (validation, daily cap) come back as failed Results
// with a nil error. A non-nil error means storage or another environmental
// fault.

type ListEntriesUseCase interface {
	ListAll(ctx context.Context) (Result[[]domain.TimeEntry], error)
}

type CreateEntryUseCase interface {
	Create(ctx context.Context, candidate domain.NewTimeEntry) (Result[domain.TimeEntry], error)
}

type DeleteEntryUseCase interface {
	Delete(ctx context.Context, id string) (Result[struct{}], error)
}

// ImportEntriesUseCase stores a batch of candidates atomically: either all
// of them are created or none are.
type ImportEntriesUseCase interface {
	Import(ctx context.Context, candidates []domain.NewTimeEntry) (Result[[]domain.TimeEntry], error)
}
