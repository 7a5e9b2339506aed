package contributions

import (
	"context"

	"vaultadmin/internal/domain"
)

type ContributionRepository interface {
	Create(ctx context.Context, c *domain.Contribution) error
	GetByID(ctx context.Context, id string) (*domain.Contribution, error)
	GetByWork(ctx context.Context, workID string) ([]domain.Contribution, error)
	Delete(ctx context.Context, id string) error
}

// WorkCounter adjusts contributor bookkeeping on the parent work.
type WorkCounter interface {
	GetByID(ctx context.Context, id string) (*domain.Work, error)
	AdjustContributors(ctx context.Context, id string, delta int) error
}
