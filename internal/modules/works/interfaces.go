package works

import (
	"context"

	"vaultadmin/internal/domain"
	"vaultadmin/internal/repository"
)

type WorkRepository interface {
	Create(ctx context.Context, w *domain.Work) error
	GetByID(ctx context.Context, id string) (*domain.Work, error)
	GetAll(ctx context.Context, f repository.WorkFilters) ([]domain.Work, int64, error)
	Update(ctx context.Context, w *domain.Work) error
	Delete(ctx context.Context, id string) error
}

type ContributionRepository interface {
	GetByWork(ctx context.Context, workID string) ([]domain.Contribution, error)
	DeleteByWork(ctx context.Context, workID string) error
}

type LikeRepository interface {
	DeleteByWork(ctx context.Context, workID string) error
}
