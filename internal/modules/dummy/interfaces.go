package dummy

import (
	"context"

	"vaultadmin/internal/domain"
)

type WorkRepository interface {
	CreateBatch(ctx context.Context, works []domain.Work) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ContributionRepository interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type LikeRepository interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	DeleteDummies(ctx context.Context) (int64, error)
}
