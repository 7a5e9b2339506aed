package users

import (
	"context"

	"vaultadmin/internal/domain"
	"vaultadmin/internal/repository"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetAll(ctx context.Context, f repository.ProfileFilters) ([]domain.Profile, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProfileStatus) error
	Delete(ctx context.Context, id string) error
}
