package users

import (
	"context"
	"errors"

	"vaultadmin/internal/domain"
	"vaultadmin/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) GetProfiles(ctx context.Context, f repository.ProfileFilters) ([]domain.Profile, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.profiles.GetAll(ctx, f)
}

func (s *Service) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.ProfileStatus) (*domain.Profile, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := s.GetProfile(ctx, id); err != nil {
		return nil, err
	}
	if err := s.profiles.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, id)
}

func (s *Service) DeleteProfile(ctx context.Context, id string) error {
	if _, err := s.GetProfile(ctx, id); err != nil {
		return err
	}
	return s.profiles.Delete(ctx, id)
}
