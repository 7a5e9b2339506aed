package contributions

import (
	"context"
	"errors"
	"time"

	"vaultadmin/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	contributions ContributionRepository
	works         WorkCounter
}

func NewService(contributions ContributionRepository, works WorkCounter) *Service {
	return &Service{contributions: contributions, works: works}
}

func (s *Service) GetByWork(ctx context.Context, workID string) ([]domain.Contribution, error) {
	if _, err := s.works.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return s.contributions.GetByWork(ctx, workID)
}

type CreateInput struct {
	WorkID   string
	Author   string
	AuthorID *string
	Content  string
}

// Create appends a contribution to a work, respecting the work's
// max_contributions cap and keeping contributors_count in step.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Contribution, error) {
	work, err := s.works.GetByID(ctx, input.WorkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	if work.MaxContributions > 0 && work.ContributorsCount >= work.MaxContributions {
		return nil, ErrWorkFull
	}

	author := input.Author
	if author == "" {
		author = "anonymous"
	}

	workID := input.WorkID
	contribution := &domain.Contribution{
		ID:        uuid.NewString(),
		WorkID:    &workID,
		Author:    author,
		AuthorID:  input.AuthorID,
		Content:   input.Content,
		Timestamp: time.Now(),
	}

	if err := s.contributions.Create(ctx, contribution); err != nil {
		return nil, err
	}
	if err := s.works.AdjustContributors(ctx, input.WorkID, 1); err != nil {
		return nil, err
	}
	return contribution, nil
}

// Delete removes a contribution and decrements the parent work's
// contributor count when the contribution is still attached to one.
func (s *Service) Delete(ctx context.Context, id string) error {
	contribution, err := s.contributions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContributionNotFound
		}
		return err
	}

	if err := s.contributions.Delete(ctx, id); err != nil {
		return err
	}

	if contribution.WorkID != nil {
		if err := s.works.AdjustContributors(ctx, *contribution.WorkID, -1); err != nil {
			return err
		}
	}
	return nil
}
