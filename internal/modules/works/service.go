package works

import (
	"context"
	"errors"
	"time"

	"vaultadmin/internal/domain"
	"vaultadmin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultMaxContributions = 100

type Service struct {
	works         WorkRepository
	contributions ContributionRepository
	likes         LikeRepository
}

func NewService(works WorkRepository, contributions ContributionRepository, likes LikeRepository) *Service {
	return &Service{
		works:         works,
		contributions: contributions,
		likes:         likes,
	}
}

func (s *Service) GetWorks(ctx context.Context, f repository.WorkFilters) ([]domain.Work, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.works.GetAll(ctx, f)
}

// GetWork returns a work with its contributions in submission order.
func (s *Service) GetWork(ctx context.Context, id string) (*WorkDetail, error) {
	work, err := s.works.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	contributions, err := s.contributions.GetByWork(ctx, id)
	if err != nil {
		return nil, err
	}

	return &WorkDetail{Work: *work, Contributions: contributions}, nil
}

func (s *Service) CreateWork(ctx context.Context, req CreateWorkRequest) (*domain.Work, error) {
	maxContributions := req.MaxContributions
	if maxContributions <= 0 {
		maxContributions = defaultMaxContributions
	}
	author := req.Author
	if author == "" {
		author = "anonymous"
	}

	work := &domain.Work{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Content:          req.Content,
		Author:           author,
		AuthorID:         req.AuthorID,
		Category:         req.Category,
		IsPrivate:        req.IsPrivate,
		MaxContributions: maxContributions,
		CreatedDate:      time.Now(),
	}

	if err := s.works.Create(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *Service) UpdateWork(ctx context.Context, id string, req UpdateWorkRequest) (*domain.Work, error) {
	work, err := s.works.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.Content != nil {
		work.Content = *req.Content
	}
	if req.Author != nil {
		work.Author = *req.Author
	}
	if req.Category != nil {
		work.Category = *req.Category
	}
	if req.CompletionRate != nil {
		work.CompletionRate = *req.CompletionRate
	}
	if req.IsPrivate != nil {
		work.IsPrivate = *req.IsPrivate
	}
	if req.MaxContributions != nil {
		work.MaxContributions = *req.MaxContributions
	}

	if err := s.works.Update(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

// DeleteWork removes a work together with its contributions and likes.
func (s *Service) DeleteWork(ctx context.Context, id string) error {
	if _, err := s.works.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}

	if err := s.contributions.DeleteByWork(ctx, id); err != nil {
		return err
	}
	if err := s.likes.DeleteByWork(ctx, id); err != nil {
		return err
	}
	return s.works.Delete(ctx, id)
}
