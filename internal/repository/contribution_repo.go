package repository

import (
	"context"

	"vaultadmin/internal/domain"

	"gorm.io/gorm"
)

type ContributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) DB() *gorm.DB {
	return r.db
}

func (r *ContributionRepository) Create(ctx context.Context, c *domain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributionRepository) GetByID(ctx context.Context, id string) (*domain.Contribution, error) {
	var c domain.Contribution
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContributionRepository) GetByWork(ctx context.Context, workID string) ([]domain.Contribution, error) {
	var contributions []domain.Contribution
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("timestamp ASC").
		Find(&contributions).Error
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Contribution{}, "id = ?", id).Error
}

func (r *ContributionRepository) DeleteByWork(ctx context.Context, workID string) error {
	return r.db.WithContext(ctx).Delete(&domain.Contribution{}, "work_id = ?", workID).Error
}

func (r *ContributionRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Contribution{})
	return res.RowsAffected, res.Error
}
