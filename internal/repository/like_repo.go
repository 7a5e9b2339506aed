package repository

import (
	"context"

	"vaultadmin/internal/domain"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) DB() *gorm.DB {
	return r.db
}

func (r *LikeRepository) DeleteByWork(ctx context.Context, workID string) error {
	return r.db.WithContext(ctx).Delete(&domain.Like{}, "work_id = ?", workID).Error
}

func (r *LikeRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Like{})
	return res.RowsAffected, res.Error
}
