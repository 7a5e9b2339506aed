package repository

import (
	"context"
	"strings"

	"vaultadmin/internal/domain"

	"gorm.io/gorm"
)

type WorkFilters struct {
	Category string
	Search   string
	Private  *bool
	Limit    int
	Offset   int
}

type WorkRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

func (r *WorkRepository) DB() *gorm.DB {
	return r.db
}

func (r *WorkRepository) Create(ctx context.Context, w *domain.Work) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkRepository) CreateBatch(ctx context.Context, works []domain.Work) error {
	if len(works) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&works).Error
}

func (r *WorkRepository) GetByID(ctx context.Context, id string) (*domain.Work, error) {
	var w domain.Work
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkRepository) GetAll(ctx context.Context, f WorkFilters) ([]domain.Work, int64, error) {
	var works []domain.Work
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Work{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Private != nil {
		q = q.Where("is_private = ?", *f.Private)
	}
	if f.Search != "" {
		pattern := "%" + strings.TrimSpace(f.Search) + "%"
		q = q.Where("title LIKE ? OR author LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_date DESC").Limit(f.Limit).Offset(f.Offset).Find(&works).Error
	if err != nil {
		return nil, 0, err
	}

	return works, total, nil
}

func (r *WorkRepository) Update(ctx context.Context, w *domain.Work) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WorkRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Work{}, "id = ?", id).Error
}

func (r *WorkRepository) AdjustContributors(ctx context.Context, id string, delta int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Work{}).
		Where("id = ?", id).
		Update("contributors_count", gorm.Expr("contributors_count + ?", delta)).Error
}

// DeleteAll wipes every work. Used by the dummy-data purge, which in the
// source removed the whole table rather than tracking generated rows.
func (r *WorkRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Work{})
	return res.RowsAffected, res.Error
}
