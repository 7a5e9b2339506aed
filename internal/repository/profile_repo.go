package repository

import (
	"context"
	"strings"
	"time"

	"vaultadmin/internal/domain"

	"gorm.io/gorm"
)

type ProfileFilters struct {
	Status string
	Search string
	Dummy  *bool
	Limit  int
	Offset int
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) DB() *gorm.DB {
	return r.db
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetAll(ctx context.Context, f ProfileFilters) ([]domain.Profile, int64, error) {
	var profiles []domain.Profile
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Profile{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Dummy != nil {
		q = q.Where("is_dummy = ?", *f.Dummy)
	}
	if f.Search != "" {
		pattern := "%" + strings.TrimSpace(f.Search) + "%"
		q = q.Where("nickname LIKE ? OR email LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *ProfileRepository) UpdateStatus(ctx context.Context, id string, status domain.ProfileStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Profile{}, "id = ?", id).Error
}

func (r *ProfileRepository) DeleteDummies(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Profile{}, "is_dummy = ?", true)
	return res.RowsAffected, res.Error
}
