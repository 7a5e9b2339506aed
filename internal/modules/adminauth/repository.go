package adminauth

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *AdminAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*AdminAccount, error) {
	var account AdminAccount
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByIdentifier(ctx context.Context, identifier string) (*AdminAccount, error) {
	var account AdminAccount
	err := r.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND is_active = ?", identifier, identifier, true).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdateLastLogin(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&AdminAccount{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

func (r *accountRepository) List(ctx context.Context, limit, offset int) ([]AdminAccount, int64, error) {
	var accounts []AdminAccount
	var total int64

	db := r.db.WithContext(ctx).Model(&AdminAccount{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, row *SessionRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*SessionRow, error) {
	var row SessionRow
	if err := r.db.WithContext(ctx).First(&row, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&SessionRow{}, "token = ?", token).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&SessionRow{}, "expires_at < ?", time.Now())
	return res.RowsAffected, res.Error
}
