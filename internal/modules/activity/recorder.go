package activity

import (
	"context"
	"time"

	"vaultadmin/internal/modules/adminauth"

	"gorm.io/gorm"
)

// Recorder persists activity entries and pushes them to the live feed.
// It is the adminauth.ActivityRecorder used by the authorization core.
type Recorder struct {
	db  *gorm.DB
	hub *Hub
}

func NewRecorder(db *gorm.DB, hub *Hub) *Recorder {
	return &Recorder{db: db, hub: hub}
}

func (r *Recorder) Record(ctx context.Context, entry *adminauth.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	if r.hub != nil {
		r.hub.Broadcast(entry)
	}
	return nil
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]adminauth.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []adminauth.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteOlderThan trims the audit trail; used by the cleanup job, never by
// the core.
func (r *Recorder) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&adminauth.ActivityLog{}, "created_at < ?", cutoff)
	return res.RowsAffected, res.Error
}
