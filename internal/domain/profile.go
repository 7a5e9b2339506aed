package domain

import "time"

type ProfileStatus string

const (
	StatusActive    ProfileStatus = "active"
	StatusInactive  ProfileStatus = "inactive"
	StatusPending   ProfileStatus = "pending"
	StatusSuspended ProfileStatus = "suspended"
	StatusDeleted   ProfileStatus = "deleted"
)

func (s ProfileStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

// Profile is a platform user as seen by the dashboard.
type Profile struct {
	ID        string        `json:"id" gorm:"type:uuid;primaryKey"`
	Nickname  string        `json:"nickname"`
	Email     string        `json:"email" gorm:"index"`
	AppleID   string        `json:"apple_id,omitempty"`
	Status    ProfileStatus `json:"status" gorm:"default:'active';index"`
	Role      string        `json:"role" gorm:"default:'user'"`
	IsDummy   bool          `json:"is_dummy" gorm:"default:false;index"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
