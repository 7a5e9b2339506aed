package domain

import "time"

// Contribution is a reader-submitted continuation of a work.
type Contribution struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkID    *string   `json:"work_id,omitempty" gorm:"type:uuid;index"`
	Author    string    `json:"author"`
	AuthorID  *string   `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	LikeCount int       `json:"like_count" gorm:"default:0"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

func (Contribution) TableName() string {
	return "contributions"
}
