package domain

import "time"

// Work is an unfinished piece open for contributions.
type Work struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string    `json:"title" gorm:"not null"`
	Content           string    `json:"content" gorm:"type:text"`
	Author            string    `json:"author"`
	AuthorID          *string   `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Category          string    `json:"category" gorm:"index"`
	CompletionRate    float64   `json:"completion_rate" gorm:"default:0"`
	ContributorsCount int       `json:"contributors_count" gorm:"default:0"`
	ViewCount         int       `json:"view_count" gorm:"default:0"`
	LikeCount         int       `json:"like_count" gorm:"default:0"`
	IsPrivate         bool      `json:"is_private" gorm:"default:false"`
	MaxContributions  int       `json:"max_contributions" gorm:"default:100"`
	CreatedDate       time.Time `json:"created_date" gorm:"index"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Work) TableName() string {
	return "works"
}
