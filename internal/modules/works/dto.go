package works

import "vaultadmin/internal/domain"

type CreateWorkRequest struct {
	Title            string  `json:"title" binding:"required"`
	Content          string  `json:"content" binding:"required"`
	Author           string  `json:"author"`
	AuthorID         *string `json:"author_id,omitempty"`
	Category         string  `json:"category"`
	IsPrivate        bool    `json:"is_private"`
	MaxContributions int     `json:"max_contributions"`
}

type UpdateWorkRequest struct {
	Title            *string  `json:"title,omitempty"`
	Content          *string  `json:"content,omitempty"`
	Author           *string  `json:"author,omitempty"`
	Category         *string  `json:"category,omitempty"`
	CompletionRate   *float64 `json:"completion_rate,omitempty"`
	IsPrivate        *bool    `json:"is_private,omitempty"`
	MaxContributions *int     `json:"max_contributions,omitempty"`
}

type WorkDetail struct {
	domain.Work
	Contributions []domain.Contribution `json:"contributions"`
}
