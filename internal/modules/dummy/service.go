package dummy

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"vaultadmin/internal/domain"

	"github.com/google/uuid"
)

const maxGenerateCount = 500

var ErrNoCategories = errors.New("no matching categories selected")

type Service struct {
	works         WorkRepository
	contributions ContributionRepository
	likes         LikeRepository
	profiles      ProfileRepository
}

func NewService(
	works WorkRepository,
	contributions ContributionRepository,
	likes LikeRepository,
	profiles ProfileRepository,
) *Service {
	return &Service{
		works:         works,
		contributions: contributions,
		likes:         likes,
		profiles:      profiles,
	}
}

// Categories lists the available template category ids.
func (s *Service) Categories() []string {
	return categoryIDs()
}

// GenerateWorks inserts count works drawn from the templates of the
// selected categories. Generated works follow the original generator's
// distribution: completion 0.3-0.6, up to 100 views, up to 20 likes, one
// in five private. Randomness comes from the locked top-level rand
// functions; handlers call this concurrently.
func (s *Service) GenerateWorks(ctx context.Context, count int, categories []string) ([]domain.Work, error) {
	if count <= 0 {
		count = 10
	}
	if count > maxGenerateCount {
		count = maxGenerateCount
	}

	selected := selectCategories(categories)
	if len(selected) == 0 {
		return nil, ErrNoCategories
	}

	works := make([]domain.Work, 0, count)
	now := time.Now()
	for i := 0; i < count; i++ {
		ct := selected[rand.Intn(len(selected))]
		tpl := ct.Templates[rand.Intn(len(ct.Templates))]

		works = append(works, domain.Work{
			ID:               uuid.NewString(),
			Title:            fmt.Sprintf("%s %d", tpl.Title, i+1),
			Content:          tpl.Content,
			Author:           dummyAuthors[rand.Intn(len(dummyAuthors))],
			Category:         ct.Category,
			CompletionRate:   0.3 + rand.Float64()*0.3,
			ViewCount:        rand.Intn(100),
			LikeCount:        rand.Intn(20),
			IsPrivate:        rand.Float64() < 0.2,
			MaxContributions: tpl.MaxContributions,
			CreatedDate:      now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		})
	}

	if err := s.works.CreateBatch(ctx, works); err != nil {
		return nil, err
	}
	return works, nil
}

// GenerateUsers inserts count dummy profiles, all flagged is_dummy so the
// purge can find them again.
func (s *Service) GenerateUsers(ctx context.Context, count int) ([]domain.Profile, error) {
	if count <= 0 {
		count = 10
	}
	if count > maxGenerateCount {
		count = maxGenerateCount
	}

	profiles := make([]domain.Profile, 0, count)
	for i := 0; i < count; i++ {
		adjective := nicknameParts.adjectives[rand.Intn(len(nicknameParts.adjectives))]
		noun := nicknameParts.nouns[rand.Intn(len(nicknameParts.nouns))]
		nickname := fmt.Sprintf("%s_%s_%d", adjective, noun, rand.Intn(1000))

		profile := domain.Profile{
			ID:       uuid.NewString(),
			Nickname: nickname,
			Email:    fmt.Sprintf("%s@dummy.unfinishedvault.com", nickname),
			Status:   domain.StatusActive,
			Role:     "user",
			IsDummy:  true,
		}
		if err := s.profiles.Create(ctx, &profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

type PurgeResult struct {
	Works         int64 `json:"works"`
	Contributions int64 `json:"contributions"`
	Likes         int64 `json:"likes"`
}

// PurgeContent wipes all works, contributions and likes, matching the
// original dashboard's destructive "delete all" action.
func (s *Service) PurgeContent(ctx context.Context) (*PurgeResult, error) {
	contributions, err := s.contributions.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	works, err := s.works.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	return &PurgeResult{Works: works, Contributions: contributions, Likes: likes}, nil
}

// PurgeUsers removes every profile flagged is_dummy.
func (s *Service) PurgeUsers(ctx context.Context) (int64, error) {
	return s.profiles.DeleteDummies(ctx)
}

func selectCategories(ids []string) []categoryTemplate {
	if len(ids) == 0 {
		return categoryTemplates
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var selected []categoryTemplate
	for _, ct := range categoryTemplates {
		if wanted[ct.ID] {
			selected = append(selected, ct)
		}
	}
	return selected
}
