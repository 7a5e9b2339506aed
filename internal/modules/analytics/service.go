package analytics

import (
	"context"
	"time"

	"vaultadmin/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type Totals struct {
	ActiveUsers   int64 `json:"active_users"`
	Works         int64 `json:"works"`
	Contributions int64 `json:"contributions"`
	Likes         int64 `json:"likes"`
}

type Growth struct {
	UsersThisWeek         int64   `json:"users_this_week"`
	UsersChange           float64 `json:"users_change"`
	WorksThisWeek         int64   `json:"works_this_week"`
	WorksChange           float64 `json:"works_change"`
	ContributionsThisWeek int64   `json:"contributions_this_week"`
	ContributionsChange   float64 `json:"contributions_change"`
}

type DailyPoint struct {
	Date          string `json:"date"`
	Users         int64  `json:"users"`
	Works         int64  `json:"works"`
	Contributions int64  `json:"contributions"`
}

type DashboardStats struct {
	Totals Totals       `json:"totals"`
	Growth Growth       `json:"growth"`
	Daily  []DailyPoint `json:"daily"`
}

// GetDashboardStats assembles the numbers behind the dashboard landing
// page: overall totals, week-over-week growth and a 7-day daily series.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.loadTotals(ctx, &stats.Totals); err != nil {
		return nil, err
	}
	if err := s.loadGrowth(ctx, &stats.Growth); err != nil {
		return nil, err
	}
	daily, err := s.loadDaily(ctx)
	if err != nil {
		return nil, err
	}
	stats.Daily = daily

	return stats, nil
}

func (s *Service) loadTotals(ctx context.Context, t *Totals) error {
	db := s.db.WithContext(ctx)

	if err := db.Model(&domain.Profile{}).Where("status = ?", domain.StatusActive).Count(&t.ActiveUsers).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Work{}).Count(&t.Works).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Contribution{}).Count(&t.Contributions).Error; err != nil {
		return err
	}
	return db.Model(&domain.Like{}).Count(&t.Likes).Error
}

func (s *Service) loadGrowth(ctx context.Context, g *Growth) error {
	db := s.db.WithContext(ctx)
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var usersLastWeek, worksLastWeek, contributionsLastWeek int64

	if err := db.Model(&domain.Profile{}).Where("created_at >= ?", weekAgo).Count(&g.UsersThisWeek).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Profile{}).
		Where("created_at >= ? AND created_at < ?", twoWeeksAgo, weekAgo).
		Count(&usersLastWeek).Error; err != nil {
		return err
	}

	if err := db.Model(&domain.Work{}).Where("created_date >= ?", weekAgo).Count(&g.WorksThisWeek).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Work{}).
		Where("created_date >= ? AND created_date < ?", twoWeeksAgo, weekAgo).
		Count(&worksLastWeek).Error; err != nil {
		return err
	}

	if err := db.Model(&domain.Contribution{}).Where("timestamp >= ?", weekAgo).Count(&g.ContributionsThisWeek).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Contribution{}).
		Where("timestamp >= ? AND timestamp < ?", twoWeeksAgo, weekAgo).
		Count(&contributionsLastWeek).Error; err != nil {
		return err
	}

	g.UsersChange = weeklyChange(g.UsersThisWeek, usersLastWeek)
	g.WorksChange = weeklyChange(g.WorksThisWeek, worksLastWeek)
	g.ContributionsChange = weeklyChange(g.ContributionsThisWeek, contributionsLastWeek)
	return nil
}

func (s *Service) loadDaily(ctx context.Context) ([]DailyPoint, error) {
	db := s.db.WithContext(ctx)
	points := make([]DailyPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)

		point := DailyPoint{Date: start.Format("2006-01-02")}

		if err := db.Model(&domain.Profile{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&point.Users).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&domain.Work{}).
			Where("created_date >= ? AND created_date < ?", start, end).
			Count(&point.Works).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&domain.Contribution{}).
			Where("timestamp >= ? AND timestamp < ?", start, end).
			Count(&point.Contributions).Error; err != nil {
			return nil, err
		}

		points = append(points, point)
	}
	return points, nil
}

// weeklyChange returns the percentage change against the previous week.
// A previous week of zero reads as +100% when anything happened this week.
func weeklyChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}
