package main

import (
	"fmt"
	"math/rand"
	"time"

	"vaultadmin/internal/config"
	"vaultadmin/internal/database"
	"vaultadmin/internal/domain"
	"vaultadmin/internal/modules/adminauth"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

type seedAdmin struct {
	Username string
	Email    string
	Password string
	Role     adminauth.Role
}

var defaultAdmins = []seedAdmin{
	{"superadmin", "admin@unfinishedvault.com", "Admin@2024!", adminauth.RoleSuperAdmin},
	{"admin", "admin2@unfinishedvault.com", "Admin@2024!", adminauth.RoleAdmin},
	{"moderator", "mod@unfinishedvault.com", "Mod@2024!", adminauth.RoleModerator},
	{"viewer", "viewer@unfinishedvault.com", "View@2024!", adminauth.RoleViewer},
}

func main() {
	_ = godotenv.Load()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("db connection failed")
	}

	logrus.Info("running AutoMigrate...")
	if err := db.AutoMigrate(
		&adminauth.AdminAccount{},
		&adminauth.SessionRow{},
		&adminauth.ActivityLog{},
		&domain.Profile{},
		&domain.Work{},
		&domain.Contribution{},
		&domain.Like{},
	); err != nil {
		logrus.WithError(err).Fatal("AutoMigrate failed")
	}

	// ================== ADMIN ACCOUNTS ==================
	logrus.Info("creating admin accounts...")

	for _, a := range defaultAdmins {
		hash, err := adminauth.HashPassword(a.Password)
		if err != nil {
			logrus.WithError(err).Fatal("hash failed")
		}

		account := adminauth.AdminAccount{
			ID:           uuid.NewString(),
			Username:     a.Username,
			Email:        a.Email,
			PasswordHash: hash,
			Role:         a.Role,
			Permissions:  adminauth.DefaultPermissions(a.Role),
			IsActive:     true,
		}

		// Existing accounts are left untouched so re-seeding is safe.
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&account).Error; err != nil {
			logrus.WithError(err).Fatalf("failed to create admin %s", a.Username)
		}
		logrus.Infof("  %s (%s)", a.Username, a.Role)
	}

	// ================== SAMPLE PROFILES ==================
	logrus.Info("creating sample profiles...")

	nicknames := []string{"dawn_reader", "late_editor", "story_hopper", "margin_note", "first_draft"}
	profileIDs := make([]string, 0, len(nicknames))
	for _, nickname := range nicknames {
		p := domain.Profile{
			ID:       uuid.NewString(),
			Nickname: nickname,
			Email:    fmt.Sprintf("%s@unfinishedvault.com", nickname),
			Status:   domain.StatusActive,
			Role:     "user",
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			logrus.WithError(err).Fatal("failed to create profile")
		}
		profileIDs = append(profileIDs, p.ID)
	}

	// ================== SAMPLE WORKS ==================
	logrus.Info("creating sample works...")

	samples := []struct {
		Title    string
		Content  string
		Category string
	}{
		{"The Unfinished Lighthouse", "The keeper left mid-sentence, and the light has been asking for an ending ever since.", "novel"},
		{"Letters I Never Sent", "Dear you. I am starting this letter for the eleventh time.", "essay"},
		{"Rain Check", "The rain agreed to wait\nbut only until the last line\nis written by someone else", "poetry"},
	}

	for i, sample := range samples {
		authorID := profileIDs[i%len(profileIDs)]
		work := domain.Work{
			ID:               uuid.NewString(),
			Title:            sample.Title,
			Content:          sample.Content,
			Author:           nicknames[i%len(nicknames)],
			AuthorID:         &authorID,
			Category:         sample.Category,
			CompletionRate:   0.3 + rng.Float64()*0.3,
			ViewCount:        rng.Intn(200),
			LikeCount:        rng.Intn(40),
			MaxContributions: 5 + rng.Intn(5),
			CreatedDate:      time.Now().AddDate(0, 0, -rng.Intn(14)),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&work).Error; err != nil {
			logrus.WithError(err).Fatal("failed to create work")
		}

		workID := work.ID
		contribution := domain.Contribution{
			ID:        uuid.NewString(),
			WorkID:    &workID,
			Author:    nicknames[(i+1)%len(nicknames)],
			Content:   "And then, as if the story had been waiting for exactly this reader, the next line arrived.",
			Timestamp: work.CreatedDate.Add(24 * time.Hour),
		}
		if err := db.Create(&contribution).Error; err != nil {
			logrus.WithError(err).Fatal("failed to create contribution")
		}
		if err := db.Model(&domain.Work{}).Where("id = ?", work.ID).
			Update("contributors_count", 1).Error; err != nil {
			logrus.WithError(err).Fatal("failed to update contributors count")
		}
	}

	logrus.Info("seed completed")
}
