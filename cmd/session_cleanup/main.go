package main

import (
	"context"
	"time"

	"vaultadmin/internal/config"
	"vaultadmin/internal/database"
	"vaultadmin/internal/modules/activity"
	"vaultadmin/internal/modules/adminauth"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatalf("db connect failed")
	}

	ctx := context.Background()

	sessions := adminauth.NewSessionRepository(db)
	deleted, err := sessions.DeleteExpired(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("cleanup admin_sessions failed")
	}

	recorder := activity.NewRecorder(db, nil)
	cutoff := time.Now().Add(-time.Duration(cfg.ActivityKeep) * 24 * time.Hour)
	trimmed, err := recorder.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logrus.WithError(err).Fatal("cleanup admin_activity_logs failed")
	}

	logrus.Infof("cleanup completed: sessions=%d activity_logs=%d", deleted, trimmed)
}
