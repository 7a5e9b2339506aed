package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vaultadmin/internal/config"
	"vaultadmin/internal/database"
	"vaultadmin/internal/domain"
	"vaultadmin/internal/jobs"
	"vaultadmin/internal/middleware"
	"vaultadmin/internal/modules/activity"
	"vaultadmin/internal/modules/adminauth"
	"vaultadmin/internal/modules/analytics"
	"vaultadmin/internal/modules/contributions"
	"vaultadmin/internal/modules/dummy"
	"vaultadmin/internal/modules/users"
	"vaultadmin/internal/modules/works"
	"vaultadmin/internal/pkg/ticket"
	"vaultadmin/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	if err := db.AutoMigrate(
		&adminauth.AdminAccount{},
		&adminauth.SessionRow{},
		&adminauth.ActivityLog{},
		&domain.Profile{},
		&domain.Work{},
		&domain.Contribution{},
		&domain.Like{},
	); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	hub := activity.NewHub()
	defer hub.Close()
	recorder := activity.NewRecorder(db, hub)
	tickets := ticket.New(cfg.TicketSecret, cfg.TicketTTL)

	var sessionStore adminauth.SessionStore
	if cfg.SessionFile != "" {
		sessionStore = adminauth.NewFileStore(cfg.SessionFile)
	}

	var authService *adminauth.Service
	var sessionRepo adminauth.SessionRepository
	switch cfg.AuthMode {
	case config.AuthModeStatic:
		logrus.Warn("AUTH_MODE=static uses the built-in demo accounts; never run this mode in production")
		authService = adminauth.NewService(
			adminauth.NewStaticStrategy(), nil, nil, nil, sessionStore, cfg.SessionTTL,
		)
	default:
		accountRepo := adminauth.NewAccountRepository(db)
		sessionRepo = adminauth.NewSessionRepository(db)
		authService = adminauth.NewService(
			adminauth.NewStoreStrategy(accountRepo),
			accountRepo,
			sessionRepo,
			recorder,
			sessionStore,
			cfg.SessionTTL,
		)
	}

	profileRepo := repository.NewProfileRepository(db)
	workRepo := repository.NewWorkRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	authHandler := adminauth.NewHandler(authService)
	usersHandler := users.NewHandler(users.NewService(profileRepo))
	worksHandler := works.NewHandler(works.NewService(workRepo, contributionRepo, likeRepo))
	contributionsHandler := contributions.NewHandler(contributions.NewService(contributionRepo, workRepo))
	dummyHandler := dummy.NewHandler(dummy.NewService(workRepo, contributionRepo, likeRepo, profileRepo))
	analyticsHandler := analytics.NewHandler(analytics.NewService(db))
	activityHandler := activity.NewHandler(recorder, tickets)
	wsHandler := activity.NewWSHandler(hub, tickets)

	scheduler := jobs.NewScheduler(sessionRepo, recorder, cfg.CleanupSchedule, cfg.ActivityKeep)
	if err := scheduler.Start(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to start maintenance scheduler")
	}
	defer scheduler.Stop()

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	v1 := r.Group("/api/v1")
	admin := v1.Group("/admin")
	{
		authHandler.RegisterRoutes(admin)

		// Ticket-authenticated; browsers cannot send headers on ws upgrades.
		admin.GET("/activity/feed", wsHandler.HandleWebSocket)

		protected := admin.Group("")
		protected.Use(adminauth.SessionAuth(authService))
		{
			usersHandler.RegisterRoutes(protected)
			worksHandler.RegisterRoutes(protected)
			contributionsHandler.RegisterRoutes(protected)
			dummyHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
			activityHandler.RegisterRoutes(protected)
		}
	}

	logrus.WithField("port", cfg.Port).Info("starting admin API")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
