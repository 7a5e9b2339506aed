package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AuthModeStore  = "store"
	AuthModeStatic = "static"
)

// Config holds the runtime configuration, populated from environment
// variables. Defaults are suitable for local development against SQLite.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"vaultadmin.db"`

	// AuthMode selects the credential strategy: "store" verifies bcrypt
	// hashes against admin_accounts, "static" uses the built-in demo table.
	AuthMode string `envconfig:"AUTH_MODE" default:"store"`

	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SessionFile string        `envconfig:"SESSION_FILE" default:""`

	// TicketSecret signs the short-lived tickets used to authenticate the
	// activity feed websocket.
	TicketSecret string        `envconfig:"TICKET_SECRET" default:"change-me-ticket-secret"`
	TicketTTL    time.Duration `envconfig:"TICKET_TTL" default:"60s"`

	CleanupSchedule string `envconfig:"CLEANUP_SCHEDULE" default:"@hourly"`
	ActivityKeep    int    `envconfig:"ACTIVITY_KEEP_DAYS" default:"90"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.AuthMode = strings.ToLower(strings.TrimSpace(cfg.AuthMode))
	switch cfg.AuthMode {
	case AuthModeStore, AuthModeStatic:
	default:
		return nil, fmt.Errorf("config: unknown AUTH_MODE %q", cfg.AuthMode)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive")
	}

	return &cfg, nil
}
