package adminauth

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account *AdminAccount) error
	GetByID(ctx context.Context, id string) (*AdminAccount, error)
	// GetByIdentifier matches an active account by exact username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*AdminAccount, error)
	UpdateLastLogin(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]AdminAccount, int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, row *SessionRow) error
	GetByToken(ctx context.Context, token string) (*SessionRow, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ActivityRecorder receives audit entries. Recording is best-effort: the
// core ignores recorder failures.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *ActivityLog) error
}

// CredentialStrategy abstracts how an identifier/secret pair is checked.
// The store-backed strategy compares bcrypt hashes; the static strategy
// compares against the built-in demo table.
type CredentialStrategy interface {
	FindAccount(ctx context.Context, identifier string) (*AdminAccount, error)
	VerifySecret(account *AdminAccount, secret string) bool
	// GenerateToken produces a bearer token with the strategy's entropy.
	GenerateToken() (string, error)
}

// SessionStore is the durable local snapshot of the current session,
// reloaded when a new core instance starts.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}
