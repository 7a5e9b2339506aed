package adminauth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service is the admin authorization core. It authenticates operators,
// issues time-bounded bearer sessions, answers permission queries and keeps
// at most one "current" session per instance, rehydrated from the session
// store on construction.
//
// The sessions repository and activity recorder are nil in static mode; in
// that case issued sessions are tracked in memory only.
type Service struct {
	strategy CredentialStrategy
	accounts AccountRepository
	sessions SessionRepository
	activity ActivityRecorder
	store    SessionStore
	ttl      time.Duration
	now      func() time.Time

	mu          sync.RWMutex
	current     *Session
	memSessions map[string]*Session
}

func NewService(
	strategy CredentialStrategy,
	accounts AccountRepository,
	sessions SessionRepository,
	activity ActivityRecorder,
	store SessionStore,
	ttl time.Duration,
) *Service {
	s := &Service{
		strategy:    strategy,
		accounts:    accounts,
		sessions:    sessions,
		activity:    activity,
		store:       store,
		ttl:         ttl,
		now:         time.Now,
		memSessions: make(map[string]*Session),
	}
	s.rehydrate()
	return s
}

func (s *Service) rehydrate() {
	if s.store == nil {
		return
	}
	session, err := s.store.Load()
	if err != nil {
		logrus.WithError(err).Warn("adminauth: failed to load session snapshot")
		return
	}
	if session == nil {
		return
	}
	if !session.ExpiresAt.After(s.now()) {
		_ = s.store.Clear()
		return
	}
	s.current = session
	if s.sessions == nil {
		s.memSessions[session.Token] = session
	}
}

// Authenticate verifies the identifier/secret pair and issues a new
// session without touching the current-session state. Login failures with a
// known account are written to the activity log.
func (s *Service) Authenticate(ctx context.Context, identifier, secret, ip, userAgent string) (*Session, error) {
	account, err := s.strategy.FindAccount(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !s.strategy.VerifySecret(account, secret) {
		s.logActivity(ctx, &ActivityLog{
			AdminID:      account.ID,
			Action:       ActionLoginFailed,
			ResourceType: "admin_accounts",
			ResourceID:   account.ID,
			Details:      mustDetails(map[string]any{"reason": "invalid_password"}),
			IPAddress:    ip,
			UserAgent:    userAgent,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := s.strategy.GenerateToken()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.ttl)

	if s.sessions != nil {
		row := &SessionRow{
			AdminID:   account.ID,
			Token:     token,
			ExpiresAt: expiresAt,
			IPAddress: ip,
			UserAgent: userAgent,
		}
		if err := s.sessions.Create(ctx, row); err != nil {
			return nil, err
		}
	}

	if s.accounts != nil {
		if err := s.accounts.UpdateLastLogin(ctx, account.ID); err != nil {
			logrus.WithError(err).Warn("adminauth: failed to update last_login")
		}
	}

	s.logActivity(ctx, &ActivityLog{
		AdminID:      account.ID,
		Action:       ActionLoginSuccess,
		ResourceType: "admin_accounts",
		ResourceID:   account.ID,
		IPAddress:    ip,
		UserAgent:    userAgent,
	})

	admin := *account
	admin.PasswordHash = ""
	session := &Session{
		Admin:     admin,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if s.sessions == nil {
		s.mu.Lock()
		s.memSessions[token] = session
		s.mu.Unlock()
	}

	return session, nil
}

// Login authenticates and makes the resulting session current, persisting
// it to the session store.
func (s *Service) Login(ctx context.Context, identifier, secret, ip, userAgent string) (*Session, error) {
	session, err := s.Authenticate(ctx, identifier, secret, ip, userAgent)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(session); err != nil {
			logrus.WithError(err).Warn("adminauth: failed to persist session snapshot")
		}
	}

	return session, nil
}

// ValidateSession reports whether the current session is still usable.
// Expired or remotely revoked sessions demote the core to unauthenticated
// as a side effect; the happy path performs no writes.
func (s *Service) ValidateSession(ctx context.Context) bool {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return false
	}

	if !current.ExpiresAt.After(s.now()) {
		_ = s.Logout(ctx)
		return false
	}

	if s.sessions != nil {
		if _, err := s.sessions.GetByToken(ctx, current.Token); err != nil {
			_ = s.Logout(ctx)
			return false
		}
	}

	return true
}

// Logout clears local session state unconditionally. Removing the remote
// session row is best-effort.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			logrus.WithError(err).Warn("adminauth: failed to clear session snapshot")
		}
	}

	if current != nil {
		s.Revoke(ctx, current)
	}
	return nil
}

// Revoke deletes the session's durable record and logs the logout.
func (s *Service) Revoke(ctx context.Context, session *Session) {
	if session == nil {
		return
	}

	s.mu.Lock()
	delete(s.memSessions, session.Token)
	s.mu.Unlock()

	if s.sessions != nil {
		if err := s.sessions.DeleteByToken(ctx, session.Token); err != nil {
			logrus.WithError(err).Warn("adminauth: failed to delete session row")
		}
	}

	s.logActivity(ctx, &ActivityLog{
		AdminID:      session.Admin.ID,
		Action:       ActionLogout,
		ResourceType: "admin_accounts",
		ResourceID:   session.Admin.ID,
	})
}

// ResolveToken maps a bearer token from a request to its session. Expired
// sessions are removed as they are discovered.
func (s *Service) ResolveToken(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	if s.sessions == nil {
		s.mu.RLock()
		session, ok := s.memSessions[token]
		s.mu.RUnlock()
		if !ok {
			return nil, ErrSessionInvalid
		}
		if !session.ExpiresAt.After(s.now()) {
			s.mu.Lock()
			delete(s.memSessions, token)
			s.mu.Unlock()
			return nil, ErrSessionExpired
		}
		return session, nil
	}

	row, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	if !row.ExpiresAt.After(s.now()) {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			logrus.WithError(err).Warn("adminauth: failed to delete expired session")
		}
		return nil, ErrSessionExpired
	}

	account, err := s.accounts.GetByID(ctx, row.AdminID)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	if !account.IsActive {
		return nil, ErrSessionInvalid
	}

	admin := *account
	admin.PasswordHash = ""
	return &Session{
		Admin:     admin,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// HasPermission checks the current session. super_admin passes every check
// regardless of the stored map; everything else is a flat exact match.
func (s *Service) HasPermission(resource, action string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.HasPermission(resource, action)
}

func (s *Service) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) CurrentAdmin() *AdminAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	admin := s.current.Admin
	return &admin
}

type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     Role
}

// CreateAdmin inserts a new admin account. The actor must hold
// admin_accounts:write; the new account's permissions are seeded from the
// role's default table.
func (s *Service) CreateAdmin(ctx context.Context, actor *Session, input CreateAdminInput) (*AdminAccount, error) {
	if !actor.HasPermission("admin_accounts", "write") {
		return nil, ErrForbidden
	}
	if s.accounts == nil {
		return nil, ErrForbidden
	}
	if !input.Role.Valid() {
		return nil, errors.New("adminauth: unknown role")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &AdminAccount{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Permissions:  DefaultPermissions(input.Role),
		IsActive:     true,
		CreatedBy:    actor.Admin.ID,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	s.logActivity(ctx, &ActivityLog{
		AdminID:      actor.Admin.ID,
		Action:       ActionCreateAdmin,
		ResourceType: "admin_accounts",
		ResourceID:   account.ID,
		Details: mustDetails(map[string]any{
			"username": account.Username,
			"role":     string(account.Role),
		}),
	})

	created := *account
	created.PasswordHash = ""
	return &created, nil
}

func (s *Service) ListAdmins(ctx context.Context, actor *Session, limit, offset int) ([]AdminAccount, int64, error) {
	if !actor.HasPermission("admin_accounts", "read") {
		return nil, 0, ErrForbidden
	}
	if s.accounts == nil {
		return nil, 0, ErrForbidden
	}
	accounts, total, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, total, nil
}

func (s *Service) logActivity(ctx context.Context, entry *ActivityLog) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		logrus.WithError(err).Warn("adminauth: failed to record activity")
	}
}

func mustDetails(details map[string]any) string {
	b, err := json.Marshal(details)
	if err != nil {
		return ""
	}
	return string(b)
}
