package adminauth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, account *AdminAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*AdminAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminAccount), args.Error(1)
}

func (m *mockAccountRepo) GetByIdentifier(ctx context.Context, identifier string) (*AdminAccount, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminAccount), args.Error(1)
}

func (m *mockAccountRepo) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAccountRepo) List(ctx context.Context, limit, offset int) ([]AdminAccount, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]AdminAccount), args.Get(1).(int64), args.Error(2)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, row *SessionRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*SessionRow, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionRow), args.Error(1)
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, entry *ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	require.NoError(t, err)
	return string(hash)
}

func adminAccount(t *testing.T, role Role, password string) *AdminAccount {
	t.Helper()
	return &AdminAccount{
		ID:           "admin-1",
		Username:     "admin",
		Email:        "admin@unfinishedvault.com",
		PasswordHash: hashFor(t, password),
		Role:         role,
		Permissions:  DefaultPermissions(role),
		IsActive:     true,
	}
}

func TestService_Login_Success(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *ActivityLog) bool {
		return e.Action == ActionLoginSuccess
	})).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)
	before := time.Now()

	session, err := svc.Login(context.Background(), "admin", "Admin@2024!", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Len(t, session.Token, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", session.Token)
	assert.WithinDuration(t, before.Add(24*time.Hour), session.ExpiresAt, 2*time.Second)
	assert.Equal(t, RoleAdmin, session.Admin.Role)
	assert.Empty(t, session.Admin.PasswordHash)

	assert.True(t, svc.HasPermission("works", "delete"))
	assert.False(t, svc.HasPermission("admin_accounts", "write"))

	accounts.AssertCalled(t, "UpdateLastLogin", mock.Anything, account.ID)
	sessions.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	recorder.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *ActivityLog) bool {
		return e.Action == ActionLoginFailed
	})).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	session, err := svc.Login(context.Background(), "admin", "wrong", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, session)
	assert.Nil(t, svc.Session())

	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	accounts.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything)
	recorder.AssertExpectations(t)
}

func TestService_Login_UnknownIdentifier(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	accounts.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	session, err := svc.Login(context.Background(), "ghost", "whatever", "", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, session)

	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestService_ValidateSession_HappyPath(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	session, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)

	sessions.On("GetByToken", mock.Anything, session.Token).Return(&SessionRow{
		AdminID:   account.ID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil)

	assert.True(t, svc.ValidateSession(context.Background()))
	assert.NotNil(t, svc.Session())
}

func TestService_ValidateSession_Expired(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("DeleteByToken", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	_, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)

	// Move the clock past the expiry.
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	assert.False(t, svc.ValidateSession(context.Background()))
	assert.Nil(t, svc.Session())
	sessions.AssertCalled(t, "DeleteByToken", mock.Anything, mock.Anything)
}

func TestService_ValidateSession_RowGone(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("GetByToken", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	sessions.On("DeleteByToken", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	_, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)

	assert.False(t, svc.ValidateSession(context.Background()))
	assert.Nil(t, svc.Session())
}

func TestService_Logout_ThenValidate(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("DeleteByToken", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, nil, 24*time.Hour)

	session, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.ValidateSession(context.Background()))
	assert.False(t, svc.HasPermission("works", "read"))
	sessions.AssertCalled(t, "DeleteByToken", mock.Anything, session.Token)

	// Logging out again is harmless.
	require.NoError(t, svc.Logout(context.Background()))
}

func TestService_HasPermission_SuperAdminOverride(t *testing.T) {
	session := &Session{
		Admin: AdminAccount{
			Role: RoleSuperAdmin,
			// Deliberately empty: the override must not consult the map.
			Permissions: PermissionMap{},
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	for _, resource := range []string{"users", "works", "contributions", "dummy_data", "analytics", "admin_accounts", "settings", "does_not_exist"} {
		for _, action := range []string{"read", "write", "delete", "create", "made_up"} {
			assert.True(t, session.HasPermission(resource, action), "%s:%s", resource, action)
		}
	}
}

func TestService_HasPermission_FlatMatch(t *testing.T) {
	session := &Session{
		Admin: AdminAccount{
			Role:        RoleModerator,
			Permissions: DefaultPermissions(RoleModerator),
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	assert.True(t, session.HasPermission("works", "read"))
	assert.True(t, session.HasPermission("works", "write"))
	assert.False(t, session.HasPermission("works", "delete"))
	assert.False(t, session.HasPermission("users", "read"))
	assert.False(t, session.HasPermission("unknown", "read"))

	var none *Session
	assert.False(t, none.HasPermission("works", "read"))
}

func TestService_CreateAdmin_Forbidden(t *testing.T) {
	accounts := new(mockAccountRepo)
	recorder := new(mockRecorder)

	svc := NewService(NewStoreStrategy(accounts), accounts, new(mockSessionRepo), recorder, nil, 24*time.Hour)

	viewer := &Session{
		Admin: AdminAccount{
			ID:          "viewer-1",
			Role:        RoleViewer,
			Permissions: DefaultPermissions(RoleViewer),
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	created, err := svc.CreateAdmin(context.Background(), viewer, CreateAdminInput{
		Username: "new-admin",
		Email:    "new@unfinishedvault.com",
		Password: "Password123!",
		Role:     RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, created)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateAdmin_Success(t *testing.T) {
	accounts := new(mockAccountRepo)
	recorder := new(mockRecorder)

	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *AdminAccount) bool {
		return a.Username == "mod2" &&
			a.Role == RoleModerator &&
			a.Permissions.Allows("works", "write") &&
			!a.Permissions.Allows("users", "read") &&
			a.PasswordHash != "" && a.PasswordHash != "Mod@2024!"
	})).Return(nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *ActivityLog) bool {
		return e.Action == ActionCreateAdmin && e.AdminID == "super-1"
	})).Return(nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, new(mockSessionRepo), recorder, nil, 24*time.Hour)

	actor := &Session{
		Admin:     AdminAccount{ID: "super-1", Role: RoleSuperAdmin},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	created, err := svc.CreateAdmin(context.Background(), actor, CreateAdminInput{
		Username: "mod2",
		Email:    "mod2@unfinishedvault.com",
		Password: "Mod@2024!",
		Role:     RoleModerator,
	})
	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)
	assert.Equal(t, "super-1", created.CreatedBy)
	accounts.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestService_CreateAdmin_Duplicate(t *testing.T) {
	accounts := new(mockAccountRepo)

	accounts.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewService(NewStoreStrategy(accounts), accounts, new(mockSessionRepo), nil, nil, 24*time.Hour)

	actor := &Session{
		Admin:     AdminAccount{ID: "super-1", Role: RoleSuperAdmin},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	_, err := svc.CreateAdmin(context.Background(), actor, CreateAdminInput{
		Username: "admin",
		Email:    "admin@unfinishedvault.com",
		Password: "Password123!",
		Role:     RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestService_SessionRoundTrip(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)
	recorder := new(mockRecorder)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	accounts.On("GetByIdentifier", mock.Anything, "admin").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, store, 24*time.Hour)
	session, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)

	// A fresh core instance rehydrates from the same store.
	fresh := NewService(NewStoreStrategy(accounts), accounts, sessions, recorder, store, 24*time.Hour)
	rehydrated := fresh.Session()
	require.NotNil(t, rehydrated)
	assert.Equal(t, session.Token, rehydrated.Token)
	assert.Equal(t, session.Admin.ID, rehydrated.Admin.ID)
	assert.Equal(t, session.Admin.Role, rehydrated.Admin.Role)
	assert.Equal(t, session.Admin.Permissions, rehydrated.Admin.Permissions)
	assert.True(t, fresh.HasPermission("works", "delete"))
}

func TestService_RehydrateDiscardsExpired(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&Session{
		Admin:     AdminAccount{ID: "admin-1", Role: RoleAdmin},
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	svc := NewService(NewStaticStrategy(), nil, nil, nil, store, 24*time.Hour)
	assert.Nil(t, svc.Session())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestService_StaticStrategy_Login(t *testing.T) {
	svc := NewService(NewStaticStrategy(), nil, nil, nil, nil, 24*time.Hour)

	session, err := svc.Login(context.Background(), "admin", "Admin@2024!", "", "")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, session.Admin.Role)
	assert.NotEmpty(t, session.Token)
	assert.True(t, svc.ValidateSession(context.Background()))

	resolved, err := svc.ResolveToken(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Admin.ID, resolved.Admin.ID)

	_, err = svc.Login(context.Background(), "admin", "wrong", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "Admin@2024!", "", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_ResolveToken(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)

	account := adminAccount(t, RoleModerator, "Mod@2024!")
	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, nil, nil, 24*time.Hour)

	sessions.On("GetByToken", mock.Anything, "live").Return(&SessionRow{
		AdminID:   account.ID,
		Token:     "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	accounts.On("GetByID", mock.Anything, account.ID).Return(account, nil)

	resolved, err := svc.ResolveToken(context.Background(), "live")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, resolved.Admin.Role)
	assert.Empty(t, resolved.Admin.PasswordHash)

	sessions.On("GetByToken", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.ResolveToken(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	sessions.On("GetByToken", mock.Anything, "stale").Return(&SessionRow{
		AdminID:   account.ID,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	sessions.On("DeleteByToken", mock.Anything, "stale").Return(nil)
	_, err = svc.ResolveToken(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrSessionExpired)
	sessions.AssertCalled(t, "DeleteByToken", mock.Anything, "stale")

	_, err = svc.ResolveToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestService_ResolveToken_InactiveAccount(t *testing.T) {
	accounts := new(mockAccountRepo)
	sessions := new(mockSessionRepo)

	account := adminAccount(t, RoleAdmin, "Admin@2024!")
	account.IsActive = false

	sessions.On("GetByToken", mock.Anything, "deactivated").Return(&SessionRow{
		AdminID:   account.ID,
		Token:     "deactivated",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	accounts.On("GetByID", mock.Anything, account.ID).Return(account, nil)

	svc := NewService(NewStoreStrategy(accounts), accounts, sessions, nil, nil, 24*time.Hour)

	_, err := svc.ResolveToken(context.Background(), "deactivated")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}
