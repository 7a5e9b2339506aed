package adminauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashCost is the bcrypt cost used for admin passwords.
const HashCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// StoreStrategy verifies credentials against the admin_accounts table.
type StoreStrategy struct {
	accounts AccountRepository
}

func NewStoreStrategy(accounts AccountRepository) *StoreStrategy {
	return &StoreStrategy{accounts: accounts}
}

func (s *StoreStrategy) FindAccount(ctx context.Context, identifier string) (*AdminAccount, error) {
	account, err := s.accounts.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *StoreStrategy) VerifySecret(account *AdminAccount, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(secret)) == nil
}

func (s *StoreStrategy) GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

type staticAccount struct {
	account  AdminAccount
	password string
}

// StaticStrategy holds a fixed in-memory account table with plaintext
// passwords. Only for local demos; the server logs a warning when it is
// selected.
type StaticStrategy struct {
	accounts []staticAccount
}

func NewStaticStrategy() *StaticStrategy {
	now := time.Now()
	mk := func(id, username, email, password string, role Role) staticAccount {
		return staticAccount{
			account: AdminAccount{
				ID:          id,
				Username:    username,
				Email:       email,
				Role:        role,
				Permissions: DefaultPermissions(role),
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			password: password,
		}
	}
	return &StaticStrategy{
		accounts: []staticAccount{
			mk("super-admin-id", "superadmin", "admin@unfinishedvault.com", "Admin@2024!", RoleSuperAdmin),
			mk("admin-id", "admin", "admin2@unfinishedvault.com", "Admin@2024!", RoleAdmin),
			mk("moderator-id", "moderator", "mod@unfinishedvault.com", "Mod@2024!", RoleModerator),
			mk("viewer-id", "viewer", "viewer@unfinishedvault.com", "View@2024!", RoleViewer),
		},
	}
}

func (s *StaticStrategy) FindAccount(_ context.Context, identifier string) (*AdminAccount, error) {
	for i := range s.accounts {
		if s.accounts[i].account.Username == identifier || s.accounts[i].account.Email == identifier {
			account := s.accounts[i].account
			return &account, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (s *StaticStrategy) VerifySecret(account *AdminAccount, secret string) bool {
	for i := range s.accounts {
		if s.accounts[i].account.ID == account.ID {
			return subtle.ConstantTimeCompare([]byte(s.accounts[i].password), []byte(secret)) == 1
		}
	}
	return false
}

// GenerateToken mirrors the demo token shape of the original: random base36
// followed by a base36 timestamp. Low entropy, demo use only.
func (s *StaticStrategy) GenerateToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		return "", err
	}
	return n.Text(36) + strconv.FormatInt(time.Now().UnixMilli(), 36), nil
}
