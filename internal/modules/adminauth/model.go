package adminauth

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Role string

const (
	RoleViewer     Role = "viewer"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleModerator, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// PermissionMap maps a resource name to the set of allowed actions.
// Stored as JSON; the stored map is authoritative at check time, the role
// only seeds the defaults.
type PermissionMap map[string][]string

func (m PermissionMap) Value() (driver.Value, error) {
	if m == nil {
		m = PermissionMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *PermissionMap) Scan(value interface{}) error {
	if value == nil {
		*m = PermissionMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("adminauth: unsupported permission map column type")
}

// Allows reports whether the map grants action on resource. Flat exact
// match, no wildcards.
func (m PermissionMap) Allows(resource, action string) bool {
	for _, a := range m[resource] {
		if a == action {
			return true
		}
	}
	return false
}

// AdminAccount represents a dashboard operator.
type AdminAccount struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string        `json:"username" gorm:"uniqueIndex;not null"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string        `json:"-" gorm:"not null"`
	Role         Role          `json:"role" gorm:"default:'viewer'"`
	Permissions  PermissionMap `json:"permissions" gorm:"type:text"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time    `json:"last_login,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (AdminAccount) TableName() string {
	return "admin_accounts"
}

// Session is the bearer-token proof of a successful login, held by the
// client until ExpiresAt.
type Session struct {
	Admin     AdminAccount `json:"admin"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// HasPermission applies the flat permission check with the super_admin
// override. The override ignores the stored map entirely.
func (s *Session) HasPermission(resource, action string) bool {
	if s == nil {
		return false
	}
	if s.Admin.Role == RoleSuperAdmin {
		return true
	}
	return s.Admin.Permissions.Allows(resource, action)
}

// SessionRow is the durable server-side record of an issued session.
type SessionRow struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AdminID   string    `json:"admin_id" gorm:"type:uuid;index;not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

func (SessionRow) TableName() string {
	return "admin_sessions"
}

// Activity log action tags.
const (
	ActionLoginSuccess = "login_success"
	ActionLoginFailed  = "login_failed"
	ActionLogout       = "logout"
	ActionCreateAdmin  = "create_admin"
)

// ActivityLog is an append-only audit record. The core only ever writes
// these; it never reads them back.
type ActivityLog struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	AdminID      string    `json:"admin_id" gorm:"type:uuid;index"`
	Action       string    `json:"action" gorm:"index;not null"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Details      string    `json:"details,omitempty" gorm:"type:text"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

func (ActivityLog) TableName() string {
	return "admin_activity_logs"
}

// DefaultPermissions returns the permission map seeded for a new account of
// the given role.
func DefaultPermissions(role Role) PermissionMap {
	switch role {
	case RoleSuperAdmin:
		return PermissionMap{
			"users":          {"read", "write", "delete"},
			"works":          {"read", "write", "delete"},
			"contributions":  {"read", "write", "delete"},
			"dummy_data":     {"create", "delete"},
			"analytics":      {"read"},
			"admin_accounts": {"read", "write", "delete"},
			"settings":       {"read", "write"},
		}
	case RoleAdmin:
		return PermissionMap{
			"users":         {"read", "write"},
			"works":         {"read", "write", "delete"},
			"contributions": {"read", "write", "delete"},
			"dummy_data":    {"create"},
			"analytics":     {"read"},
		}
	case RoleModerator:
		return PermissionMap{
			"works":         {"read", "write"},
			"contributions": {"read", "write"},
			"analytics":     {"read"},
		}
	case RoleViewer:
		return PermissionMap{
			"users":         {"read"},
			"works":         {"read"},
			"contributions": {"read"},
			"analytics":     {"read"},
		}
	default:
		return PermissionMap{}
	}
}
