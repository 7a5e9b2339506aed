package adminauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionMap_Allows(t *testing.T) {
	perms := PermissionMap{
		"works": {"read", "write"},
	}

	assert.True(t, perms.Allows("works", "read"))
	assert.True(t, perms.Allows("works", "write"))
	assert.False(t, perms.Allows("works", "delete"))
	assert.False(t, perms.Allows("users", "read"))

	var empty PermissionMap
	assert.False(t, empty.Allows("works", "read"))
}

func TestPermissionMap_ScanValue(t *testing.T) {
	perms := DefaultPermissions(RoleAdmin)

	value, err := perms.Value()
	require.NoError(t, err)

	var scanned PermissionMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, perms, scanned)

	var fromNil PermissionMap
	require.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
	assert.False(t, fromNil.Allows("works", "read"))

	assert.Error(t, scanned.Scan(42))
}

func TestDefaultPermissions(t *testing.T) {
	super := DefaultPermissions(RoleSuperAdmin)
	assert.True(t, super.Allows("admin_accounts", "write"))
	assert.True(t, super.Allows("settings", "write"))
	assert.True(t, super.Allows("dummy_data", "delete"))

	admin := DefaultPermissions(RoleAdmin)
	assert.True(t, admin.Allows("works", "delete"))
	assert.True(t, admin.Allows("dummy_data", "create"))
	assert.False(t, admin.Allows("dummy_data", "delete"))
	assert.False(t, admin.Allows("admin_accounts", "read"))
	assert.False(t, admin.Allows("users", "delete"))

	moderator := DefaultPermissions(RoleModerator)
	assert.True(t, moderator.Allows("contributions", "write"))
	assert.False(t, moderator.Allows("contributions", "delete"))
	assert.False(t, moderator.Allows("users", "read"))

	viewer := DefaultPermissions(RoleViewer)
	for _, resource := range []string{"users", "works", "contributions", "analytics"} {
		assert.True(t, viewer.Allows(resource, "read"), resource)
		assert.False(t, viewer.Allows(resource, "write"), resource)
	}

	assert.Empty(t, DefaultPermissions(Role("banana")))
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleViewer, RoleModerator, RoleAdmin, RoleSuperAdmin} {
		assert.True(t, role.Valid(), string(role))
	}
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}
