package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "homeowner", input: "homeowner", want: RoleHomeowner},
		{name: "builder", input: "builder", want: RoleBuilder},
		{name: "admin", input: "admin", want: RoleAdmin},
		{name: "unknown role", input: "manager", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "case sensitive", input: "Admin", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			role, err := NewRole(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role                  Role
		canCreateProperties   bool
		canCreateTickets      bool
		canBeAssignedTickets  bool
		canCreateInternal     bool
		canViewAllTickets     bool
		canManageUsers        bool
	}{
		{
			role:                RoleHomeowner,
			canCreateProperties: true,
			canCreateTickets:    true,
		},
		{
			role:                 RoleBuilder,
			canBeAssignedTickets: true,
			canCreateInternal:    true,
			canViewAllTickets:    true,
		},
		{
			role:                 RoleAdmin,
			canCreateProperties:  true,
			canBeAssignedTickets: true,
			canCreateInternal:    true,
			canViewAllTickets:    true,
			canManageUsers:       true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.canCreateProperties, tc.role.CanCreateProperties())
			assert.Equal(t, tc.canCreateTickets, tc.role.CanCreateTickets())
			assert.Equal(t, tc.canBeAssignedTickets, tc.role.CanBeAssignedTickets())
			assert.Equal(t, tc.canCreateInternal, tc.role.CanCreateInternalComments())
			assert.Equal(t, tc.canViewAllTickets, tc.role.CanViewAllTickets())
			assert.Equal(t, tc.canManageUsers, tc.role.CanManageUsers())
		})
	}
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, RoleHomeowner.IsStaff())
	assert.True(t, RoleBuilder.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
}

func TestAllRoles(t *testing.T) {
	roles := AllRoles()
	assert.Len(t, roles, 3)
	for _, r := range roles {
		assert.True(t, r.IsValid())
	}
}
