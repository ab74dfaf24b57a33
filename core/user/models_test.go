package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo/core/user"
)

func TestUser_roles(t *testing.T) {
	principal := user.User{Roles: []string{user.RoleAdminPrincipal, user.RoleTeacher}}
	librarian := user.User{Roles: []string{user.RoleLibrarian}}

	tests := []struct {
		name        string
		usr         user.User
		role        string
		wantHasRole bool
		wantAdmin   bool
		wantTeacher bool
	}{
		{name: "principal", usr: principal, role: user.RoleAdminPrincipal, wantHasRole: true, wantAdmin: true, wantTeacher: true},
		{name: "principal is not owner", usr: principal, role: user.RoleAdminOwner, wantAdmin: true, wantTeacher: true},
		{name: "admin prefix is not a role held", usr: principal, role: user.RoleAdmin, wantAdmin: true, wantTeacher: true},
		{name: "librarian", usr: librarian, role: user.RoleLibrarian, wantHasRole: true},
		{name: "no roles", usr: user.User{}, role: user.RoleTeacher},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantHasRole, tt.usr.HasRole(tt.role))
			assert.Equal(t, tt.wantAdmin, tt.usr.IsAdmin())
			assert.Equal(t, tt.wantTeacher, tt.usr.IsTeacher())
		})
	}
}
