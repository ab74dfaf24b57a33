package user

import (
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Roles
const (
	// Admin
	RoleAdmin          = "admin:"
	RoleAdminOwner     = "admin:owner"
	RoleAdminPrincipal = "admin:principal"
	RoleAdminFinance   = "admin:finance"

	// Teacher
	RoleTeacher = "teacher:"

	// Staff
	RoleLibrarian = "staff:librarian"
)

var (
	AdminRoles   = []string{RoleAdmin, RoleAdminOwner, RoleAdminPrincipal, RoleAdminFinance}
	TeacherRoles = []string{RoleTeacher}
	StaffRoles   = []string{RoleLibrarian}
	AllRoles     = getAllRoles()

	rolePriorities = map[string]int{
		// Admins: 30 - 21
		RoleAdminOwner:     30,
		RoleAdminPrincipal: 29,
		RoleAdminFinance:   22,
		RoleAdmin:          21,

		// Teachers: 20 - 11
		RoleTeacher: 11,

		// Staff: 10 - 1
		RoleLibrarian: 5,
	}

	Roles = []Role{
		{Name: "Librarian", Value: RoleLibrarian},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Admin Finance", Value: RoleAdminFinance},
		{Name: "Admin Principal", Value: RoleAdminPrincipal},
		{Name: "Admin Owner", Value: RoleAdminOwner},
	}
)

func getAllRoles() []string {
	all := make([]string, 0, 6)
	all = append(all, AdminRoles...)
	all = append(all, TeacherRoles...)
	all = append(all, StaffRoles...)
	return all
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

func MaxRolePriority(roles []string) int {
	var max int
	for _, role := range roles {
		if RolePriority(role) > max {
			max = RolePriority(role)
		}
	}
	return max
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Preferences struct {
	Theme         string `json:"theme" yaml:"theme"`
	Language      string `json:"language" yaml:"language"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
}

// User is an account of the administration portal.
type User struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Username     string      `json:"username" yaml:"username"`
	Email        string      `json:"email" yaml:"email"`
	Phone        null.String `json:"phone" yaml:"phone"`
	IsActive     bool        `json:"is_active" yaml:"is_active"`
	Roles        []string    `json:"roles" yaml:"roles"`
	PasswordHash string      `json:"-" yaml:"password_hash"`
	LastLogin    null.String `json:"last_login" yaml:"last_login"`
	CreatedAt    string      `json:"created_at" yaml:"created_at"`
	Preferences  Preferences `json:"preferences" yaml:"preferences"`
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(pwd))
}

func (u *User) RoleStartsWith(prefix string) bool {
	for _, role := range u.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.RoleStartsWith(RoleAdmin)
}

func (u *User) IsTeacher() bool {
	return u.RoleStartsWith(RoleTeacher)
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type QueryFilter struct {
	Search   string `query:"search"`
	Role     string `query:"role" validate:"omitempty,role_filter"`
	IsActive string `query:"is_active" validate:"omitempty,oneof=all true false"`
	Ordering string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Role = core.CleanString(qf.Role, true /* lower */)
	qf.IsActive = core.CleanString(qf.IsActive, true /* lower */)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"role":      qf.Role,
			"is_active": qf.IsActive,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[User]{
	ID: func(u User) string { return u.ID },
	Search: []collection.Field[User]{
		func(u User) null.String { return collection.Str(u.Name) },
		func(u User) null.String { return collection.Str(u.Username) },
		func(u User) null.String { return collection.Str(u.Email) },
	},
	Filters: map[string]collection.Field[User]{
		"role":      roleField,
		"is_active": func(u User) null.String { return collection.Str(strconv.FormatBool(u.IsActive)) },
	},
	Orderings: map[string]collection.Less[User]{
		"name":     collection.ByString(func(u User) null.String { return collection.Str(u.Name) }),
		"username": collection.ByString(func(u User) null.String { return collection.Str(u.Username) }),
		"role": func(a, b User) bool {
			return MaxRolePriority(a.Roles) < MaxRolePriority(b.Roles)
		},
		"last_login": collection.ByString(func(u User) null.String { return u.LastLogin }),
	},
	Columns: []collection.Column[User]{
		{Header: "ID", Value: func(u User) interface{} { return u.ID }},
		{Header: "Name", Value: func(u User) interface{} { return u.Name }},
		{Header: "Username", Value: func(u User) interface{} { return u.Username }},
		{Header: "Email", Value: func(u User) interface{} { return u.Email }},
		{Header: "Roles", Value: func(u User) interface{} { return u.Roles }},
		{Header: "Active", Value: func(u User) interface{} { return u.IsActive }},
		{Header: "Last Login", Value: func(u User) interface{} { return u.LastLogin }},
		{Header: "Theme", Value: func(u User) interface{} { return u.Preferences.Theme }},
		{Header: "Language", Value: func(u User) interface{} { return u.Preferences.Language }},
	},
}

// roleField exposes the highest priority role of the user; a role filter matches on that role.
func roleField(u User) null.String {
	var top string
	for _, role := range u.Roles {
		if top == "" || RolePriority(role) > RolePriority(top) {
			top = role
		}
	}
	if top == "" {
		return null.String{}
	}
	return null.StringFrom(top)
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Admins   int `json:"admins"`
	Teachers int `json:"teachers"`
}
