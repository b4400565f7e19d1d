package access

import (
	"sort"

	"github.com/shulehq/shule/core"
)

// Academy roles
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var (
	AdminRoles = []string{RoleOwner, RoleManager}

	rolePriorities = map[string]int{
		// Admins: 40 - 21
		RoleOwner:   40,
		RoleManager: 30,

		// Teachers: 20 - 11
		RoleTeacher: 20,

		// Students: 10 - 1
		RoleStudent: 10,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Manager", Value: RoleManager},
		{Name: "Owner", Value: RoleOwner},
	}
)

func RolePriority(role string) int {
	return rolePriorities[role]
}

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PrincipalID identifies a person, as issued by the directory backend.
type PrincipalID string

// Tenant is an academy a principal may hold roles in.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type (
	// TenantAdminLink associates a principal with an academy they own or manage.
	TenantAdminLink struct {
		TenantID   string
		TenantName string
		Role       string
	}

	// CourseRef points a group membership back to the academy owning the course.
	CourseRef struct {
		Tenant *Tenant
	}

	// GroupMembership associates a principal with a course group as teacher or student.
	// Course may be nil on incomplete records; such records are skipped during aggregation.
	GroupMembership struct {
		Role   string
		Course *CourseRef
	}

	// Profile is a principal's directory record: the two membership relations
	// plus the platform-wide admin flag.
	Profile struct {
		IsSuperAdmin     bool
		AdminLinks       []TenantAdminLink
		GroupMemberships []GroupMembership
	}
)

// TenantRoles is the deduplicated set of roles a principal holds in one academy.
type TenantRoles struct {
	ID    string
	Name  string
	roles map[string]struct{}
}

func newTenantRoles(id, name string) *TenantRoles {
	return &TenantRoles{ID: id, Name: name, roles: make(map[string]struct{})}
}

func (tr *TenantRoles) add(role string) {
	role = core.CleanString(role, true /* lower */)
	if role == "" {
		return
	}
	tr.roles[role] = struct{}{}
}

func (tr *TenantRoles) Has(role string) bool {
	_, ok := tr.roles[role]
	return ok
}

// Roles returns the role set sorted by priority (highest first), then name.
func (tr *TenantRoles) Roles() []string {
	roles := make([]string, 0, len(tr.roles))
	for role := range tr.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		pi, pj := RolePriority(roles[i]), RolePriority(roles[j])
		if pi != pj {
			return pi > pj
		}
		return roles[i] < roles[j]
	})
	return roles
}

// single reports the only role held, if exactly one.
func (tr *TenantRoles) single() (string, bool) {
	if len(tr.roles) != 1 {
		return "", false
	}
	for role := range tr.roles {
		return role, true
	}
	return "", false
}

// Aggregation is a principal's complete role picture across the platform.
type Aggregation struct {
	SuperAdmin bool
	Tenants    map[string]*TenantRoles
}

// tenant finds-or-creates the entry for an academy; the first seen display name wins.
func (agg Aggregation) tenant(id, name string) *TenantRoles {
	tr, ok := agg.Tenants[id]
	if !ok {
		tr = newTenantRoles(id, name)
		agg.Tenants[id] = tr
	}
	if tr.Name == "" {
		tr.Name = name
	}
	return tr
}

// addRole records one (academy, role) fact. Records missing either half are
// unusable: a blank role must not create an empty academy entry.
func (agg Aggregation) addRole(id, name, role string) {
	role = core.CleanString(role, true /* lower */)
	if id == "" || role == "" {
		return
	}
	agg.tenant(id, name).add(role)
}

// Selection is the (academy, role) pair a principal last chose to operate as.
type Selection struct {
	TenantID string `json:"academy_id" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// Validate cleans and validates an incoming selection.
// Membership checks are the resolver's job; this only vets the shape.
func (s *Selection) Validate() error {
	s.TenantID = core.CleanString(s.TenantID)
	s.Role = core.CleanString(s.Role, true /* lower */)
	return core.Validate.Struct(s)
}
