package access

import (
	"reflect"
	"testing"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{RoleOwner, "academy/7/admin"},
		{RoleManager, "academy/7/admin"},
		{RoleTeacher, "academy/7/teacher"},
		{RoleStudent, "academy/7/student"},
		{"librarian", "academy/7"}, // forward-compat fallback
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := RouteFor("7", tt.role); got != tt.want {
				t.Errorf("RouteFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAdminRole(t *testing.T) {
	for role, want := range map[string]bool{
		RoleOwner:   true,
		RoleManager: true,
		RoleTeacher: false,
		RoleStudent: false,
		"librarian": false,
	} {
		if got := IsAdminRole(role); got != want {
			t.Errorf("IsAdminRole(%q) = %v, want %v", role, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	agg := func(superAdmin bool, tenants ...*TenantRoles) Aggregation {
		a := Aggregation{SuperAdmin: superAdmin, Tenants: make(map[string]*TenantRoles)}
		for _, tr := range tenants {
			a.Tenants[tr.ID] = tr
		}
		return a
	}
	tenant := func(id, name string, roles ...string) *TenantRoles {
		tr := newTenantRoles(id, name)
		for _, role := range roles {
			tr.add(role)
		}
		return tr
	}

	tests := []struct {
		name string
		agg  Aggregation
		sel  *Selection
		want Resolution
	}{
		{
			name: "super admin dominates everything",
			agg:  agg(true, tenant("1", "Acme", RoleOwner)),
			sel:  &Selection{TenantID: "1", Role: RoleOwner},
			want: Resolution{Route: RouteSuperAdmin},
		},
		{
			name: "single academy single role auto-resolves",
			agg:  agg(false, tenant("1", "Acme", RoleTeacher)),
			want: Resolution{Route: "academy/1/teacher"},
		},
		{
			name: "valid selection honored",
			agg:  agg(false, tenant("1", "Acme", RoleOwner), tenant("2", "Beta", RoleStudent)),
			sel:  &Selection{TenantID: "2", Role: RoleStudent},
			want: Resolution{Route: "academy/2/student"},
		},
		{
			name: "stale selection falls back to auto-resolve",
			agg:  agg(false, tenant("1", "Acme", RoleOwner)),
			sel:  &Selection{TenantID: "2", Role: RoleStudent},
			want: Resolution{Route: "academy/1/admin"},
		},
		{
			name: "selection with a role no longer held requires a choice",
			agg:  agg(false, tenant("1", "Acme", RoleOwner, RoleTeacher)),
			sel:  &Selection{TenantID: "1", Role: RoleStudent},
			want: Resolution{ChoiceRequired: true, Candidates: []Candidate{
				{TenantID: "1", TenantName: "Acme", Role: RoleOwner},
				{TenantID: "1", TenantName: "Acme", Role: RoleTeacher},
			}},
		},
		{
			name: "two academies no selection require a choice",
			agg:  agg(false, tenant("2", "Beta", RoleStudent), tenant("1", "Acme", RoleOwner)),
			want: Resolution{ChoiceRequired: true, Candidates: []Candidate{
				{TenantID: "1", TenantName: "Acme", Role: RoleOwner},
				{TenantID: "2", TenantName: "Beta", Role: RoleStudent},
			}},
		},
		{
			name: "two roles in one academy require a choice",
			agg:  agg(false, tenant("1", "Acme", RoleOwner, RoleTeacher)),
			want: Resolution{ChoiceRequired: true, Candidates: []Candidate{
				{TenantID: "1", TenantName: "Acme", Role: RoleOwner},
				{TenantID: "1", TenantName: "Acme", Role: RoleTeacher},
			}},
		},
		{
			name: "no roles anywhere lands on welcome",
			agg:  agg(false),
			want: Resolution{Route: RouteWelcome},
		},
		{
			name: "unknown single role lands on academy root",
			agg:  agg(false, tenant("1", "Acme", "librarian")),
			want: Resolution{Route: "academy/1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.agg, tt.sel); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// the full pipeline on the mixed-case two-relation profile
func TestAggregateThenResolve(t *testing.T) {
	profile := &Profile{
		AdminLinks: []TenantAdminLink{{TenantID: "1", TenantName: "Acme", Role: "Owner"}},
		GroupMemberships: []GroupMembership{
			{Role: "TEACHER", Course: &CourseRef{Tenant: &Tenant{ID: "1", Name: "Acme"}}},
		},
	}
	agg := Aggregate(profile)

	got := Resolve(agg, nil)
	want := Resolution{ChoiceRequired: true, Candidates: []Candidate{
		{TenantID: "1", TenantName: "Acme", Role: RoleOwner},
		{TenantID: "1", TenantName: "Acme", Role: RoleTeacher},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}

	// a choice disambiguates
	got = Resolve(agg, &Selection{TenantID: "1", Role: RoleTeacher})
	if want := (Resolution{Route: "academy/1/teacher"}); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() with selection = %+v, want %+v", got, want)
	}
}

// a profile whose only records carry blank role labels holds nothing usable
func TestAggregateThenResolve_blankRoleOnly(t *testing.T) {
	profile := &Profile{
		AdminLinks: []TenantAdminLink{{TenantID: "1", TenantName: "Acme", Role: " "}},
	}
	got := Resolve(Aggregate(profile), nil)
	if want := (Resolution{Route: RouteWelcome}); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}
