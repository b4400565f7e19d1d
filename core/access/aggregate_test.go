package access

import (
	"math/rand"
	"reflect"
	"testing"
)

func tenantRoleSets(agg Aggregation) map[string][]string {
	sets := make(map[string][]string, len(agg.Tenants))
	for id, tr := range agg.Tenants {
		sets[id] = tr.Roles()
	}
	return sets
}

func TestAggregate(t *testing.T) {
	acme := &Tenant{ID: "1", Name: "Acme"}

	tests := []struct {
		name           string
		profile        *Profile
		wantSuperAdmin bool
		wantSets       map[string][]string
		wantNames      map[string]string
	}{
		{
			name:     "nil profile aggregates to nothing",
			profile:  nil,
			wantSets: map[string][]string{},
		},
		{
			name:           "super admin flag carried over",
			profile:        &Profile{IsSuperAdmin: true},
			wantSuperAdmin: true,
			wantSets:       map[string][]string{},
		},
		{
			name: "roles from both relations union per academy",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{{TenantID: "1", TenantName: "Acme", Role: "Owner"}},
				GroupMemberships: []GroupMembership{
					{Role: "TEACHER", Course: &CourseRef{Tenant: acme}},
				},
			},
			wantSets:  map[string][]string{"1": {RoleOwner, RoleTeacher}},
			wantNames: map[string]string{"1": "Acme"},
		},
		{
			name: "duplicate role across relations deduplicated",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{
					{TenantID: "1", TenantName: "Acme", Role: "owner"},
					{TenantID: "1", TenantName: "Acme", Role: "OWNER"},
				},
			},
			wantSets: map[string][]string{"1": {RoleOwner}},
		},
		{
			name: "membership without course chain skipped",
			profile: &Profile{
				GroupMemberships: []GroupMembership{
					{Role: "student"},
					{Role: "student", Course: &CourseRef{}},
					{Role: "student", Course: &CourseRef{Tenant: &Tenant{Name: "No ID"}}},
					{Role: "student", Course: &CourseRef{Tenant: &Tenant{ID: "2", Name: "Beta"}}},
				},
			},
			wantSets:  map[string][]string{"2": {RoleStudent}},
			wantNames: map[string]string{"2": "Beta"},
		},
		{
			name: "admin link without academy id skipped",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{{TenantName: "Ghost", Role: "owner"}},
			},
			wantSets: map[string][]string{},
		},
		{
			name: "blank role label never creates an academy entry",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{{TenantID: "1", TenantName: "Acme", Role: "  "}},
				GroupMemberships: []GroupMembership{
					{Role: "", Course: &CourseRef{Tenant: &Tenant{ID: "2", Name: "Beta"}}},
				},
			},
			wantSets: map[string][]string{},
		},
		{
			name: "first seen display name wins",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{
					{TenantID: "1", TenantName: "Acme", Role: "manager"},
					{TenantID: "1", TenantName: "ACME Renamed", Role: "owner"},
				},
			},
			wantSets:  map[string][]string{"1": {RoleOwner, RoleManager}},
			wantNames: map[string]string{"1": "Acme"},
		},
		{
			name: "blank name filled by a later record",
			profile: &Profile{
				AdminLinks: []TenantAdminLink{
					{TenantID: "1", Role: "manager"},
					{TenantID: "1", TenantName: "Acme", Role: "owner"},
				},
			},
			wantSets:  map[string][]string{"1": {RoleOwner, RoleManager}},
			wantNames: map[string]string{"1": "Acme"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.profile)
			if agg.SuperAdmin != tt.wantSuperAdmin {
				t.Errorf("Aggregate() SuperAdmin = %v, want %v", agg.SuperAdmin, tt.wantSuperAdmin)
			}
			if sets := tenantRoleSets(agg); !reflect.DeepEqual(sets, tt.wantSets) {
				t.Errorf("Aggregate() role sets = %v, want %v", sets, tt.wantSets)
			}
			for id, name := range tt.wantNames {
				if got := agg.Tenants[id].Name; got != name {
					t.Errorf("Aggregate() name[%s] = %q, want %q", id, got, name)
				}
			}
		})
	}
}

func TestAggregate_permutationInvariance(t *testing.T) {
	profile := &Profile{
		AdminLinks: []TenantAdminLink{
			{TenantID: "1", TenantName: "Acme", Role: "owner"},
			{TenantID: "2", TenantName: "Beta", Role: "manager"},
			{TenantID: "1", TenantName: "Acme", Role: "manager"},
		},
		GroupMemberships: []GroupMembership{
			{Role: "teacher", Course: &CourseRef{Tenant: &Tenant{ID: "1", Name: "Acme"}}},
			{Role: "student", Course: &CourseRef{Tenant: &Tenant{ID: "3", Name: "Gamma"}}},
			{Role: "student", Course: &CourseRef{Tenant: &Tenant{ID: "1", Name: "Acme"}}},
		},
	}
	want := tenantRoleSets(Aggregate(profile))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := &Profile{
			AdminLinks:       append([]TenantAdminLink(nil), profile.AdminLinks...),
			GroupMemberships: append([]GroupMembership(nil), profile.GroupMemberships...),
		}
		rng.Shuffle(len(shuffled.AdminLinks), func(a, b int) {
			shuffled.AdminLinks[a], shuffled.AdminLinks[b] = shuffled.AdminLinks[b], shuffled.AdminLinks[a]
		})
		rng.Shuffle(len(shuffled.GroupMemberships), func(a, b int) {
			shuffled.GroupMemberships[a], shuffled.GroupMemberships[b] = shuffled.GroupMemberships[b], shuffled.GroupMemberships[a]
		})

		if got := tenantRoleSets(Aggregate(shuffled)); !reflect.DeepEqual(got, want) {
			t.Fatalf("Aggregate() not permutation invariant: got %v, want %v", got, want)
		}
	}
}
