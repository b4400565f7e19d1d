package access

// Aggregate merges a principal's academy admin links and group memberships into
// per-academy role sets. The two relations are independent: the same academy may
// show up in both and the same role may be reported twice; the result is a true
// set either way, independent of record ordering.
//
// A nil profile (failed directory fetch) aggregates to no roles at all.
func Aggregate(profile *Profile) Aggregation {
	agg := Aggregation{Tenants: make(map[string]*TenantRoles)}
	if profile == nil {
		return agg
	}
	agg.SuperAdmin = profile.IsSuperAdmin

	for _, link := range profile.AdminLinks {
		agg.addRole(link.TenantID, link.TenantName, link.Role)
	}

	for _, gm := range profile.GroupMemberships {
		// incomplete course->academy chain: not an error, just unusable
		if gm.Course == nil || gm.Course.Tenant == nil {
			continue
		}
		agg.addRole(gm.Course.Tenant.ID, gm.Course.Tenant.Name, gm.Role)
	}
	return agg
}
