package access

import "sort"

// Route identifiers, consumed by whatever performs the actual navigation.
const (
	RouteSuperAdmin = "admin"
	RouteWelcome    = "welcome"
)

// RouteFor builds the destination for an (academy, role) pair.
// Unknown roles land on the academy root rather than failing.
func RouteFor(tenantID, role string) string {
	switch {
	case IsAdminRole(role):
		return "academy/" + tenantID + "/admin"
	case role == RoleTeacher:
		return "academy/" + tenantID + "/teacher"
	case role == RoleStudent:
		return "academy/" + tenantID + "/student"
	default:
		return "academy/" + tenantID
	}
}

type (
	// Candidate is one (academy, role) pair the principal could operate as.
	Candidate struct {
		TenantID   string `json:"academy_id"`
		TenantName string `json:"academy_name"`
		Role       string `json:"role"`
	}

	// Resolution is either a concrete Route, or a choice-required state
	// listing the candidates the principal must pick from.
	Resolution struct {
		Route          string      `json:"route,omitempty"`
		ChoiceRequired bool        `json:"choice_required,omitempty"`
		Candidates     []Candidate `json:"candidates,omitempty"`
	}
)

// Resolve picks the landing destination for an aggregated principal.
// Priority order, first match wins:
//  1. super admins always land on the platform admin, selection ignored
//  2. a single academy with a single role resolves on its own
//  3. an explicit valid selection; stale or dangling selections fall through
//  4. anything still ambiguous requires a choice
//  5. no roles anywhere lands on the welcome page
func Resolve(agg Aggregation, sel *Selection) Resolution {
	if agg.SuperAdmin {
		return Resolution{Route: RouteSuperAdmin}
	}

	if len(agg.Tenants) == 1 {
		for _, tr := range agg.Tenants {
			if role, ok := tr.single(); ok {
				return Resolution{Route: RouteFor(tr.ID, role)}
			}
		}
	}

	if sel != nil {
		if tr, ok := agg.Tenants[sel.TenantID]; ok && tr.Has(sel.Role) {
			return Resolution{Route: RouteFor(tr.ID, sel.Role)}
		}
	}

	if len(agg.Tenants) > 0 {
		return Resolution{ChoiceRequired: true, Candidates: Candidates(agg)}
	}

	return Resolution{Route: RouteWelcome}
}

// Candidates lists every (academy, role) pair in the aggregation,
// sorted by academy id then role priority (highest first).
func Candidates(agg Aggregation) []Candidate {
	ids := make([]string, 0, len(agg.Tenants))
	for id := range agg.Tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var cands []Candidate
	for _, id := range ids {
		tr := agg.Tenants[id]
		for _, role := range tr.Roles() {
			cands = append(cands, Candidate{TenantID: tr.ID, TenantName: tr.Name, Role: role})
		}
	}
	return cands
}
