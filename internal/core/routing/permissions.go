package routing

import "github.com/skyline-bms/apartment-portal/internal/core/domain"

// restricted maps a path to the roles allowed to render it. A path absent
// from this table is open to every authenticated role; a present path is
// allowed only to the listed roles. The asymmetry is deliberate: common
// screens (bills, tickets, profile) stay open by default, and only the
// staff consoles opt in to restriction.
var restricted = map[string][]domain.Role{
	PathApartments:        {domain.RoleManager, domain.RoleAdmin},
	PathUsers:             {domain.RoleManager, domain.RoleAdmin},
	PathStaff:             {domain.RoleReceptionist, domain.RoleManager, domain.RoleAdmin},
	PathTicketsConsole:    {domain.RoleReceptionist, domain.RoleManager, domain.RoleAdmin},
	PathVehiclesConsole:   {domain.RoleReceptionist, domain.RoleManager, domain.RoleAdmin},
	PathBroadcastsConsole: {domain.RoleManager, domain.RoleAdmin},
}

// Allowed decides whether role may render path, as the explicit two-branch
// rule: no entry means any authenticated role, an entry means membership.
func Allowed(path string, role domain.Role) bool {
	roles, listed := restricted[path]
	if !listed {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RestrictedPaths returns the opt-out paths, for table-invariant tests.
func RestrictedPaths() []string {
	paths := make([]string, 0, len(restricted))
	for p := range restricted {
		paths = append(paths, p)
	}
	return paths
}
