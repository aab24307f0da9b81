package routing

import "github.com/skyline-bms/apartment-portal/internal/core/domain"

// screens maps every granted path with a single component to that component.
// The two role-conditional junctions ("/" and "/bills") are handled in
// ViewFor; no screen re-derives role checks on its own.
var screens = map[string]View{
	PathTickets:           ViewTickets,
	PathVehicles:          ViewVehicles,
	PathUtilities:         ViewUtilities,
	PathNotifications:     ViewNotifications,
	PathProfile:           ViewProfile,
	PathSettings:          ViewSettings,
	PathApartments:        ViewApartmentsManagement,
	PathUsers:             ViewUsersManagement,
	PathStaff:             ViewStaffDirectory,
	PathTicketsConsole:    ViewTicketsManagement,
	PathVehiclesConsole:   ViewVehiclesManagement,
	PathBroadcastsConsole: ViewNotificationsManagement,
}

// ViewFor selects the concrete screen for a granted path under a role.
func ViewFor(role domain.Role, path string) View {
	switch path {
	case PathHome:
		return Resolve(role).Dashboard
	case PathBills:
		if role == domain.RoleAdmin {
			return ViewAdminBills
		}
		return ViewBills
	}

	if v, ok := screens[path]; ok {
		return v
	}
	return ViewNotFound
}
