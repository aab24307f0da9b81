package routing

import "github.com/skyline-bms/apartment-portal/internal/core/domain"

// NavEntry is one item in a role's navigation list.
type NavEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RoleView is the fixed view-set a role resolves to: the navigation entries
// in display order, the landing path, and the dashboard mounted at "/".
type RoleView struct {
	Nav         []NavEntry `json:"nav"`
	LandingPath string     `json:"landing_path"`
	Dashboard   View       `json:"dashboard"`
}

var bottomNav = []NavEntry{
	{Name: "Profile", Path: PathProfile},
	{Name: "Settings", Path: PathSettings},
}

// Resolve maps a role to its view-set. Pure and total: the same role always
// yields the same structure, and anything unrecognised falls through to the
// resident mapping rather than a staff one.
func Resolve(role domain.Role) RoleView {
	switch role {
	case domain.RoleManager:
		return RoleView{
			Nav: withBottom(
				NavEntry{Name: "Home", Path: PathHome},
				NavEntry{Name: "Apartments", Path: PathApartments},
				NavEntry{Name: "Users", Path: PathUsers},
				NavEntry{Name: "Tickets", Path: PathTicketsConsole},
				NavEntry{Name: "Vehicles", Path: PathVehiclesConsole},
				NavEntry{Name: "Announcements", Path: PathBroadcastsConsole},
			),
			LandingPath: PathHome,
			Dashboard:   ViewManagerDashboard,
		}
	case domain.RoleAccountant:
		return RoleView{
			Nav: withBottom(
				NavEntry{Name: "Home", Path: PathHome},
				NavEntry{Name: "Bills", Path: PathBills},
				NavEntry{Name: "Utilities", Path: PathUtilities},
				NavEntry{Name: "Notifications", Path: PathNotifications},
			),
			LandingPath: PathHome,
			Dashboard:   ViewAccountantDashboard,
		}
	case domain.RoleReceptionist:
		return RoleView{
			Nav: withBottom(
				NavEntry{Name: "Home", Path: PathHome},
				NavEntry{Name: "Staff", Path: PathStaff},
				NavEntry{Name: "Tickets", Path: PathTicketsConsole},
				NavEntry{Name: "Vehicles", Path: PathVehiclesConsole},
				NavEntry{Name: "Notifications", Path: PathNotifications},
			),
			LandingPath: PathHome,
			Dashboard:   ViewReceptionistDashboard,
		}
	case domain.RoleAdmin:
		return RoleView{
			Nav: withBottom(
				NavEntry{Name: "Home", Path: PathHome},
				NavEntry{Name: "Apartments", Path: PathApartments},
				NavEntry{Name: "Users", Path: PathUsers},
				NavEntry{Name: "Bills", Path: PathBills},
				NavEntry{Name: "Tickets", Path: PathTickets},
			),
			LandingPath: PathHome,
			// The dashboard sub-rule names only the three staff dashboards;
			// every other role, admin included, gets the generic one.
			Dashboard: ViewDashboard,
		}
	default:
		return residentView()
	}
}

// ResolveSession resolves the view-set for a session snapshot, falling to
// the resident mapping when no profile is present.
func ResolveSession(s domain.Session) RoleView {
	if s.User == nil {
		return residentView()
	}
	return Resolve(s.User.Role)
}

func residentView() RoleView {
	return RoleView{
		Nav: withBottom(
			NavEntry{Name: "Home", Path: PathHome},
			NavEntry{Name: "Bills", Path: PathBills},
			NavEntry{Name: "Notifications", Path: PathNotifications},
			NavEntry{Name: "Feedback", Path: PathTickets},
			NavEntry{Name: "Vehicle Card", Path: PathVehicles},
			NavEntry{Name: "Utilities", Path: PathUtilities},
		),
		LandingPath: PathHome,
		Dashboard:   ViewDashboard,
	}
}

func withBottom(entries ...NavEntry) []NavEntry {
	return append(entries, bottomNav...)
}
