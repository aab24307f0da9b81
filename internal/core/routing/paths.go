// Package routing is the pure decision layer between the navigation surface
// and the screen components: which paths a role can see, whether a
// navigation may render, and which concrete view mounts where.
package routing

// Navigable paths. The shell owns rendering; these are the contract keys
// shared by the resolver, the permission table and the dispatch table.
const (
	PathHome              = "/"
	PathLogin             = "/login"
	PathForgotPassword    = "/forgot-password"
	PathBills             = "/bills"
	PathTickets           = "/tickets"
	PathVehicles          = "/vehicles"
	PathUtilities         = "/utilities"
	PathNotifications     = "/notifications"
	PathProfile           = "/profile"
	PathSettings          = "/settings"
	PathApartments        = "/apartments"
	PathUsers             = "/users"
	PathStaff             = "/staff"
	PathTicketsConsole    = "/admin/tickets"
	PathVehiclesConsole   = "/admin/vehicles"
	PathBroadcastsConsole = "/admin/notifications"
)
