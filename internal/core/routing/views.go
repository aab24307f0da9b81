package routing

// View identifies a concrete screen component the shell can mount.
type View string

const (
	ViewLogin          View = "Login"
	ViewForgotPassword View = "ForgotPassword"

	// Dashboards mounted at "/" depending on role.
	ViewDashboard             View = "Dashboard"
	ViewManagerDashboard      View = "ManagerDashboard"
	ViewAccountantDashboard   View = "AccountantDashboard"
	ViewReceptionistDashboard View = "ReceptionistDashboard"

	ViewBills         View = "Bills"
	ViewAdminBills    View = "AdminBills"
	ViewTickets       View = "Tickets"
	ViewVehicles      View = "Vehicles"
	ViewUtilities     View = "Utilities"
	ViewNotifications View = "Notifications"
	ViewProfile       View = "Profile"
	ViewSettings      View = "Settings"

	ViewApartmentsManagement    View = "ApartmentsManagement"
	ViewUsersManagement         View = "UsersManagement"
	ViewStaffDirectory          View = "StaffDirectory"
	ViewTicketsManagement       View = "TicketsManagement"
	ViewVehiclesManagement      View = "VehiclesManagement"
	ViewNotificationsManagement View = "NotificationsManagement"

	ViewNotFound View = "NotFound"
)
