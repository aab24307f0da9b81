package domain

import "time"

// Role determines the view-set a user is served. It is the only profile
// attribute routing decisions may depend on.
type Role string

const (
	RoleResident     Role = "user"
	RoleManager      Role = "manager"
	RoleAccountant   Role = "accountant"
	RoleReceptionist Role = "receptionist"
	RoleAdmin        Role = "admin"
)

// Known reports whether r is one of the declared roles. Unrecognised roles
// resolve to the resident view-set, never to a staff one.
func (r Role) Known() bool {
	switch r {
	case RoleResident, RoleManager, RoleAccountant, RoleReceptionist, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether r belongs to building staff.
func (r Role) Staff() bool {
	switch r {
	case RoleManager, RoleAccountant, RoleReceptionist:
		return true
	}
	return false
}

// UserProfile models an account in the building. Apartment, building and
// phone are display-only; routing never inspects them.
type UserProfile struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone,omitempty"`
	ApartmentNumber string    `json:"apartment_number,omitempty"`
	Building        string    `json:"building,omitempty"`
	Role            Role      `json:"role"`
	IsActive        bool      `json:"is_active"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
