package domain

// Session is a read-only snapshot of the authentication state handed to the
// route guard and view dispatcher. The owning store guarantees that token and
// user are always set or cleared together; a snapshot never carries one
// without the other.
type Session struct {
	Token   string
	User    *UserProfile
	Loading bool
}

// IsAuthenticated reports whether the snapshot carries a complete credential
// pair. Partial state is a store bug, not a third authentication state.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Role returns the snapshot's role, or RoleResident when no profile is
// present or the stored role is unrecognised.
func (s Session) Role() Role {
	if s.User == nil || !s.User.Role.Known() {
		return RoleResident
	}
	return s.User.Role
}
