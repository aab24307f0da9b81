package routing

import (
	"testing"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

func sessionWithRole(role domain.Role) domain.Session {
	return domain.Session{
		Token: "token",
		User:  &domain.UserProfile{ID: 1, Username: "u", Role: role, IsActive: true},
	}
}

func TestDecide_PendingWhileLoading(t *testing.T) {
	snap := domain.Session{Loading: true}

	d := Decide(snap, PathBills)
	if d.Outcome != OutcomePending {
		t.Fatalf("loading session must yield pending, got %s", d.Outcome)
	}
	if d.RedirectTo != "" {
		t.Fatalf("pending decision must not redirect, got %q", d.RedirectTo)
	}
}

func TestDecide_UnauthenticatedCarriesReturnTarget(t *testing.T) {
	d := Decide(domain.Session{}, PathVehicles)

	if d.Outcome != OutcomeLoginRedirect {
		t.Fatalf("expected login redirect, got %s", d.Outcome)
	}
	if d.RedirectTo != PathLogin {
		t.Fatalf("expected redirect to %s, got %s", PathLogin, d.RedirectTo)
	}
	if d.ReturnTo != PathVehicles {
		t.Fatalf("expected return target %s, got %s", PathVehicles, d.ReturnTo)
	}
}

func TestDecide_CommonPathOpenToAllAuthenticatedRoles(t *testing.T) {
	for _, role := range allRoles {
		d := Decide(sessionWithRole(role), PathBills)
		if d.Outcome != OutcomeGranted {
			t.Fatalf("role %s must be granted %s, got %s", role, PathBills, d.Outcome)
		}
	}
}

func TestDecide_ForbiddenRoleRedirectsToDefaultNotLogin(t *testing.T) {
	d := Decide(sessionWithRole(domain.RoleReceptionist), PathApartments)

	if d.Outcome != OutcomeDefaultRedirect {
		t.Fatalf("expected default redirect, got %s", d.Outcome)
	}
	if d.RedirectTo == PathLogin {
		t.Fatalf("forbidden route must not redirect to login")
	}
	if want := Resolve(domain.RoleReceptionist).LandingPath; d.RedirectTo != want {
		t.Fatalf("expected redirect to %s, got %s", want, d.RedirectTo)
	}
}

func TestDecide_RestrictedPathAllowsListedRole(t *testing.T) {
	d := Decide(sessionWithRole(domain.RoleManager), PathApartments)
	if d.Outcome != OutcomeGranted {
		t.Fatalf("manager must be granted %s, got %s", PathApartments, d.Outcome)
	}
	if d.View != ViewApartmentsManagement {
		t.Fatalf("expected %s, got %s", ViewApartmentsManagement, d.View)
	}
}

func TestDecide_UnknownRoleNeverReachesStaffConsole(t *testing.T) {
	snap := domain.Session{
		Token: "token",
		User:  &domain.UserProfile{ID: 9, Username: "odd", Role: "chairman"},
	}

	d := Decide(snap, PathUsers)
	if d.Outcome != OutcomeDefaultRedirect {
		t.Fatalf("unrecognised role must be treated as resident, got %s", d.Outcome)
	}
}

func TestDecidePublic_Inverted(t *testing.T) {
	// Authenticated sessions are sent away from login.
	d := DecidePublic(sessionWithRole(domain.RoleResident), PathLogin)
	if d.Outcome != OutcomeDefaultRedirect || d.RedirectTo != PathHome {
		t.Fatalf("authenticated login visit must redirect home, got %+v", d)
	}

	// Anonymous sessions render it.
	d = DecidePublic(domain.Session{}, PathLogin)
	if d.Outcome != OutcomeGranted || d.View != ViewLogin {
		t.Fatalf("anonymous login visit must render, got %+v", d)
	}

	d = DecidePublic(domain.Session{}, PathForgotPassword)
	if d.View != ViewForgotPassword {
		t.Fatalf("expected %s, got %s", ViewForgotPassword, d.View)
	}

	// Still pending while storage is being read.
	d = DecidePublic(domain.Session{Loading: true}, PathLogin)
	if d.Outcome != OutcomePending {
		t.Fatalf("loading session must yield pending, got %s", d.Outcome)
	}
}

func TestIsPublicPath(t *testing.T) {
	if !IsPublicPath(PathLogin) || !IsPublicPath(PathForgotPassword) {
		t.Fatalf("login and recovery must be public")
	}
	if IsPublicPath(PathBills) {
		t.Fatalf("%s must not be public", PathBills)
	}
}
