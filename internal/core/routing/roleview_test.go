package routing

import (
	"reflect"
	"testing"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

var allRoles = []domain.Role{
	domain.RoleResident,
	domain.RoleManager,
	domain.RoleAccountant,
	domain.RoleReceptionist,
	domain.RoleAdmin,
}

func TestResolve_Deterministic(t *testing.T) {
	for _, role := range allRoles {
		first := Resolve(role)
		second := Resolve(role)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Resolve(%s) not deterministic", role)
		}
		if len(first.Nav) == 0 {
			t.Fatalf("Resolve(%s) returned empty navigation", role)
		}
		if first.LandingPath == "" {
			t.Fatalf("Resolve(%s) returned empty landing path", role)
		}
	}
}

func TestResolve_UnknownRoleFallsToResident(t *testing.T) {
	resident := Resolve(domain.RoleResident)

	for _, role := range []domain.Role{"", "superuser", "Manager", "root"} {
		got := Resolve(role)
		if !reflect.DeepEqual(got, resident) {
			t.Fatalf("Resolve(%q) = %+v, want resident view", role, got)
		}
		if got.Dashboard != ViewDashboard {
			t.Fatalf("Resolve(%q) dashboard = %s, must never be a staff view", role, got.Dashboard)
		}
	}
}

func TestResolve_DashboardSubRule(t *testing.T) {
	cases := map[domain.Role]View{
		domain.RoleManager:      ViewManagerDashboard,
		domain.RoleAccountant:   ViewAccountantDashboard,
		domain.RoleReceptionist: ViewReceptionistDashboard,
		domain.RoleAdmin:        ViewDashboard,
		domain.RoleResident:     ViewDashboard,
	}
	for role, want := range cases {
		if got := Resolve(role).Dashboard; got != want {
			t.Fatalf("Resolve(%s).Dashboard = %s, want %s", role, got, want)
		}
	}
}

// Every path a role can navigate to must also pass the permission table for
// that role: no navigable-but-forbidden links.
func TestResolve_NavigationNeverForbidden(t *testing.T) {
	for _, role := range allRoles {
		for _, entry := range Resolve(role).Nav {
			if !Allowed(entry.Path, role) {
				t.Fatalf("role %s navigates to %s but is not permitted there", role, entry.Path)
			}
		}
	}
}

func TestResolveSession_NoProfile(t *testing.T) {
	got := ResolveSession(domain.Session{Token: "orphan-token"})
	if !reflect.DeepEqual(got, Resolve(domain.RoleResident)) {
		t.Fatalf("session without profile must resolve to resident view, got %+v", got)
	}
}
