package routing

import "github.com/skyline-bms/apartment-portal/internal/core/domain"

// Outcome is the result of one navigation attempt. Every attempt starts
// unresolved and terminates in exactly one of these; nothing is cached
// across navigations.
type Outcome string

const (
	// OutcomePending: the session is still hydrating; render a neutral
	// placeholder and re-evaluate, never redirect.
	OutcomePending Outcome = "pending"
	// OutcomeGranted: render the requested view.
	OutcomeGranted Outcome = "granted"
	// OutcomeLoginRedirect: not authenticated; go to login carrying the
	// requested path as return target.
	OutcomeLoginRedirect Outcome = "redirect_login"
	// OutcomeDefaultRedirect: authenticated but the role may not render the
	// path; go to the role's landing path, not to login.
	OutcomeDefaultRedirect Outcome = "redirect_default"
)

// Decision is what the guard tells the navigation surface to do.
type Decision struct {
	Outcome    Outcome `json:"outcome"`
	View       View    `json:"view,omitempty"`
	RedirectTo string  `json:"redirect_to,omitempty"`
	ReturnTo   string  `json:"return_to,omitempty"`
}

// Decide evaluates one navigation to a protected path against a session
// snapshot.
func Decide(snap domain.Session, path string) Decision {
	if snap.Loading {
		return Decision{Outcome: OutcomePending}
	}

	if !snap.IsAuthenticated() {
		return Decision{
			Outcome:    OutcomeLoginRedirect,
			RedirectTo: PathLogin,
			ReturnTo:   path,
		}
	}

	role := snap.Role()
	if !Allowed(path, role) {
		return Decision{
			Outcome:    OutcomeDefaultRedirect,
			RedirectTo: Resolve(role).LandingPath,
		}
	}

	return Decision{Outcome: OutcomeGranted, View: ViewFor(role, path)}
}

// DecidePublic evaluates the login and password-recovery paths, which invert
// the main guard: an authenticated session is sent back to the landing path,
// an anonymous one renders normally.
func DecidePublic(snap domain.Session, path string) Decision {
	if snap.Loading {
		return Decision{Outcome: OutcomePending}
	}

	if snap.IsAuthenticated() {
		return Decision{Outcome: OutcomeDefaultRedirect, RedirectTo: PathHome}
	}

	return Decision{Outcome: OutcomeGranted, View: publicView(path)}
}

// IsPublicPath reports whether path uses the inverted guard.
func IsPublicPath(path string) bool {
	return path == PathLogin || path == PathForgotPassword
}

func publicView(path string) View {
	if path == PathForgotPassword {
		return ViewForgotPassword
	}
	return ViewLogin
}
