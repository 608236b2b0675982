package ports

import (
	"context"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
)

// Navigator receives route changes triggered by session state transitions.
// The CLI implements it by switching its current view; tests record calls.
type Navigator interface {
	NavigateTo(path string)
}

// TokenSource yields the current bearer credential, or "" when logged out.
// The API gateway reads it on every outbound request.
type TokenSource interface {
	Token() string
}

// SessionService is the single source of truth for who is logged in and with
// what role.
type SessionService interface {
	TokenSource

	// Initialize restores a persisted session. Corrupt or partial persisted
	// state degrades to logged-out and is purged, never surfaced as an error.
	// Always terminates with Loading() == false.
	Initialize(ctx context.Context)

	// Login persists the user and token, sets the in-memory session and
	// navigates to the role's home route.
	Login(ctx context.Context, user domain.User, token string) error

	// Logout purges persisted session state, publishes a session-ended
	// signal and navigates to the root route.
	Logout(ctx context.Context) error

	// Current returns the logged-in user, or nil.
	Current() *domain.User

	// Loading is true until Initialize has completed. Access-control
	// decisions must not be made while it is set.
	Loading() bool

	IsAdmin() bool
	IsCustomer() bool
}
