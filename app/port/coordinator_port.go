package port

//go:generate mockgen -source=coordinator_port.go -destination=../mocks/mock_coordinator_port.go

import (
	"context"

	"session-service/app/domain"
)

// SessionCoordinator is the session lifecycle manager exposed to the REST
// layer. Snapshot and IsAdmin are synchronous reads; the remaining operations
// delegate to the identity provider and rely on the event stream to apply
// state, so none of them block on background profile hydration.
type SessionCoordinator interface {
	// Start runs the boot sequence: subscribe to the provider event stream,
	// look up the current session racing the boot deadline, and mark the
	// coordinator initialized. It returns once initialization is terminal.
	Start(ctx context.Context) error

	// Close unsubscribes from the event stream and stops background work
	Close()

	// Snapshot returns the current coordinator state
	Snapshot() domain.SessionSnapshot

	// Explicit operations. Errors are caller-displayable; nothing panics
	// across this boundary.
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, displayName string) error
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error

	// IsAdmin is a pure derived predicate; safe to call before hydration
	IsAdmin() bool
}
