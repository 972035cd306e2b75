package port

//go:generate mockgen -source=kratos_port.go -destination=../mocks/mock_kratos_port.go

import (
	"context"

	"session-service/app/domain"
)

// KratosFrontend is the driver-level surface of the Ory Kratos frontend API
// consumed by the identity gateway. All session material travels as the
// provider-issued session token.
type KratosFrontend interface {
	// WhoAmI resolves a session token to its live session.
	// Returns domain.ErrSessionNotFound for unknown or revoked tokens.
	WhoAmI(ctx context.Context, sessionToken string) (*domain.ProviderSession, error)

	// LoginWithPassword runs a native login flow and returns the new session
	LoginWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error)

	// RegisterWithPassword runs a native registration flow. Traits beyond the
	// email are stored as identity metadata.
	RegisterWithPassword(ctx context.Context, email, password string, traits map[string]interface{}) (*domain.ProviderSession, error)

	// Logout revokes the session behind the token
	Logout(ctx context.Context, sessionToken string) error

	// UpdateTraits pushes trait changes through a native settings flow
	UpdateTraits(ctx context.Context, sessionToken string, traits map[string]interface{}) error
}
