package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"session-service/app/domain"
)

// IdentityProvider defines the identity-provider collaborator consumed by the
// session coordinator. The provider owns session and credential lifecycle; this
// service only reads the results.
type IdentityProvider interface {
	// GetSession returns the current live session, or nil when nobody is
	// signed in. Errors indicate the provider could not be reached.
	GetSession(ctx context.Context) (*domain.ProviderSession, error)

	// Credential operations. Successful SignInWithPassword/SignUp emit a
	// SIGNED_IN event on the change stream rather than returning the session;
	// state application happens exactly once, in the event handler.
	SignInWithPassword(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error
	SignOut(ctx context.Context) error

	// UpdateUser pushes metadata changes to the provider-held identity
	UpdateUser(ctx context.Context, metadata map[string]interface{}) error

	// OnAuthStateChange subscribes to the ordered session change stream.
	// Events are delivered in provider order and never concurrently.
	OnAuthStateChange() Subscription
}

// Subscription is a handle on the identity provider's event stream
type Subscription interface {
	// Events returns the ordered stream of auth events. The channel is closed
	// by Unsubscribe.
	Events() <-chan domain.AuthEvent

	// Unsubscribe detaches from the stream and closes the event channel
	Unsubscribe()
}
