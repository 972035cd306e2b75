package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"session-service/app/domain"
	"session-service/app/port"
)

const sessionTokenKey = "session_token"

// IdentityGateway implements port.IdentityProvider on top of the Kratos
// frontend API. It is the anti-corruption layer between the coordinator and
// the identity provider: it owns the current session token, persists it in the
// key-value store so a restart resumes the session, and synthesizes the
// ordered auth event stream from its own operations plus the session watcher.
type IdentityGateway struct {
	kratos     port.KratosFrontend
	storage    port.KeyValueStore
	dispatcher *eventDispatcher
	namespace  string
	logger     *slog.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(
	kratos port.KratosFrontend,
	storage port.KeyValueStore,
	namespace string,
	logger *slog.Logger,
) *IdentityGateway {
	return &IdentityGateway{
		kratos:     kratos,
		storage:    storage,
		namespace:  namespace,
		dispatcher: newEventDispatcher(logger),
		logger:     logger.With("component", "identity_gateway"),
	}
}

// OnAuthStateChange subscribes to the synthesized auth event stream
func (g *IdentityGateway) OnAuthStateChange() port.Subscription {
	return g.dispatcher.Subscribe()
}

// Close stops the event dispatcher. In-flight subscriptions see their channels
// closed.
func (g *IdentityGateway) Close() {
	g.dispatcher.Close()
}

// GetSession resolves the current session against Kratos. No token, a revoked
// token, or an expired token all mean "no session" rather than an error; only
// a provider failure surfaces as one.
func (g *IdentityGateway) GetSession(ctx context.Context) (*domain.ProviderSession, error) {
	token := g.loadToken(ctx)
	if token == "" {
		return nil, nil
	}

	session, err := g.kratos.WhoAmI(ctx, token)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		g.forgetToken()
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	g.rememberSession(ctx, session)
	return session, nil
}

// SignInWithPassword exchanges credentials for a session and emits SIGNED_IN
func (g *IdentityGateway) SignInWithPassword(ctx context.Context, email, password string) error {
	session, err := g.kratos.LoginWithPassword(ctx, email, password)
	if err != nil {
		return err
	}

	g.rememberSession(ctx, session)
	g.logger.Info("signed in", "user_id", session.Identity.ID)
	g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session})
	return nil
}

// SignUp registers a new identity. Kratos signs the new identity in as part of
// registration, so a successful sign-up also emits SIGNED_IN.
func (g *IdentityGateway) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	session, err := g.kratos.RegisterWithPassword(ctx, email, password, metadata)
	if err != nil {
		return err
	}

	g.rememberSession(ctx, session)
	g.logger.Info("registered", "user_id", session.Identity.ID)
	g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session})
	return nil
}

// SignOut revokes the current session and emits SIGNED_OUT. The token is
// forgotten and the event emitted even when revocation fails; the caller
// decides whether the revocation error matters.
func (g *IdentityGateway) SignOut(ctx context.Context) error {
	token := g.takeToken()

	var revokeErr error
	if token != "" {
		if err := g.kratos.Logout(ctx, token); err != nil {
			g.logger.Warn("session revocation failed", "error", err)
			revokeErr = err
		}
	}

	g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventSignedOut})
	return revokeErr
}

// UpdateUser pushes identity metadata to Kratos, then refreshes the session
// and emits USER_UPDATED so subscribers pick up the new traits
func (g *IdentityGateway) UpdateUser(ctx context.Context, metadata map[string]interface{}) error {
	token := g.loadToken(ctx)
	if token == "" {
		return domain.ErrNoUserLoggedIn
	}

	if err := g.kratos.UpdateTraits(ctx, token, metadata); err != nil {
		return fmt.Errorf("failed to update identity traits: %w", err)
	}

	session, err := g.kratos.WhoAmI(ctx, token)
	if err != nil {
		// The update itself succeeded; the next watcher tick reconciles
		g.logger.Warn("session refresh after trait update failed", "error", err)
		return nil
	}

	g.rememberSession(ctx, session)
	g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventUserUpdated, Session: session})
	return nil
}

// Watch polls Kratos for session liveness until ctx is cancelled. A revoked or
// expired session emits SIGNED_OUT; an extended expiry emits TOKEN_REFRESHED.
// Transient provider failures are logged and retried on the next tick.
func (g *IdentityGateway) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.logger.Info("session watcher started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("session watcher stopped")
			return
		case <-ticker.C:
			g.checkSession(ctx)
		}
	}
}

func (g *IdentityGateway) checkSession(ctx context.Context) {
	g.mu.Lock()
	token := g.token
	lastExpiry := g.expiresAt
	g.mu.Unlock()

	if token == "" {
		return
	}

	session, err := g.kratos.WhoAmI(ctx, token)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		g.logger.Info("session no longer valid, signing out")
		g.forgetToken()
		g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventSignedOut})
	case err != nil:
		g.logger.Warn("session liveness check failed", "error", err)
	case session.ExpiresAt.After(lastExpiry):
		g.rememberSession(ctx, session)
		g.dispatcher.Emit(domain.AuthEvent{Type: domain.AuthEventTokenRefreshed, Session: session})
	}
}

// rememberSession caches the session token in memory and persists it
// best-effort so a process restart can resume the session
func (g *IdentityGateway) rememberSession(ctx context.Context, session *domain.ProviderSession) {
	g.mu.Lock()
	g.token = session.Token
	g.expiresAt = session.ExpiresAt
	g.mu.Unlock()

	if g.storage == nil {
		return
	}
	if err := g.storage.Set(ctx, g.namespace+sessionTokenKey, session.Token); err != nil {
		g.logger.Warn("failed to persist session token", "error", err)
	}
}

// loadToken returns the in-memory token, falling back to the persisted one
func (g *IdentityGateway) loadToken(ctx context.Context) string {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()
	if token != "" || g.storage == nil {
		return token
	}

	stored, err := g.storage.Get(ctx, g.namespace+sessionTokenKey)
	if err != nil {
		g.logger.Warn("failed to load persisted session token", "error", err)
		return ""
	}
	if stored != "" {
		g.mu.Lock()
		g.token = stored
		g.mu.Unlock()
	}
	return stored
}

func (g *IdentityGateway) forgetToken() {
	g.mu.Lock()
	g.token = ""
	g.expiresAt = time.Time{}
	g.mu.Unlock()
}

func (g *IdentityGateway) takeToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	token := g.token
	g.token = ""
	g.expiresAt = time.Time{}
	return token
}
