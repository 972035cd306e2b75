package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"session-service/app/domain"
	"session-service/app/port"
)

// Coordinator timing defaults, overridable via CoordinatorConfig
const (
	defaultBootTimeout        = 3 * time.Second
	defaultHydrationTimeout   = 2 * time.Second
	defaultRedirectGuardDelay = 100 * time.Millisecond
	defaultLoginRoute         = "/login"
	defaultDashboardRoute     = "/dashboard"
)

// CoordinatorConfig carries the tunables of the session coordinator
type CoordinatorConfig struct {
	BootTimeout        time.Duration
	HydrationTimeout   time.Duration
	RedirectGuardDelay time.Duration
	LoginRoute         string
	DashboardRoute     string
	StorageNamespace   string
	AdminEmails        []string
	AdminTier          domain.SubscriptionTier
}

func (cfg *CoordinatorConfig) applyDefaults() {
	if cfg.BootTimeout <= 0 {
		cfg.BootTimeout = defaultBootTimeout
	}
	if cfg.HydrationTimeout <= 0 {
		cfg.HydrationTimeout = defaultHydrationTimeout
	}
	if cfg.RedirectGuardDelay <= 0 {
		cfg.RedirectGuardDelay = defaultRedirectGuardDelay
	}
	if cfg.LoginRoute == "" {
		cfg.LoginRoute = defaultLoginRoute
	}
	if cfg.DashboardRoute == "" {
		cfg.DashboardRoute = defaultDashboardRoute
	}
	if cfg.AdminTier == "" {
		cfg.AdminTier = domain.TierElite
	}
}

// SessionCoordinator owns process-wide session state: the cached identity and
// session, the lazily hydrated profile, and the loading/initialized flags. It
// drives the boot sequence, consumes the identity provider's ordered event
// stream on a single goroutine, and arbitrates navigation redirects.
//
// State is guarded by a mutex so REST handlers can read snapshots while the
// event consumer and background hydrations write.
type SessionCoordinator struct {
	identity  port.IdentityProvider
	profiles  port.ProfileRepository
	navigator port.Navigator
	storage   port.KeyValueStore
	cfg       CoordinatorConfig
	logger    *slog.Logger

	mu          sync.RWMutex
	state       domain.SessionSnapshot
	redirecting bool

	adminEmails map[string]struct{}

	initOnce  sync.Once
	closeOnce sync.Once
	closed    atomic.Bool
	done      chan struct{}
	sub       port.Subscription
	wg        sync.WaitGroup
}

// NewSessionCoordinator creates a coordinator wired to its collaborators.
// The coordinator is inert until Start is called.
func NewSessionCoordinator(
	identity port.IdentityProvider,
	profiles port.ProfileRepository,
	navigator port.Navigator,
	storage port.KeyValueStore,
	cfg CoordinatorConfig,
	logger *slog.Logger,
) *SessionCoordinator {
	cfg.applyDefaults()

	adminEmails := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		adminEmails[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &SessionCoordinator{
		identity:    identity,
		profiles:    profiles,
		navigator:   navigator,
		storage:     storage,
		cfg:         cfg,
		logger:      logger.With("component", "session_coordinator"),
		adminEmails: adminEmails,
		state:       domain.SessionSnapshot{IsLoading: true},
		done:        make(chan struct{}),
	}
}

// Start runs the boot sequence. It subscribes to the provider event stream,
// requests the current session racing the boot deadline, and unconditionally
// leaves the coordinator in a terminal initialized state. Provider failures are
// terminal for boot: the user starts logged out, no retry.
func (c *SessionCoordinator) Start(ctx context.Context) error {
	c.sub = c.identity.OnAuthStateChange()
	c.wg.Add(1)
	go c.consumeEvents()

	type lookup struct {
		session *domain.ProviderSession
		err     error
	}
	result := make(chan lookup, 1)
	go func() {
		session, err := c.identity.GetSession(ctx)
		result <- lookup{session: session, err: err}
	}()

	timer := time.NewTimer(c.cfg.BootTimeout)
	defer timer.Stop()

	select {
	case res := <-result:
		switch {
		case res.err != nil:
			c.logger.Error("boot session lookup failed, starting logged out", "error", res.err)
			c.clearState(ctx)
		case res.session == nil || !res.session.IsLive():
			c.clearState(ctx)
		default:
			c.applySession(res.session)
			c.spawnHydration(res.session.Identity)
		}
	case <-timer.C:
		// Degrade gracefully: keep whatever was last known rather than
		// blocking the UI forever.
		c.logger.Warn("boot session lookup timed out", "timeout", c.cfg.BootTimeout)
	}

	c.finishInit()
	return nil
}

// Close tears down the event subscription and waits for background work
func (c *SessionCoordinator) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
		if c.sub != nil {
			c.sub.Unsubscribe()
		}
		c.wg.Wait()
	})
}

// Snapshot returns a copy of the current coordinator state
func (c *SessionCoordinator) Snapshot() domain.SessionSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SignIn delegates the credential check to the identity provider. It does not
// mutate coordinator state itself; the SIGNED_IN event populates state and
// performs the redirect, so state is applied exactly once.
func (c *SessionCoordinator) SignIn(ctx context.Context, email, password string) error {
	if err := c.identity.SignInWithPassword(ctx, email, password); err != nil {
		c.logger.Info("sign-in rejected", "email", email, "error", err)
		return err
	}
	return nil
}

// SignUp registers a new identity with the provider. Profile creation is
// deferred to the SIGNED_IN event that follows, not performed inline.
func (c *SessionCoordinator) SignUp(ctx context.Context, email, password, displayName string) error {
	var metadata map[string]interface{}
	if displayName != "" {
		metadata = map[string]interface{}{"display_name": displayName}
	}
	if err := c.identity.SignUp(ctx, email, password, metadata); err != nil {
		c.logger.Info("sign-up rejected", "email", email, "error", err)
		return err
	}
	return nil
}

// SignOut clears local state first so the UI reflects logged-out immediately,
// then revokes the provider session best-effort, then redirects to the login
// route unconditionally. A direct user action bypasses the redirect guard but
// still arms it, so the trailing SIGNED_OUT event cannot redirect twice.
func (c *SessionCoordinator) SignOut(ctx context.Context) error {
	c.clearState(ctx)

	if err := c.identity.SignOut(ctx); err != nil {
		c.logger.Warn("provider sign-out failed", "error", err)
	}

	c.forceRedirect(c.cfg.LoginRoute)
	return nil
}

// UpdateProfile pushes metadata to the identity provider and the changed
// fields to the profile store, then re-runs hydration to refresh the cached
// profile. Requires a signed-in identity.
func (c *SessionCoordinator) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	snap := c.Snapshot()
	if snap.Identity == nil {
		return domain.ErrNoUserLoggedIn
	}
	if update.IsEmpty() {
		return domain.ErrEmptyUpdate
	}

	if update.DisplayName != nil {
		metadata := map[string]interface{}{"display_name": *update.DisplayName}
		if err := c.identity.UpdateUser(ctx, metadata); err != nil {
			return err
		}
	}

	if err := c.profiles.Update(ctx, snap.Identity.ID, update); err != nil {
		return err
	}

	c.spawnHydration(*snap.Identity)
	return nil
}

// IsAdmin derives admin standing from current state without I/O: an
// allow-listed email, a provider metadata flag, a provider metadata role, or
// the top subscription tier. Safe to call before hydration; a nil profile is
// simply not admin via tier.
func (c *SessionCoordinator) IsAdmin() bool {
	snap := c.Snapshot()
	if snap.Identity == nil {
		return false
	}
	if _, ok := c.adminEmails[strings.ToLower(snap.Identity.Email)]; ok {
		return true
	}
	if snap.Identity.HasAdminFlag() {
		return true
	}
	if snap.Identity.HasAdminRole() {
		return true
	}
	return snap.Profile != nil && snap.Profile.SubscriptionTier == c.cfg.AdminTier
}

// consumeEvents is the single consumer of the provider event stream. Single
// consumer semantics preserve delivery order and rule out overlapping handler
// invocations.
func (c *SessionCoordinator) consumeEvents() {
	defer c.wg.Done()
	for {
		select {
		case event, ok := <-c.sub.Events():
			if !ok {
				return
			}
			c.handleEvent(event)
		case <-c.done:
			return
		}
	}
}

// handleEvent reacts to one auth event. Panics are contained here so a broken
// handler cannot kill the subscription, and every path ends with the loading
// flag cleared.
func (c *SessionCoordinator) handleEvent(event domain.AuthEvent) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("auth event handler panicked", "event", event.Type, "panic", r)
		}
	}()
	defer c.setLoading(false)

	ctx := context.Background()

	switch event.Type {
	case domain.AuthEventSignedOut:
		c.clearState(ctx)
		if c.navigator.CurrentRoute() != c.cfg.LoginRoute {
			c.redirect(c.cfg.LoginRoute)
		}

	case domain.AuthEventSignedIn:
		if event.Session == nil {
			c.logger.Warn("signed-in event without session, ignoring")
			return
		}
		c.applySession(event.Session)
		c.spawnHydration(event.Session.Identity)
		if c.navigator.CurrentRoute() == c.cfg.LoginRoute {
			c.redirect(c.cfg.DashboardRoute)
		}

	case domain.AuthEventTokenRefreshed:
		if event.Session == nil {
			return
		}
		c.mu.Lock()
		c.state.Session = event.Session
		c.mu.Unlock()

	default:
		if event.Session != nil {
			c.applySession(event.Session)
			c.spawnHydration(event.Session.Identity)
		} else {
			c.clearState(ctx)
		}
	}
}

// applySession installs identity and session together. A profile hydrated for
// a different identity is dropped rather than left dangling.
func (c *SessionCoordinator) applySession(session *domain.ProviderSession) {
	identity := session.Identity
	c.mu.Lock()
	c.state.Identity = &identity
	c.state.Session = session
	if c.state.Profile != nil && c.state.Profile.UserID != identity.ID {
		c.state.Profile = nil
	}
	c.mu.Unlock()
}

// clearState is the idempotent reset shared by boot failure, explicit
// sign-out, and SIGNED_OUT events. The storage purge is best-effort: a storage
// failure must never block logout.
func (c *SessionCoordinator) clearState(ctx context.Context) {
	c.mu.Lock()
	c.state.Identity = nil
	c.state.Session = nil
	c.state.Profile = nil
	c.state.IsLoading = false
	c.mu.Unlock()

	if c.storage == nil {
		return
	}
	removed, err := c.storage.PurgeNamespace(ctx, c.cfg.StorageNamespace)
	if err != nil {
		c.logger.Warn("storage purge failed", "namespace", c.cfg.StorageNamespace, "error", err)
		return
	}
	if removed > 0 {
		c.logger.Debug("storage purged", "namespace", c.cfg.StorageNamespace, "removed", removed)
	}
}

// redirect navigates once per guard window. The guard latch is armed before
// the navigation call and released after a fixed delay that lets the
// navigation take effect; while armed, further redirects are dropped.
func (c *SessionCoordinator) redirect(route string) {
	c.mu.Lock()
	if c.redirecting {
		c.mu.Unlock()
		return
	}
	c.redirecting = true
	c.mu.Unlock()

	c.navigate(route)
	c.scheduleGuardRelease()
}

// forceRedirect navigates regardless of the guard state but arms the guard so
// racing auth events cannot stack a second navigation on top
func (c *SessionCoordinator) forceRedirect(route string) {
	c.mu.Lock()
	alreadyArmed := c.redirecting
	c.redirecting = true
	c.mu.Unlock()

	c.navigate(route)
	if !alreadyArmed {
		c.scheduleGuardRelease()
	}
}

func (c *SessionCoordinator) navigate(route string) {
	if err := c.navigator.Navigate(route); err != nil {
		c.logger.Warn("navigation failed", "route", route, "error", err)
	}
}

func (c *SessionCoordinator) scheduleGuardRelease() {
	time.AfterFunc(c.cfg.RedirectGuardDelay, func() {
		c.mu.Lock()
		c.redirecting = false
		c.mu.Unlock()
	})
}

// finishInit flips the terminal initialization flags exactly once
func (c *SessionCoordinator) finishInit() {
	c.initOnce.Do(func() {
		c.mu.Lock()
		c.state.IsLoading = false
		c.state.IsInitialized = true
		c.mu.Unlock()
		c.logger.Info("session coordinator initialized")
	})
}

func (c *SessionCoordinator) setLoading(loading bool) {
	c.mu.Lock()
	c.state.IsLoading = loading
	c.mu.Unlock()
}
