package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-service/app/domain"
	mock_port "session-service/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSubscription feeds a controllable ordered event stream into the coordinator
type fakeSubscription struct {
	events chan domain.AuthEvent
	once   sync.Once
}

func (s *fakeSubscription) Events() <-chan domain.AuthEvent { return s.events }

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.events) })
}

type coordinatorFixture struct {
	coordinator *SessionCoordinator
	provider    *mock_port.MockIdentityProvider
	profiles    *mock_port.MockProfileRepository
	navigator   *mock_port.MockNavigator
	storage     *mock_port.MockKeyValueStore
	events      chan domain.AuthEvent
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	fx := &coordinatorFixture{
		provider:  mock_port.NewMockIdentityProvider(ctrl),
		profiles:  mock_port.NewMockProfileRepository(ctrl),
		navigator: mock_port.NewMockNavigator(ctrl),
		storage:   mock_port.NewMockKeyValueStore(ctrl),
		events:    make(chan domain.AuthEvent, 16),
	}

	fx.provider.EXPECT().
		OnAuthStateChange().
		Return(&fakeSubscription{events: fx.events})

	cfg := CoordinatorConfig{
		BootTimeout:        50 * time.Millisecond,
		HydrationTimeout:   40 * time.Millisecond,
		RedirectGuardDelay: 30 * time.Millisecond,
		LoginRoute:         "/login",
		DashboardRoute:     "/dashboard",
		StorageNamespace:   "kratos:",
		AdminEmails:        []string{"root@signals.example"},
		AdminTier:          domain.TierElite,
	}
	fx.coordinator = NewSessionCoordinator(
		fx.provider, fx.profiles, fx.navigator, fx.storage, cfg, testLogger())
	t.Cleanup(fx.coordinator.Close)

	return fx
}

func (fx *coordinatorFixture) allowPurges() {
	fx.storage.EXPECT().
		PurgeNamespace(gomock.Any(), "kratos:").
		Return(0, nil).
		AnyTimes()
}

func testSession(email string) *domain.ProviderSession {
	return &domain.ProviderSession{
		Token:     "tok-" + uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
		Identity: domain.Identity{
			ID:        uuid.New(),
			Email:     email,
			CreatedAt: time.Now(),
		},
	}
}

func testProfileFor(session *domain.ProviderSession) *domain.Profile {
	profile, _ := domain.NewProfile(&session.Identity)
	return profile
}

func TestSessionCoordinator_BootWithLiveSession(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")
	profile := testProfileFor(session)

	fx.provider.EXPECT().
		GetSession(gomock.Any()).
		Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(profile, nil)

	require.NoError(t, fx.coordinator.Start(context.Background()))

	snap := fx.coordinator.Snapshot()
	require.NotNil(t, snap.Identity)
	assert.Equal(t, session.Identity.ID, snap.Identity.ID)
	require.NotNil(t, snap.Session)
	assert.True(t, snap.IsInitialized)
	assert.False(t, snap.IsLoading)

	// Profile arrives in the background, within the hydration deadline
	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Profile != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, session.Identity.ID, fx.coordinator.Snapshot().Profile.UserID)
}

func TestSessionCoordinator_BootProviderHangs(t *testing.T) {
	fx := newCoordinatorFixture(t)

	block := make(chan struct{})
	fx.provider.EXPECT().
		GetSession(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.ProviderSession, error) {
			<-block
			return nil, nil
		})
	t.Cleanup(func() { close(block) })

	start := time.Now()
	require.NoError(t, fx.coordinator.Start(context.Background()))
	elapsed := time.Since(start)

	snap := fx.coordinator.Snapshot()
	assert.True(t, snap.IsInitialized, "boot must terminate even when the provider never answers")
	assert.False(t, snap.IsLoading)
	assert.Nil(t, snap.Identity)
	assert.GreaterOrEqual(t, elapsed, 45*time.Millisecond)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestSessionCoordinator_BootProviderError(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().
		GetSession(gomock.Any()).
		Return(nil, assert.AnError)

	require.NoError(t, fx.coordinator.Start(context.Background()))

	snap := fx.coordinator.Snapshot()
	assert.True(t, snap.IsInitialized)
	assert.False(t, snap.IsLoading)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Session)
	assert.Nil(t, snap.Profile)
}

func TestSessionCoordinator_BootNoSession(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().
		GetSession(gomock.Any()).
		Return(nil, nil)

	require.NoError(t, fx.coordinator.Start(context.Background()))

	snap := fx.coordinator.Snapshot()
	assert.True(t, snap.IsInitialized)
	assert.Nil(t, snap.Identity)
}

func TestSessionCoordinator_InitializationMonotonic(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	fx.navigator.EXPECT().CurrentRoute().Return("/login").AnyTimes()

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedOut}
	fx.events <- domain.AuthEvent{Type: domain.AuthEventUserUpdated}

	require.Eventually(t, func() bool {
		return !fx.coordinator.Snapshot().IsLoading
	}, time.Second, 5*time.Millisecond)
	assert.True(t, fx.coordinator.Snapshot().IsInitialized,
		"isInitialized must never revert to false")
}

func TestSessionCoordinator_SignedInEvent(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.navigator.EXPECT().CurrentRoute().Return("/login").AnyTimes()
	fx.navigator.EXPECT().Navigate("/dashboard").Return(nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session}

	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Identity != nil && snap.Profile != nil && !snap.IsLoading
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, session.Identity.ID, fx.coordinator.Snapshot().Identity.ID)
}

func TestSessionCoordinator_RedirectSingleFire(t *testing.T) {
	fx := newCoordinatorFixture(t)
	// A guard window far longer than the burst below
	fx.coordinator.cfg.RedirectGuardDelay = time.Second
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	fx.allowPurges()
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.navigator.EXPECT().CurrentRoute().Return("/login").AnyTimes()
	fx.navigator.EXPECT().Navigate("/dashboard").Return(nil).Times(1)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil).
		AnyTimes()

	for i := 0; i < 5; i++ {
		fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session}
	}

	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Identity != nil && !snap.IsLoading
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_SignedOutClearsAdminState(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")
	session.Identity.Metadata = map[string]interface{}{"is_admin": true}

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))
	require.True(t, fx.coordinator.IsAdmin())

	fx.navigator.EXPECT().CurrentRoute().Return("/dashboard")
	fx.navigator.EXPECT().Navigate("/login").Return(nil)

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedOut}

	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Identity == nil
	}, time.Second, 5*time.Millisecond)
	assert.False(t, fx.coordinator.IsAdmin(), "no stale admin standing after sign-out")
	assert.Nil(t, fx.coordinator.Snapshot().Profile)
}

func TestSessionCoordinator_TokenRefreshedKeepsIdentity(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")
	profile := testProfileFor(session)

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(profile, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Profile != nil
	}, time.Second, 5*time.Millisecond)

	refreshed := *session
	refreshed.Token = "tok-refreshed"
	refreshed.ExpiresAt = time.Now().Add(2 * time.Hour)

	fx.events <- domain.AuthEvent{Type: domain.AuthEventTokenRefreshed, Session: &refreshed}

	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Session.Token == "tok-refreshed"
	}, time.Second, 5*time.Millisecond)

	snap := fx.coordinator.Snapshot()
	assert.Equal(t, session.Identity.ID, snap.Identity.ID, "identity unchanged on refresh")
	assert.NotNil(t, snap.Profile, "profile untouched on refresh")
}

func TestSessionCoordinator_OtherEventWithoutSessionClears(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.events <- domain.AuthEvent{Type: domain.AuthEventUserUpdated}

	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Identity == nil
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_HydrationDoesNotBlockLoading(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	storeRelease := make(chan struct{})
	fx.navigator.EXPECT().CurrentRoute().Return("/dashboard").AnyTimes()
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
			<-storeRelease
			return testProfileFor(session), nil
		})

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session}

	// Loading clears and identity lands while the profile store is still hanging
	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Identity != nil && !snap.IsLoading
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, fx.coordinator.Snapshot().Profile)

	close(storeRelease)
	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Profile != nil
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_SignOut(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.storage.EXPECT().PurgeNamespace(gomock.Any(), "kratos:").Return(3, nil)
	fx.provider.EXPECT().SignOut(gomock.Any()).Return(nil)
	fx.navigator.EXPECT().Navigate("/login").Return(nil)

	require.NoError(t, fx.coordinator.SignOut(context.Background()))

	snap := fx.coordinator.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Session)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsInitialized)
}

func TestSessionCoordinator_SignOutSurvivesProviderAndStorageFailures(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.storage.EXPECT().PurgeNamespace(gomock.Any(), "kratos:").Return(0, assert.AnError)
	fx.provider.EXPECT().SignOut(gomock.Any()).Return(assert.AnError)
	fx.navigator.EXPECT().Navigate("/login").Return(nil)

	// Local-first logout: neither failure is surfaced
	require.NoError(t, fx.coordinator.SignOut(context.Background()))
	assert.Nil(t, fx.coordinator.Snapshot().Identity)
}

func TestSessionCoordinator_ClearStateIdempotent(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.coordinator.clearState(context.Background())
	first := fx.coordinator.Snapshot()
	fx.coordinator.clearState(context.Background())
	second := fx.coordinator.Snapshot()

	assert.Equal(t, first, second)
	assert.Nil(t, second.Identity)
	assert.True(t, second.IsInitialized)
}

func TestSessionCoordinator_SignInDelegatesToProvider(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.provider.EXPECT().
		SignInWithPassword(gomock.Any(), "trader@example.com", "hunter2").
		Return(nil)

	require.NoError(t, fx.coordinator.SignIn(context.Background(), "trader@example.com", "hunter2"))

	// No state application outside the event handler
	assert.Nil(t, fx.coordinator.Snapshot().Identity)
}

func TestSessionCoordinator_SignInRejected(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.provider.EXPECT().
		SignInWithPassword(gomock.Any(), "trader@example.com", "wrong").
		Return(domain.ErrInvalidCredentials)

	err := fx.coordinator.SignIn(context.Background(), "trader@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSessionCoordinator_SignUpPassesDisplayName(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	fx.provider.EXPECT().
		SignUp(gomock.Any(), "new@example.com", "hunter2",
			map[string]interface{}{"display_name": "New Trader"}).
		Return(nil)

	require.NoError(t, fx.coordinator.SignUp(context.Background(), "new@example.com", "hunter2", "New Trader"))
}

func TestSessionCoordinator_UpdateProfileRequiresIdentity(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	risk := 1.0
	err := fx.coordinator.UpdateProfile(context.Background(), domain.ProfileUpdate{RiskPercent: &risk})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoUserLoggedIn)
	assert.Equal(t, "No user logged in", err.Error())
	// The mock controller verifies the profile store saw zero calls
}

func TestSessionCoordinator_UpdateProfile(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")
	profile := testProfileFor(session)

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(profile, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	displayName := "Renamed Trader"
	update := domain.ProfileUpdate{DisplayName: &displayName}

	fx.provider.EXPECT().
		UpdateUser(gomock.Any(), map[string]interface{}{"display_name": "Renamed Trader"}).
		Return(nil)
	fx.profiles.EXPECT().
		Update(gomock.Any(), session.Identity.ID, update).
		Return(nil)

	renamed := *profile
	renamed.DisplayName = displayName
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(&renamed, nil)

	require.NoError(t, fx.coordinator.UpdateProfile(context.Background(), update))

	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Profile != nil && snap.Profile.DisplayName == "Renamed Trader"
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_UpdateProfileProviderFailureShortCircuits(t *testing.T) {
	fx := newCoordinatorFixture(t)
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(session, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	displayName := "Renamed"
	fx.provider.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := fx.coordinator.UpdateProfile(context.Background(), domain.ProfileUpdate{DisplayName: &displayName})
	assert.ErrorIs(t, err, assert.AnError)
	// Profile store sees no Update call; the mock controller enforces it
}

func TestSessionCoordinator_IdentitySwitchNeverLeaksProfile(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	alice := testSession("alice@example.com")
	bob := testSession("bob@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(alice, nil)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), alice.Identity.ID).
		Return(testProfileFor(alice), nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	require.Eventually(t, func() bool {
		return fx.coordinator.Snapshot().Profile != nil
	}, time.Second, 5*time.Millisecond)

	fx.navigator.EXPECT().CurrentRoute().Return("/login").AnyTimes()
	fx.navigator.EXPECT().Navigate(gomock.Any()).Return(nil).AnyTimes()

	bobRelease := make(chan struct{})
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), bob.Identity.ID).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
			<-bobRelease
			return testProfileFor(bob), nil
		})

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedOut}
	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: bob}

	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Identity != nil && snap.Identity.ID == bob.Identity.ID
	}, time.Second, 5*time.Millisecond)

	// While bob's hydration is still pending, alice's profile must be gone
	snap := fx.coordinator.Snapshot()
	assert.Nil(t, snap.Profile, "profile must never reference a previous identity")

	close(bobRelease)
	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Profile != nil && snap.Profile.UserID == bob.Identity.ID
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_EventHandlerPanicDoesNotKillSubscription(t *testing.T) {
	fx := newCoordinatorFixture(t)
	fx.allowPurges()
	session := testSession("trader@example.com")

	fx.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	require.NoError(t, fx.coordinator.Start(context.Background()))

	gomock.InOrder(
		fx.navigator.EXPECT().CurrentRoute().DoAndReturn(func() string {
			panic("navigator exploded")
		}),
		fx.navigator.EXPECT().CurrentRoute().Return("/dashboard"),
	)
	fx.profiles.EXPECT().
		GetByUserID(gomock.Any(), session.Identity.ID).
		Return(testProfileFor(session), nil)

	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedOut}
	fx.events <- domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session}

	require.Eventually(t, func() bool {
		snap := fx.coordinator.Snapshot()
		return snap.Identity != nil && snap.Identity.ID == session.Identity.ID
	}, time.Second, 5*time.Millisecond)
}

func TestSessionCoordinator_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *domain.Identity
		profile  *domain.Profile
		want     bool
	}{
		{
			name: "not signed in",
			want: false,
		},
		{
			name:     "allow-listed email",
			identity: &domain.Identity{ID: uuid.New(), Email: "root@signals.example"},
			want:     true,
		},
		{
			name:     "allow-list is case insensitive",
			identity: &domain.Identity{ID: uuid.New(), Email: "Root@Signals.example"},
			want:     true,
		},
		{
			name: "metadata admin flag",
			identity: &domain.Identity{
				ID: uuid.New(), Email: "x@example.com",
				Metadata: map[string]interface{}{"is_admin": true},
			},
			want: true,
		},
		{
			name: "metadata admin role",
			identity: &domain.Identity{
				ID: uuid.New(), Email: "x@example.com",
				Metadata: map[string]interface{}{"role": "admin"},
			},
			want: true,
		},
		{
			name:     "top subscription tier",
			identity: &domain.Identity{ID: uuid.New(), Email: "x@example.com"},
			profile:  &domain.Profile{SubscriptionTier: domain.TierElite},
			want:     true,
		},
		{
			name:     "plain user with pro tier",
			identity: &domain.Identity{ID: uuid.New(), Email: "x@example.com"},
			profile:  &domain.Profile{SubscriptionTier: domain.TierPro},
			want:     false,
		},
		{
			name:     "plain user before hydration",
			identity: &domain.Identity{ID: uuid.New(), Email: "x@example.com"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			coordinator := NewSessionCoordinator(
				mock_port.NewMockIdentityProvider(ctrl),
				mock_port.NewMockProfileRepository(ctrl),
				mock_port.NewMockNavigator(ctrl),
				mock_port.NewMockKeyValueStore(ctrl),
				CoordinatorConfig{
					AdminEmails: []string{"root@signals.example"},
					AdminTier:   domain.TierElite,
				},
				testLogger(),
			)

			coordinator.mu.Lock()
			coordinator.state.Identity = tt.identity
			if tt.identity != nil {
				coordinator.state.Session = &domain.ProviderSession{Token: "tok"}
			}
			coordinator.state.Profile = tt.profile
			coordinator.mu.Unlock()

			assert.Equal(t, tt.want, coordinator.IsAdmin())
		})
	}
}
