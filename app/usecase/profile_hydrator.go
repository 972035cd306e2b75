package usecase

import (
	"context"
	"errors"

	"session-service/app/domain"

	"github.com/google/uuid"
)

// Background profile hydration. Hydration never blocks sign-in or boot
// completion: callers fire it and move on, and a slow profile store only
// delays the profile, never the session. Invocations are independent; writes
// are idempotent by identity id, so the last one wins without deduplication.

// spawnHydration schedules a hydration for the given identity on its own
// goroutine, tracked so Close can wait for it
func (c *SessionCoordinator) spawnHydration(identity domain.Identity) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.hydrateProfile(identity)
	}()
}

// hydrateProfile looks the profile up against its own deadline, distinct from
// the boot deadline. Not-found triggers default-profile creation; a timeout or
// any other error leaves the profile as-is and gives up until the next
// triggering event.
func (c *SessionCoordinator) hydrateProfile(identity domain.Identity) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.HydrationTimeout)
	defer cancel()

	profile, err := c.profiles.GetByUserID(ctx, identity.ID)
	if c.closed.Load() {
		return
	}

	switch {
	case err == nil:
		c.setProfile(identity.ID, profile)
	case errors.Is(err, domain.ErrProfileNotFound):
		c.createDefaultProfile(ctx, identity.ID)
	default:
		c.logger.Warn("profile hydration failed, keeping last known profile",
			"user_id", identity.ID,
			"error", err)
	}
}

// createDefaultProfile performs the exactly-once-effective creation of a
// default profile for a newly seen identity. The current identity is re-read
// from state rather than trusted from the caller, guarding against a
// hydration that outlived a sign-out or user switch.
func (c *SessionCoordinator) createDefaultProfile(ctx context.Context, userID uuid.UUID) {
	snap := c.Snapshot()
	if snap.Identity == nil || snap.Identity.ID != userID {
		c.logger.Debug("identity changed during hydration, skipping profile creation",
			"user_id", userID)
		return
	}

	profile, err := domain.NewProfile(snap.Identity)
	if err != nil {
		c.logger.Warn("default profile construction failed", "user_id", userID, "error", err)
		return
	}

	stored, err := c.profiles.Insert(ctx, profile)
	if c.closed.Load() {
		return
	}
	if err != nil {
		// The user keeps identity-gated access; profile-dependent UI degrades
		c.logger.Warn("profile creation failed, continuing without profile",
			"user_id", userID,
			"error", err)
		return
	}

	c.logger.Info("default profile created",
		"user_id", userID,
		"display_name", stored.DisplayName)
	c.setProfile(userID, stored)
}

// setProfile installs a hydrated profile only while the identity it belongs to
// is still current, so the profile can never reference a different identity id
func (c *SessionCoordinator) setProfile(userID uuid.UUID, profile *domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Identity == nil || c.state.Identity.ID != userID {
		c.logger.Debug("discarding stale profile hydration", "user_id", userID)
		return
	}
	c.state.Profile = profile
}
