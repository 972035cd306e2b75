package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"session-service/app/domain"

	"github.com/google/uuid"
)

// ProfileRepository defines profile data access keyed by identity id
type ProfileRepository interface {
	// GetByUserID returns domain.ErrProfileNotFound when no row exists
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// Insert stores a new profile and returns the stored row.
	// Returns domain.ErrProfileConflict when the row already exists.
	Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// Update applies the non-nil fields of the update plus the updated-at
	// timestamp to the row for userID
	Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) error
}
