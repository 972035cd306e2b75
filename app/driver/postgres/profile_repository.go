package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"session-service/app/domain"
	"session-service/app/port"
)

const uniqueViolationCode = "23505"

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetByUserID fetches the profile keyed by identity id
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT
			user_id, display_name, subscription_tier, subscription_status,
			locale, timezone, paper_balance, live_balance, risk_percent,
			notification_settings, is_active, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	profile := &domain.Profile{}
	var tier, status string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&tier,
		&status,
		&profile.Locale,
		&profile.Timezone,
		&profile.PaperBalance,
		&profile.LiveBalance,
		&profile.RiskPercent,
		&profile.NotificationSettings,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.SubscriptionTier = domain.SubscriptionTier(tier)
	profile.SubscriptionStatus = domain.SubscriptionStatus(status)
	return profile, nil
}

// Insert stores a new profile. A concurrent insert for the same identity maps
// to ErrProfileConflict so callers can treat creation as idempotent.
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (
			user_id, display_name, subscription_tier, subscription_status,
			locale, timezone, paper_balance, live_balance, risk_percent,
			notification_settings, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`

	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.DisplayName,
		string(profile.SubscriptionTier),
		string(profile.SubscriptionStatus),
		profile.Locale,
		profile.Timezone,
		profile.PaperBalance,
		profile.LiveBalance,
		profile.RiskPercent,
		profile.NotificationSettings,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrProfileConflict
		}
		r.logger.Error("failed to insert profile", "user_id", profile.UserID, "error", err)
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	r.logger.Info("profile created", "user_id", profile.UserID, "display_name", profile.DisplayName)
	return profile, nil
}

// Update applies the non-nil fields of the update to the stored profile
func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return domain.ErrEmptyUpdate
	}

	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.DisplayName != nil {
		addField("display_name", *update.DisplayName)
	}
	if update.Locale != nil {
		addField("locale", *update.Locale)
	}
	if update.Timezone != nil {
		addField("timezone", *update.Timezone)
	}
	if update.RiskPercent != nil {
		addField("risk_percent", *update.RiskPercent)
	}
	if update.NotificationSettings != nil {
		addField("notification_settings", update.NotificationSettings)
	}
	addField("updated_at", time.Now())

	args = append(args, userID)
	query := fmt.Sprintf(
		"UPDATE profiles SET %s WHERE user_id = $%d",
		strings.Join(set, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update profile", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile updated", "user_id", userID, "fields", len(set)-1)
	return nil
}
