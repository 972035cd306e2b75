package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier represents the subscription tier of a profile
type SubscriptionTier string

const (
	TierFree  SubscriptionTier = "free"
	TierPro   SubscriptionTier = "pro"
	TierElite SubscriptionTier = "elite"
)

// SubscriptionStatus represents the billing status of a subscription
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Default values applied when a profile is created lazily on first login
const (
	DefaultPaperBalance = 10000.0
	DefaultLiveBalance  = 0.0
	DefaultRiskPercent  = 2.0
	DefaultLocale       = "en"
	DefaultTimezone     = "UTC"
)

// Profile is the application-owned record keyed by identity id. It carries the
// user's trading-simulation state and preferences, distinct from the identity
// itself which the provider owns.
type Profile struct {
	UserID               uuid.UUID              `json:"user_id"`
	DisplayName          string                 `json:"display_name"`
	SubscriptionTier     SubscriptionTier       `json:"subscription_tier"`
	SubscriptionStatus   SubscriptionStatus     `json:"subscription_status"`
	Locale               string                 `json:"locale"`
	Timezone             string                 `json:"timezone"`
	PaperBalance         float64                `json:"paper_balance"`
	LiveBalance          float64                `json:"live_balance"`
	RiskPercent          float64                `json:"risk_percent"`
	NotificationSettings map[string]interface{} `json:"notification_settings,omitempty"`
	IsActive             bool                   `json:"is_active"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

// ProfileUpdate carries the fields of an explicit profile edit. Nil fields are
// left untouched by the update.
type ProfileUpdate struct {
	DisplayName          *string                `json:"display_name,omitempty"`
	Locale               *string                `json:"locale,omitempty"`
	Timezone             *string                `json:"timezone,omitempty"`
	RiskPercent          *float64               `json:"risk_percent,omitempty"`
	NotificationSettings map[string]interface{} `json:"notification_settings,omitempty"`
}

// NewProfile builds the default profile for a newly seen identity. The display
// name falls back to the email local-part when the provider supplied none.
func NewProfile(identity *Identity) (*Profile, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity is required")
	}
	if identity.ID == (uuid.UUID{}) {
		return nil, fmt.Errorf("identity ID is required")
	}

	displayName := identity.MetadataDisplayName()
	if displayName == "" {
		displayName = EmailLocalPart(identity.Email)
	}

	now := time.Now()

	return &Profile{
		UserID:             identity.ID,
		DisplayName:        displayName,
		SubscriptionTier:   TierFree,
		SubscriptionStatus: SubscriptionTrial,
		Locale:             DefaultLocale,
		Timezone:           DefaultTimezone,
		PaperBalance:       DefaultPaperBalance,
		LiveBalance:        DefaultLiveBalance,
		RiskPercent:        DefaultRiskPercent,
		NotificationSettings: map[string]interface{}{
			"email_alerts": true,
			"push_alerts":  false,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// EmailLocalPart returns the part of an email address before the '@'.
// Invalid addresses are returned as-is so a degraded display name still renders.
func EmailLocalPart(email string) string {
	if _, err := mail.ParseAddress(email); err != nil {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return email[:strings.Index(email, "@")]
}

// Apply merges an update into the profile and bumps the updated timestamp
func (p *Profile) Apply(update ProfileUpdate) {
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.Locale != nil {
		p.Locale = *update.Locale
	}
	if update.Timezone != nil {
		p.Timezone = *update.Timezone
	}
	if update.RiskPercent != nil {
		p.RiskPercent = *update.RiskPercent
	}
	if update.NotificationSettings != nil {
		p.NotificationSettings = update.NotificationSettings
	}
	p.UpdatedAt = time.Now()
}

// IsEmpty returns true if the update carries no changes
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil &&
		u.Locale == nil &&
		u.Timezone == nil &&
		u.RiskPercent == nil &&
		u.NotificationSettings == nil
}
