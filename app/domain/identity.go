package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity represents the authenticated principal issued by the identity provider
type Identity struct {
	ID        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ProviderSession represents the provider-issued credential proving an identity
// is currently authenticated. The coordinator only ever holds a read-only copy;
// the identity provider owns the session lifecycle.
type ProviderSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

// AuthEventType identifies a transition on the identity provider's event stream
type AuthEventType string

const (
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	AuthEventUserUpdated    AuthEventType = "USER_UPDATED"
	AuthEventInitialSession AuthEventType = "INITIAL_SESSION"
)

// AuthEvent is a single entry on the identity provider's ordered event stream.
// Session is nil for events that carry no live session (e.g. SIGNED_OUT).
type AuthEvent struct {
	Type    AuthEventType    `json:"type"`
	Session *ProviderSession `json:"session,omitempty"`
}

// MetadataDisplayName extracts a display name from provider metadata
func (i *Identity) MetadataDisplayName() string {
	if i.Metadata == nil {
		return ""
	}
	if name, ok := i.Metadata["display_name"].(string); ok {
		return name
	}
	if name, ok := i.Metadata["name"].(string); ok {
		return name
	}
	return ""
}

// HasAdminFlag returns true if provider metadata marks this identity as admin
func (i *Identity) HasAdminFlag() bool {
	if i.Metadata == nil {
		return false
	}
	if flag, ok := i.Metadata["is_admin"].(bool); ok && flag {
		return true
	}
	return false
}

// HasAdminRole returns true if provider metadata carries an admin role
func (i *Identity) HasAdminRole() bool {
	if i.Metadata == nil {
		return false
	}
	if role, ok := i.Metadata["role"].(string); ok && role == "admin" {
		return true
	}
	return false
}

// IsExpired returns true if the session has expired
func (s *ProviderSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsLive returns true if the session carries a token and has not expired
func (s *ProviderSession) IsLive() bool {
	return s.Token != "" && !s.IsExpired()
}
