package kratos

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"session-service/app/domain"
)

// sessionToDomain maps a Kratos session onto the domain model. The session
// token is carried by the caller because Kratos never echoes it back on
// introspection responses.
func sessionToDomain(kratosSession *kratosclient.Session, token string) (*domain.ProviderSession, error) {
	identity := kratosSession.GetIdentity()
	if identity.Id == "" {
		return nil, fmt.Errorf("kratos session %s has no identity", kratosSession.Id)
	}

	domainIdentity, err := identityToDomain(&identity)
	if err != nil {
		return nil, err
	}

	session := &domain.ProviderSession{
		Token:    token,
		Identity: *domainIdentity,
	}

	switch {
	case kratosSession.ExpiresAt != nil:
		session.ExpiresAt = *kratosSession.ExpiresAt
	default:
		// Tokenized sessions carry their expiry in the JWT itself
		if expiry, ok := tokenExpiry(token); ok {
			session.ExpiresAt = expiry
		}
	}

	return session, nil
}

// identityToDomain maps a Kratos identity onto the domain model. The email
// trait is promoted to a first-class field; the remaining traits and the
// public metadata become the identity metadata map.
func identityToDomain(kratosIdentity *kratosclient.Identity) (*domain.Identity, error) {
	id, err := uuid.Parse(kratosIdentity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid kratos identity id %q: %w", kratosIdentity.Id, err)
	}

	identity := &domain.Identity{
		ID:        id,
		CreatedAt: kratosIdentity.GetCreatedAt(),
	}

	metadata := make(map[string]interface{})
	if traits, ok := kratosIdentity.GetTraits().(map[string]interface{}); ok {
		for key, value := range traits {
			if key == "email" {
				if email, ok := value.(string); ok {
					identity.Email = email
				}
				continue
			}
			metadata[key] = value
		}
	}
	if public, ok := kratosIdentity.GetMetadataPublic().(map[string]interface{}); ok {
		for key, value := range public {
			metadata[key] = value
		}
	}
	if len(metadata) > 0 {
		identity.Metadata = metadata
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("kratos identity %s has no email trait", kratosIdentity.Id)
	}

	return identity, nil
}

// tokenExpiry extracts the exp claim from a JWT-shaped session token. The
// signature is deliberately not verified: the token was just received from
// Kratos over the authenticated channel, only its expiry is of interest here.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
