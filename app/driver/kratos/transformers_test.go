package kratos

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToDomain(t *testing.T) {
	identityID := uuid.New()
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	created := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second)

	kratosSession := &kratosclient.Session{
		Id:        "sess-1",
		ExpiresAt: &expiry,
		Identity: &kratosclient.Identity{
			Id: identityID.String(),
			Traits: map[string]interface{}{
				"email":        "trader@example.com",
				"display_name": "Candle Wizard",
			},
			MetadataPublic: map[string]interface{}{
				"is_admin": true,
			},
			CreatedAt: &created,
		},
	}

	session, err := sessionToDomain(kratosSession, "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, expiry, session.ExpiresAt)
	assert.Equal(t, identityID, session.Identity.ID)
	assert.Equal(t, "trader@example.com", session.Identity.Email)
	assert.Equal(t, created, session.Identity.CreatedAt)
	// Traits minus email merge with public metadata
	assert.Equal(t, "Candle Wizard", session.Identity.Metadata["display_name"])
	assert.Equal(t, true, session.Identity.Metadata["is_admin"])
	assert.NotContains(t, session.Identity.Metadata, "email")
}

func TestSessionToDomain_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		session *kratosclient.Session
	}{
		{
			name:    "missing identity",
			session: &kratosclient.Session{Id: "sess-1"},
		},
		{
			name: "malformed identity id",
			session: &kratosclient.Session{
				Id: "sess-1",
				Identity: &kratosclient.Identity{
					Id:     "not-a-uuid",
					Traits: map[string]interface{}{"email": "trader@example.com"},
				},
			},
		},
		{
			name: "identity without email trait",
			session: &kratosclient.Session{
				Id: "sess-1",
				Identity: &kratosclient.Identity{
					Id:     uuid.NewString(),
					Traits: map[string]interface{}{"display_name": "No Mail"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := sessionToDomain(tt.session, "tok-1")
			assert.Error(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestSessionToDomain_ExpiryFromJWT(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "sess-1",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	kratosSession := &kratosclient.Session{
		Id: "sess-1",
		Identity: &kratosclient.Identity{
			Id:     uuid.NewString(),
			Traits: map[string]interface{}{"email": "trader@example.com"},
		},
	}

	session, err := sessionToDomain(kratosSession, token)

	require.NoError(t, err)
	assert.Equal(t, expiry.Unix(), session.ExpiresAt.Unix())
}

func TestTokenExpiry(t *testing.T) {
	t.Run("opaque token has no expiry", func(t *testing.T) {
		_, ok := tokenExpiry("ory_st_opaque-token")
		assert.False(t, ok)
	})

	t.Run("jwt without exp claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "sess-1",
		}).SignedString([]byte("test-key"))
		require.NoError(t, err)

		_, ok := tokenExpiry(token)
		assert.False(t, ok)
	})
}
