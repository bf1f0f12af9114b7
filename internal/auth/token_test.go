package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    uuid.New(),
		Email: "editor@vault.io",
		Name:  "Content Editor",
		Role:  model.RoleEditor,
	}
}

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, model.RoleEditor, claims.Role)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, SessionLifetime, lifetime)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("test-secret")

	expired := &SessionClaims{
		UserID: uuid.NewString(),
		Email:  "viewer@vault.io",
		Name:   "External Viewer",
		Role:   model.RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString(svc.secret)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("right-secret").Issue(testUser())
	require.NoError(t, err)

	claims, err := NewTokenService("wrong-secret").Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, token := range []string{"", "garbage", "not.a.jwt"} {
		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	}
}

func TestTokenService_Verify_TamperedClaims(t *testing.T) {
	svc := NewTokenService("test-secret")
	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	// Flip a byte in the payload segment; the signature no longer matches.
	tampered := []byte(token)
	tampered[len(tampered)/2] ^= 0x01

	claims, err := svc.Verify(string(tampered))
	assert.Nil(t, claims)
	assert.Error(t, err)
}
