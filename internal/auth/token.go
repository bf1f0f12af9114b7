package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"vault/internal/model"
)

// SessionLifetime is the duration for which session tokens are valid.
const SessionLifetime = 7 * 24 * time.Hour

var (
	// ErrTokenMalformed is returned when a token cannot be parsed at all.
	ErrTokenMalformed = errors.New("malformed session token")
	// ErrTokenInvalid is returned when a token fails signature or expiry checks.
	ErrTokenInvalid = errors.New("invalid session token")
)

// SessionClaims is the identity claim set embedded in a session token.
type SessionClaims struct {
	UserID string     `json:"userId"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. Verification is
// stateless: signature plus expiry, nothing stored server-side.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a session token for the user, valid for SessionLifetime.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Callers receive a tri-state outcome: claims, ErrTokenInvalid, or
// ErrTokenMalformed. It never panics on arbitrary input.
func (s *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return nil, ErrTokenMalformed
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
