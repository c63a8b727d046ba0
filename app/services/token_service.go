package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload: the user ID plus the registered claims.
type Claims struct {
	UserID int `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. The signing secret
// is injected at construction, never read from process-wide state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new TokenService
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user's ID, expiring after the
// configured TTL.
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and verifies a token, returning the embedded user ID.
func (s *TokenService) Verify(tokenStr string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}
	if c, ok := token.Claims.(*Claims); ok && token.Valid {
		return c.UserID, nil
	}
	return 0, ErrInvalidToken
}
