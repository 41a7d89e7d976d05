package token

import (
	"errors"
	"fmt"
	"time"

	"syncboard/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the set of identity attributes embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	Role identity.Role `json:"role"`
	Name string        `json:"name"`
}

type Servicer interface {
	Issue(username string, role identity.Role, name string) (string, error)
	Verify(raw string) (*Claims, error)
}

// Service signs and verifies session tokens with a symmetric secret.
// It keeps no other state and is safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl}
}

// Issue produces an HS256 token carrying the identity, role and display
// name, expiring after the configured TTL.
func (s *Service) Issue(username string, role identity.Role, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
		Name: name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry and returns the embedded
// claims unchanged. Expired tokens are distinguished from everything else;
// both sub-kinds surface as an authentication failure at the HTTP boundary.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
