package identity

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// dummyHash is compared against when the username is unknown, so that
// both failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Servicer interface {
	Authenticate(ctx context.Context, username, password string) (User, error)
}

type Service struct {
	provider Provider
	log      *slog.Logger
}

func NewService(provider Provider, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With(slog.String("component", "identity")),
	}
}

// Authenticate checks username/password against the provider. Every
// mismatch returns ErrInvalidCredentials with no further detail.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	cred, ok := s.provider.Lookup(username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("password mismatch", "username", username)
		return User{}, ErrInvalidCredentials
	}

	return User{Username: cred.Username, Role: cred.Role, Name: cred.Name}, nil
}
