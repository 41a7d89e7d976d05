package identity

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Provider is the credential backend abstraction. The static file-backed
// implementation below is the default; a real directory or database backend
// only needs to implement Lookup.
type Provider interface {
	Lookup(username string) (Credential, bool)
}

// StaticProvider serves credentials from an immutable in-memory table
// loaded once at startup.
type StaticProvider struct {
	creds map[string]Credential
}

func NewStaticProvider(creds []Credential) *StaticProvider {
	m := make(map[string]Credential, len(creds))
	for _, c := range creds {
		m[c.Username] = c
	}
	return &StaticProvider{creds: m}
}

func (p *StaticProvider) Lookup(username string) (Credential, bool) {
	c, ok := p.creds[username]
	return c, ok
}

type usersFile struct {
	Users []Credential `mapstructure:"users"`
}

// LoadUsersFile reads the YAML credentials file. Entries must carry a
// bcrypt hash and a known role; plaintext passwords are not accepted.
func LoadUsersFile(path string) ([]Credential, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var f usersFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	if len(f.Users) == 0 {
		return nil, fmt.Errorf("%w: no users defined", ErrInvalidUsersFile)
	}

	for _, c := range f.Users {
		if c.Username == "" {
			return nil, fmt.Errorf("%w: entry without username", ErrInvalidUsersFile)
		}
		if !strings.HasPrefix(c.PasswordHash, "$2a$") &&
			!strings.HasPrefix(c.PasswordHash, "$2b$") &&
			!strings.HasPrefix(c.PasswordHash, "$2y$") {
			return nil, fmt.Errorf("%w: user %q: password_hash is not a bcrypt hash", ErrInvalidUsersFile, c.Username)
		}
		if !c.Role.Valid() {
			return nil, fmt.Errorf("%w: user %q: unknown role %q", ErrInvalidUsersFile, c.Username, c.Role)
		}
	}

	return f.Users, nil
}
