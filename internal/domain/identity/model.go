package identity

// Role is the authorization level carried in session tokens.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// User is the authenticated identity handed to the rest of the system.
// It never carries password material.
type User struct {
	Username string
	Role     Role
	Name     string
}

// Credential is one entry of the credential store: a username mapped to a
// bcrypt password hash, a role and a display name.
type Credential struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	Role         Role   `mapstructure:"role"`
	Name         string `mapstructure:"name"`
}
