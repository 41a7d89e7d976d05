package identity

import "errors"

var (
	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown user and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidUsersFile = errors.New("invalid users file")
)
