package models

import (
	"errors"
	"strings"
)

// MinCredentialLength is the shortest id or key accepted in a credential code.
const MinCredentialLength = 8

// ErrInvalidCredentials is returned when a code is not of the form <id>#<key>
// or either part is too short.
var ErrInvalidCredentials = errors.New("credentials must be of the format <id>#<key>")

// Credentials address and unlock one encrypted blob. The pair is the only
// secret: the server never stores it in recoverable form.
type Credentials struct {
	ID  string
	Key string
}

// ParseCredentials parses a code of the form <id>#<key>.
func ParseCredentials(code string) (Credentials, error) {
	id, key, found := strings.Cut(strings.TrimSpace(code), "#")
	if !found || len(id) < MinCredentialLength || len(key) < MinCredentialLength {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{ID: id, Key: key}, nil
}

// Valid reports whether both parts are long enough to be used.
func (c Credentials) Valid() bool {
	return len(c.ID) >= MinCredentialLength && len(c.Key) >= MinCredentialLength
}

// String renders the credentials as a shareable code.
func (c Credentials) String() string {
	return c.ID + "#" + c.Key
}
