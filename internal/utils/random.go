package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyz"
	alphanumeric = letters + "0123456789"

	// DefaultIDLength is the length of the random part of entity ids.
	DefaultIDLength = 14

	SyncIDLength  = 16
	SyncKeyLength = 32
)

// RandomString returns a string of n characters from [a-z0-9] drawn from the
// OS CSPRNG. The first character is always a letter so the result can be
// used wherever an identifier is expected.
func RandomString(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		charset := alphanumeric
		if i == 0 {
			charset = letters
		}
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b), nil
}

// MustRandomString is like [RandomString] but panics if the CSPRNG fails.
func MustRandomString(n int) string {
	s, err := RandomString(n)
	if err != nil {
		panic(err)
	}
	return s
}

// GenerateCredentials returns a fresh id/key pair for a sync account or a
// shared note.
func GenerateCredentials() (models.Credentials, error) {
	id, err := RandomString(SyncIDLength)
	if err != nil {
		return models.Credentials{}, err
	}
	key, err := RandomString(SyncKeyLength)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{ID: id, Key: key}, nil
}
