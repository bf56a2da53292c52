package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		s, err := RandomString(DefaultIDLength)
		require.NoError(t, err)
		require.Len(t, s, DefaultIDLength)

		assert.True(t, strings.ContainsRune(letters, rune(s[0])), "first char must be a letter: %q", s)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(alphanumeric, c), "unexpected char %q in %q", c, s)
		}
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestRandomString_Empty(t *testing.T) {
	s, err := RandomString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestGenerateCredentials(t *testing.T) {
	creds, err := GenerateCredentials()
	require.NoError(t, err)

	assert.Len(t, creds.ID, SyncIDLength)
	assert.Len(t, creds.Key, SyncKeyLength)
	assert.True(t, creds.Valid())
}
