package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Blob produced by `openssl enc -aes-256-cbc -base64` with the same key and
// IV derivation the first server used, then base64-encoded once more.
const (
	legacyKey       = "abcdefgh12345678"
	legacyPlaintext = `{"n1":{"content":{"text":"hi"},"createdAt":1,"lastModified":1}}`
	legacyBlob      = "dS9pV05WWkwyenJVUGQzUktPOXZrRzVMaXUyQy95MkN5MFZRVGJkdHd5aUhqVUZMaTFrUGZtRW5USS9nSVo4M1FXNEUxR041Nk1MTkFPZkRRbkd0QUE9PQ=="
)

func newCipher(t *testing.T, format Format) BlobCipher {
	t.Helper()
	c, err := NewBlobCipher(format)
	require.NoError(t, err)
	return c
}

// ── NewBlobCipher ────────────────────────────────────────────────────────────

func TestNewBlobCipher(t *testing.T) {
	for _, f := range []Format{"", FormatLegacy, FormatV2} {
		_, err := NewBlobCipher(f)
		assert.NoError(t, err, f)
	}

	_, err := NewBlobCipher("rot13")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// ── Legacy ───────────────────────────────────────────────────────────────────

func TestLegacy_MatchesKnownBlob(t *testing.T) {
	c := newCipher(t, FormatLegacy)

	blob, err := c.Encrypt([]byte(legacyPlaintext), legacyKey)
	require.NoError(t, err)
	assert.Equal(t, legacyBlob, string(blob))

	pt, err := c.Decrypt([]byte(legacyBlob), legacyKey)
	require.NoError(t, err)
	assert.Equal(t, legacyPlaintext, string(pt))
}

func TestLegacy_IsDeterministic(t *testing.T) {
	c := newCipher(t, FormatLegacy)

	a, err := c.Encrypt([]byte(`{"a":1}`), "samekey01")
	require.NoError(t, err)
	b, err := c.Encrypt([]byte(`{"a":1}`), "samekey01")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLegacy_LongKeyIsTruncated(t *testing.T) {
	c := newCipher(t, FormatLegacy)
	long := strings.Repeat("k", 40)

	blob, err := c.Encrypt([]byte(`{}`), long)
	require.NoError(t, err)

	pt, err := c.Decrypt(blob, long)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(pt))
}

// ── Round trip ───────────────────────────────────────────────────────────────

func TestRoundTrip(t *testing.T) {
	plaintexts := []string{
		`{}`,
		`{"n1":{"content":{"text":"ünïcödé ✓"},"lastModified":1}}`,
		`[1,2,3]`,
		`"` + strings.Repeat("x", 15) + `"`,
		`"` + strings.Repeat("y", 4096) + `"`,
	}

	for _, format := range []Format{FormatLegacy, FormatV2} {
		t.Run(string(format), func(t *testing.T) {
			c := newCipher(t, format)
			for _, p := range plaintexts {
				blob, err := c.Encrypt([]byte(p), "roundtripkey")
				require.NoError(t, err)

				got, err := c.Decrypt(blob, "roundtripkey")
				require.NoError(t, err)
				assert.Equal(t, p, string(got))
			}
		})
	}
}

func TestDecrypt_ReadsBothFormats(t *testing.T) {
	legacy := newCipher(t, FormatLegacy)
	v2 := newCipher(t, FormatV2)

	oldBlob, err := legacy.Encrypt([]byte(`{"v":1}`), "mixedkey01")
	require.NoError(t, err)
	newBlob, err := v2.Encrypt([]byte(`{"v":2}`), "mixedkey01")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(newBlob, v2Prefix))

	got, err := v2.Decrypt(oldBlob, "mixedkey01")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))

	got, err = legacy.Decrypt(newBlob, "mixedkey01")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))
}

func TestV2_IsRandomized(t *testing.T) {
	c := newCipher(t, FormatV2)

	a, err := c.Encrypt([]byte(`{}`), "randomkey1")
	require.NoError(t, err)
	b, err := c.Encrypt([]byte(`{}`), "randomkey1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// ── Failures ─────────────────────────────────────────────────────────────────

func TestDecrypt_WrongKeyFails(t *testing.T) {
	for _, format := range []Format{FormatLegacy, FormatV2} {
		t.Run(string(format), func(t *testing.T) {
			c := newCipher(t, format)
			blob, err := c.EncryptJSON(map[string]int{"a": 1}, "rightkey01")
			require.NoError(t, err)

			var out map[string]int
			err = c.DecryptJSON(blob, "wrongkey01", &out)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestDecrypt_Garbage(t *testing.T) {
	c := newCipher(t, FormatLegacy)

	inputs := [][]byte{
		nil,
		[]byte("not base64 at all!"),
		[]byte("dGVzdA=="),
		[]byte("v2:"),
		[]byte("v2:dGVzdA=="),
	}
	for _, in := range inputs {
		_, err := c.Decrypt(in, "somekey123")
		assert.ErrorIs(t, err, ErrInvalidKey, string(in))
	}
}

func TestDecrypt_EmptyPlaintextIsFailure(t *testing.T) {
	c := newCipher(t, FormatLegacy)

	blob, err := c.Encrypt(nil, "emptykey01")
	require.NoError(t, err)

	_, err = c.Decrypt(blob, "emptykey01")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestEncrypt_EmptyKey(t *testing.T) {
	c := newCipher(t, FormatV2)

	_, err := c.Encrypt([]byte(`{}`), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestDecryptJSON_NotJSON(t *testing.T) {
	c := newCipher(t, FormatLegacy)
	blob, err := c.Encrypt([]byte("plain text"), "jsonkey001")
	require.NoError(t, err)

	var out any
	assert.ErrorIs(t, c.DecryptJSON(blob, "jsonkey001", &out), ErrInvalidKey)
}

func TestPKCS7(t *testing.T) {
	for n := range 33 {
		in := bytes.Repeat([]byte{'a'}, n)
		padded := pkcs7Pad(in, 16)
		require.Zero(t, len(padded)%16)

		out, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	_, err := pkcs7Unpad([]byte{1, 2, 3}, 16)
	assert.ErrorIs(t, err, errBadPadding)
	_, err = pkcs7Unpad(bytes.Repeat([]byte{0}, 16), 16)
	assert.ErrorIs(t, err, errBadPadding)
}
