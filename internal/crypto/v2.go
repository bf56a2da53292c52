package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	v2SaltSize = 16
	v2KeySize  = 32
)

var (
	v2Prefix = []byte("v2:")
	v2Info   = []byte("go-note-keeper blob v2")

	errShortBlob = errors.New("blob too short")
)

func v2AEAD(key string, salt []byte) (cipher.AEAD, error) {
	k := make([]byte, v2KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(key), salt, v2Info), k); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// encryptV2 returns "v2:" + base64(salt ‖ nonce ‖ ciphertext).
func encryptV2(plaintext []byte, key string, random io.Reader) ([]byte, error) {
	salt := make([]byte, v2SaltSize)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, err
	}

	gcm, err := v2AEAD(key, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(random, nonce); err != nil {
		return nil, err
	}

	raw := append(salt, nonce...)
	raw = gcm.Seal(raw, nonce, plaintext, v2Prefix)

	out := make([]byte, len(v2Prefix)+base64.StdEncoding.EncodedLen(len(raw)))
	copy(out, v2Prefix)
	base64.StdEncoding.Encode(out[len(v2Prefix):], raw)
	return out, nil
}

func decryptV2(encoded []byte, key string) ([]byte, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(raw, encoded)
	if err != nil {
		return nil, err
	}
	raw = raw[:n]

	if len(raw) < v2SaltSize {
		return nil, errShortBlob
	}
	salt, rest := raw[:v2SaltSize], raw[v2SaltSize:]

	gcm, err := v2AEAD(key, salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, errShortBlob
	}
	nonce, ct := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ct, v2Prefix)
}
