package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

const legacyKeySize = 32

var errBadPadding = errors.New("bad padding")

// legacyKeyIV mirrors the openssl defaults the first server relied on: the
// key is NUL-padded or cut to 32 bytes and the IV is the first 16 hex
// characters of sha256(key), taken as ASCII.
func legacyKeyIV(key string) ([]byte, []byte) {
	k := make([]byte, legacyKeySize)
	copy(k, key)

	sum := sha256.Sum256([]byte(key))
	iv := []byte(hex.EncodeToString(sum[:])[:aes.BlockSize])

	return k, iv
}

// encryptLegacy returns base64(base64(AES-256-CBC(plaintext))).
func encryptLegacy(plaintext []byte, key string) ([]byte, error) {
	k, iv := legacyKeyIV(key)
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	inner := base64.StdEncoding.EncodeToString(ct)
	return []byte(base64.StdEncoding.EncodeToString([]byte(inner))), nil
}

func decryptLegacy(blob []byte, key string) ([]byte, error) {
	inner, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(blob)))
	if err != nil {
		return nil, err
	}
	ct, err := base64.StdEncoding.DecodeString(string(inner))
	if err != nil {
		return nil, err
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, errBadPadding
	}

	k, iv := legacyKeyIV(key)
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, err
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)

	return pkcs7Unpad(pt, aes.BlockSize)
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, errBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errBadPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errBadPadding
		}
	}
	return b[:len(b)-n], nil
}
