// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how new blobs are written.
type Format string

const (
	// FormatLegacy is AES-256-CBC with an IV derived from the key. It is
	// deterministic and readable by the servers that wrote the first blobs.
	FormatLegacy Format = "legacy"

	// FormatV2 is AES-256-GCM under an HKDF-derived key with a random salt
	// and nonce per blob.
	FormatV2 Format = "v2"
)

// blobCipher is the private implementation of [BlobCipher].
type blobCipher struct {
	format Format
	random io.Reader
}

// NewBlobCipher returns a [BlobCipher] that writes blobs in format and reads
// both formats.
func NewBlobCipher(format Format) (BlobCipher, error) {
	switch format {
	case FormatLegacy, FormatV2:
	case "":
		format = FormatLegacy
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &blobCipher{format: format, random: rand.Reader}, nil
}

func (c *blobCipher) Encrypt(plaintext []byte, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	if c.format == FormatV2 {
		return encryptV2(plaintext, key, c.random)
	}
	return encryptLegacy(plaintext, key)
}

func (c *blobCipher) Decrypt(blob []byte, key string) ([]byte, error) {
	var (
		plaintext []byte
		err       error
	)
	if rest, ok := bytes.CutPrefix(blob, v2Prefix); ok {
		plaintext, err = decryptV2(rest, key)
	} else {
		plaintext, err = decryptLegacy(blob, key)
	}
	if err != nil || len(plaintext) == 0 {
		return nil, ErrInvalidKey
	}

	return plaintext, nil
}

func (c *blobCipher) EncryptJSON(v any, key string) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}
	return c.Encrypt(plaintext, key)
}

func (c *blobCipher) DecryptJSON(blob []byte, key string, target any) error {
	plaintext, err := c.Decrypt(blob, key)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(plaintext, target); err != nil {
		return ErrInvalidKey
	}
	return nil
}
