// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func uploadBody(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(models.ActionRequest{
		Action: models.ActionUploadAndMerge,
		ID:     "abcdefghijklmnop",
		Key:    "abcdefghijklmnopqrstuvwxyz012345",
		Body: models.EntityMap{
			"note-1": {Content: models.Content{Text: text}, CreatedAt: 1, LastModified: 2},
		},
	})
	require.NoError(t, err)
	return body
}

func TestHash_MatchesHashString(t *testing.T) {
	InitHasherPool(testHashKey)
	body := uploadBody(t, "groceries")

	got := hex.EncodeToString(Hash(body))

	assert.Equal(t, HashString(string(body), testHashKey), got)
	assert.Len(t, got, 64)
}

func TestHash_Deterministic(t *testing.T) {
	InitHasherPool(testHashKey)
	body := uploadBody(t, "groceries")

	assert.Equal(t, Hash(body), Hash(body))
}

func TestHash_DifferentBodies(t *testing.T) {
	InitHasherPool(testHashKey)

	assert.NotEqual(t, Hash(uploadBody(t, "milk")), Hash(uploadBody(t, "bread")))
}

// один и тот же запрос под разными ключами даёт разные подписи
func TestHash_DifferentKeys(t *testing.T) {
	body := uploadBody(t, "groceries")

	InitHasherPool("key-one")
	first := Hash(body)

	InitHasherPool("key-two")
	second := Hash(body)

	assert.NotEqual(t, first, second)
}

func TestHashString_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		HashString("what do ya want for nothing?", "Jefe"))
}
