// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildReadBlobQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildReadBlobQuery(models.NamespaceNotes, "abcdefgh", now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE blobs SET accessed_at = $1 WHERE namespace = $2 AND id = $3 RETURNING data", query)
	assert.Equal(t, []any{now, "notes", "abcdefgh"}, args)
}

func Test_buildWriteBlobQuery_Upserts(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildWriteBlobQuery(models.NamespaceShared, "share-1", []byte("blob"), now)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO blobs (namespace,id,data,accessed_at) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "ON CONFLICT (namespace, id) DO UPDATE")
	assert.Equal(t, []any{"shared", "share-1", []byte("blob"), now}, args)
}

func Test_buildCreateBlobQuery_HasNoConflictClause(t *testing.T) {
	query, _, err := buildCreateBlobQuery(models.NamespaceShared, "share-1", []byte("blob"), time.Now())
	require.NoError(t, err)

	assert.NotContains(t, query, "ON CONFLICT")
}

func Test_buildListBlobsQuery(t *testing.T) {
	query, args, err := buildListBlobsQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT namespace, id, accessed_at FROM blobs ORDER BY namespace, id", query)
	assert.Empty(t, args)
}

func Test_buildDeleteIdleBlobQuery(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteIdleBlobQuery(models.NamespaceShared, "share-1", cutoff)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM blobs WHERE namespace = $1 AND id = $2 AND accessed_at < $3", query)
	assert.Equal(t, []any{"shared", "share-1", cutoff}, args)
}

func Test_buildIncrementCounterBelowQuery_CeilingIsLastArg(t *testing.T) {
	query, args, err := buildIncrementCounterBelowQuery("2026-03-01", "create", 300)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE daily_counters.count < $4 RETURNING count")
	assert.Equal(t, []any{"2026-03-01", "create", 1, int64(300)}, args)
}

func Test_buildSQLiteQueries_UseQuestionPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, []any, error)
		want  string
	}{
		{
			name:  "insert entity",
			build: func() (string, []any, error) { return buildInsertEntityQuery("a", []byte(`{}`)) },
			want:  "INSERT INTO entities (id,data) VALUES (?,?)",
		},
		{
			name:  "select entities",
			build: buildSelectEntitiesQuery,
			want:  "SELECT id, data FROM entities",
		},
		{
			name:  "get setting",
			build: func() (string, []any, error) { return buildGetSettingQuery(SettingSyncKey) },
			want:  "SELECT value FROM settings WHERE key = ?",
		},
		{
			name:  "set setting",
			build: func() (string, []any, error) { return buildSetSettingQuery(SettingSyncKey, "v") },
			want:  "INSERT INTO settings (key,value) VALUES (?,?) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.NotContains(t, query, "$1")
		})
	}
}
