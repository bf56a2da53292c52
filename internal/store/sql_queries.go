package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// ── blobs (postgres) ──────────────────────────────────────────────────────────

// buildReadBlobQuery refreshes accessed_at and returns the payload in one
// statement.
func buildReadBlobQuery(ns models.Namespace, id string, now time.Time) (string, []any, error) {
	return psql.Update("blobs").
		Set("accessed_at", now).
		Where("namespace = ? AND id = ?", string(ns), id).
		Suffix("RETURNING data").
		ToSql()
}

func buildWriteBlobQuery(ns models.Namespace, id string, blob []byte, now time.Time) (string, []any, error) {
	return psql.Insert("blobs").
		Columns("namespace", "id", "data", "accessed_at").
		Values(string(ns), id, blob, now).
		Suffix("ON CONFLICT (namespace, id) DO UPDATE SET data = EXCLUDED.data, accessed_at = EXCLUDED.accessed_at").
		ToSql()
}

func buildCreateBlobQuery(ns models.Namespace, id string, blob []byte, now time.Time) (string, []any, error) {
	return psql.Insert("blobs").
		Columns("namespace", "id", "data", "accessed_at").
		Values(string(ns), id, blob, now).
		ToSql()
}

func buildDeleteIdleBlobQuery(ns models.Namespace, id string, cutoff time.Time) (string, []any, error) {
	return psql.Delete("blobs").
		Where("namespace = ? AND id = ? AND accessed_at < ?", string(ns), id, cutoff).
		ToSql()
}

func buildListBlobsQuery() (string, []any, error) {
	return psql.Select("namespace", "id", "accessed_at").
		From("blobs").
		OrderBy("namespace", "id").
		ToSql()
}

// ── daily counters (postgres) ─────────────────────────────────────────────────

func buildIncrementCounterQuery(day, name string) (string, []any, error) {
	return psql.Insert("daily_counters").
		Columns("day", "name", "count").
		Values(day, name, 1).
		Suffix("ON CONFLICT (day, name) DO UPDATE SET count = daily_counters.count + 1 RETURNING count").
		ToSql()
}

// buildIncrementCounterBelowQuery returns no row when the stored count has
// already reached ceiling.
func buildIncrementCounterBelowQuery(day, name string, ceiling int64) (string, []any, error) {
	return psql.Insert("daily_counters").
		Columns("day", "name", "count").
		Values(day, name, 1).
		Suffix("ON CONFLICT (day, name) DO UPDATE SET count = daily_counters.count + 1 WHERE daily_counters.count < ? RETURNING count", ceiling).
		ToSql()
}

func buildCountQuery(day, name string) (string, []any, error) {
	return psql.Select("count").
		From("daily_counters").
		Where("day = ? AND name = ?", day, name).
		ToSql()
}

// ── local state (sqlite) ──────────────────────────────────────────────────────

func buildDeleteEntitiesQuery() (string, []any, error) {
	return sqlite.Delete("entities").ToSql()
}

func buildInsertEntityQuery(id string, data []byte) (string, []any, error) {
	return sqlite.Insert("entities").
		Columns("id", "data").
		Values(id, string(data)).
		ToSql()
}

func buildSelectEntitiesQuery() (string, []any, error) {
	return sqlite.Select("id", "data").From("entities").ToSql()
}

func buildGetSettingQuery(key string) (string, []any, error) {
	return sqlite.Select("value").From("settings").Where("key = ?", key).ToSql()
}

func buildSetSettingQuery(key, value string) (string, []any, error) {
	return sqlite.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}
