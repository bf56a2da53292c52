package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	return entry
}

// ── NewLogger ──

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "go-note-server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "go-note-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_Globals(t *testing.T) {
	require.NotNil(t, NewLogger("go-note-server"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── NewClientLogger ──

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "client.log")

	l := NewClientLogger("go-note-client", path)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "go-note-client", entry["role"])
	assert.Equal(t, "to file", entry["message"])
}

func TestNewClientLogger_UnwritablePath(t *testing.T) {
	// каталог нельзя открыть на запись: записи уходят в io.Discard
	l := NewClientLogger("go-note-client", t.TempDir())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("discarded") })
}

// ── Nop / GetChildLogger ──

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent-role")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("child")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), "trace_id")
}

// ── WithBlob / ShortID ──

func TestWithBlob_MasksID(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "go-note-server")

	l.WithBlob("notes", "abcdefghijklmnop").Info().Msg("tree merged")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "notes", entry["namespace"])
	assert.Equal(t, "abcd…", entry["blob"])
	assert.NotContains(t, buf.String(), "abcdefghijklmnop")
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "", want: ""},
		{id: "abc", want: "***"},
		{id: "abcd", want: "****"},
		{id: "abcde", want: "abcd…"},
		{id: "заметка", want: "заме…"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortID(tt.id))
		})
	}
}

// ── FromContext / FromRequest ──

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("from context")

		assert.Equal(t, "ctx-value", decodeEntry(t, buf.Bytes())["ctx-key"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Debug().Msg("ignored") })
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodPost, "/api/data", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, buf.Bytes())["req-key"])
}
