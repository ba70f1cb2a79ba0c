package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.log")

	l, closer := NewClientLogger("client", path)
	l.Info().Str("vault", "v1").Msg("unlocked")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, bytes.TrimSpace(raw))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "v1", entry["vault"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewClientLogger_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	for _, msg := range []string{"first", "second"} {
		l, closer := NewClientLogger("client", path)
		l.Info().Msg(msg)
		require.NoError(t, closer.Close())
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "second", decodeEntry(t, []byte(lines[1]))["message"])
}

func TestNewClientLogger_UnusablePathDiscards(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// a regular file cannot be a parent directory
	l, closer := NewClientLogger("client", filepath.Join(blocker, "client.log"))
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
	assert.NoError(t, closer.Close())

	_, closer = NewClientLogger("client", "")
	assert.NoError(t, closer.Close())
}

func TestDefaultClientLogPath(t *testing.T) {
	path := DefaultClientLogPath()
	assert.Equal(t, clientLogFile, filepath.Base(path))
	assert.Equal(t, "go-pass-vault", filepath.Base(filepath.Dir(path)))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("vault_id", "v1")
	})
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	childEntry := decodeEntry(t, lines[0])
	assert.Equal(t, "inherited-role", childEntry["role"])
	assert.Equal(t, "v1", childEntry["vault_id"])

	assert.NotContains(t, decodeEntry(t, lines[1]), "vault_id", "child fields must not leak into the parent")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	for _, l := range []*Logger{FromContext(ctx), FromRequest(req)} {
		buf.Reset()
		l.Info().Msg("scoped")
		assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])
	}
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
