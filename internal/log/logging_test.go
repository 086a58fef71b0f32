package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/webkeys/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in       string
		expected slog.Level
	}
	cases := []testCase{
		{in: "trace", expected: log.LevelTrace},
		{in: "debug", expected: slog.LevelDebug},
		{in: "", expected: slog.LevelInfo},
		{in: "info", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "bogus", expected: slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, log.ParseLevel(tc.in))
		})
	}
}

func TestLogsToStderr(t *testing.T) {
	var stderr bytes.Buffer
	logger, closers, err := log.New(log.Config{Level: "debug"}, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Log(context.Background(), log.LevelTrace, "hidden")
	logger.Debug("lookup", "scancode", 11)
	logger.Error("lookup failed", "scancode", 0)

	assert.Contains(t, stderr.String(), "msg=lookup scancode=11")
	assert.Contains(t, stderr.String(), `msg="lookup failed" scancode=0`)
	assert.NotContains(t, stderr.String(), "hidden")
}

func TestTraceLevel(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := log.New(log.Config{Level: "trace"}, &stderr)
	require.NoError(t, err)

	logger.Log(context.Background(), log.LevelTrace, "Lookup", "by", "key")
	assert.Contains(t, stderr.String(), "msg=Lookup by=key")
}

func TestJSONFormat(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := log.New(log.Config{Format: "json"}, &stderr)
	require.NoError(t, err)

	logger.With("cmd", "dump").Info("wrote table", "keys", 163)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &rec))
	assert.Equal(t, "wrote table", rec["msg"])
	assert.Equal(t, "dump", rec["cmd"])
	assert.EqualValues(t, 163, rec["keys"])
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webkeys.log")
	var stderr bytes.Buffer
	logger, closers, err := log.New(log.Config{Level: "info", File: path}, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("hello")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, stderr.String(), "msg=hello")
}

func TestLogFileError(t *testing.T) {
	_, _, err := log.New(log.Config{File: filepath.Join(t.TempDir(), "missing", "x.log")}, &bytes.Buffer{})
	assert.Error(t, err)
}
