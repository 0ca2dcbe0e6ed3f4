package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gitbutlerapp/butdiff/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text format respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := logging.New(&buf, "warn", "text")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "file", "main.go")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "file=main.go")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := logging.New(&buf, "debug", "json")
		require.NoError(t, err)

		logger.Debug("parsed", "hunks", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "parsed", record["msg"])
		assert.EqualValues(t, 3, record["hunks"])
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := logging.New(nil, "", "xml")
		assert.Error(t, err)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := logging.New(nil, "loud", "")
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = logging.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
