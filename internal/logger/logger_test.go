package logger

import (
	"bytes"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid level errors", func(t *testing.T) {
		_, err := New(Options{Level: "shout"})
		assert.Error(t, err)
	})

	t.Run("default level suppresses debug", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Options{Writer: &buf})
		require.NoError(t, err)

		log.Debug("quiet")
		assert.Empty(t, buf.String())

		log.Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("error entries carry the cause", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Options{Level: "error", Writer: &buf})
		require.NoError(t, err)

		log.Error(goerrors.New("boom"), "render failed")
		out := buf.String()
		assert.Contains(t, out, "boom")
		assert.Contains(t, out, "render failed")
	})

	t.Run("with field annotates entries", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Options{Level: "warn", Writer: &buf})
		require.NoError(t, err)

		log.WithField("region", "status").Warn("slow stop")
		assert.Contains(t, buf.String(), "region")
	})
}

func TestNilLogger(t *testing.T) {
	var log *Logger
	log.Debug("ignored")
	log.Warn("ignored")
	log.Error(goerrors.New("x"), "ignored")
	assert.Nil(t, log.WithField("k", "v"))
}
