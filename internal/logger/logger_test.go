package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vimquiz/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "vimquiz.log")
	cfg.Log.Level = "debug"

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"

	_, err := New(cfg)
	require.Error(t, err)
}

func TestDefaultFile_XDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	p, err := DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/state", "vimquiz", "vimquiz.log"), p)
}
