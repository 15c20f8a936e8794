package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	closer, err := Init(Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		closer.Close()
		Log.SetOutput(io.Discard)
	})

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	Component("test").Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	closer, err := Init(Config{Level: "loud", File: ""})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInit_UnwritablePath(t *testing.T) {
	_, err := Init(Config{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}
