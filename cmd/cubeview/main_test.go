package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/cubeview/internal/config"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestConfigCommandWritesDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, configCommand(&out))

	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigCommandReportsWriteError(t *testing.T) {
	closed := errors.New("stdout closed")

	err := configCommand(failingWriter{err: closed})
	require.ErrorIs(t, err, closed)
}
