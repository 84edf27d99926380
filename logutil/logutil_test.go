package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesRollingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.Filename = filepath.Join(t.TempDir(), "sortbench.log")

	lg, err := New(cfg)
	require.NoError(t, err)
	lg.Debug("hello")
	_ = lg.Sync()

	content, err := os.ReadFile(cfg.Filename)
	require.NoError(t, err)
	require.Contains(t, string(content), `"msg":"hello"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "chatty"
	_, err := New(cfg)
	require.Error(t, err)
}
