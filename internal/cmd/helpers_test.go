package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/runger/presence/internal/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()
	_ = w.Close()
	os.Stdout = old
	out := <-outC
	_ = r.Close()
	return out
}

// isolateConfig points config loading at a config file in an empty temp
// directory and clears the PRESENCE_* overrides. pipeRoot, when non-empty,
// is set as the pipe root. It returns the config file path.
func isolateConfig(t *testing.T, pipeRoot string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigEnv, filepath.Join(dir, "presence", "config.yaml"))
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("PRESENCE_CLIENT_ID", "")
	t.Setenv("PRESENCE_DEBUG", "")
	t.Setenv("PRESENCE_LOG_LEVEL", "error")
	t.Setenv("PRESENCE_PIPE_ROOT", pipeRoot)
	return filepath.Join(dir, "presence", "config.yaml")
}
