//go:build !windows

package ipc

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// mkfifo creates a simulated host pipe at index under dir.
func mkfifo(t *testing.T, dir string, index int) string {
	t.Helper()
	path := CandidatePath(dir, DefaultPipePrefix, index)
	require.NoError(t, unix.Mkfifo(path, 0600))
	return path
}

func TestOpenPipe_Missing(t *testing.T) {
	t.Parallel()

	_, err := openPipe(filepath.Join(t.TempDir(), "discord-ipc-0"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenPipe_RejectsRegularFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "discord-ipc-0")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := openPipe(path)
	assert.ErrorIs(t, err, errNotNamedPipe)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fifo := mkfifo(t, dir, 0)
	regular := filepath.Join(dir, "regular")
	require.NoError(t, os.WriteFile(regular, nil, 0600))

	tests := []struct {
		name string
		path string
		want PipeStatus
	}{
		{"fifo", fifo, PipePresent},
		{"regular file", regular, PipeNotPipe},
		{"directory", dir, PipeNotPipe},
		{"missing", filepath.Join(dir, "discord-ipc-5"), PipeAbsent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Inspect(tt.path), tt.name)
	}
}

func TestConnect_FIFO_OnlyIndexTwo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := mkfifo(t, dir, 2)

	// A regular file at a lower index must be skipped.
	require.NoError(t, os.WriteFile(CandidatePath(dir, DefaultPipePrefix, 0), nil, 0600))

	c := NewClient("id", Options{PipeRoot: dir})
	require.NoError(t, c.Connect())
	t.Cleanup(func() { _ = c.Close() })

	ep, ok := c.Endpoint()
	require.True(t, ok)
	assert.Equal(t, 2, ep.Index)
	assert.Equal(t, path, ep.Path)

	// The client holds a write end, so this open does not block.
	peer, err := os.OpenFile(path, os.O_RDONLY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { peer.Close() })

	require.NoError(t, c.Write([]byte{0x01, 0x02}))

	got := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 2)
		_, _ = io.ReadFull(peer, buf)
		got <- buf
	}()

	select {
	case b := <-got:
		assert.Equal(t, []byte{0x01, 0x02}, b)
	case <-time.After(2 * time.Second):
		t.Fatal("peer did not receive data")
	}
}

func TestConnect_FIFO_NoneExist(t *testing.T) {
	t.Parallel()

	c := NewClient("id", Options{PipeRoot: t.TempDir()})

	err := c.Connect()
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestFIFO_LoopbackRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkfifo(t, dir, 0)

	c := NewClient("id", Options{PipeRoot: dir})
	require.NoError(t, c.Connect())

	// A FIFO opened read-write hands back what was written to it.
	want := []byte("round trip \x00\xff")
	require.NoError(t, c.Write(want))

	got := make([]byte, len(want))
	require.NoError(t, c.Read(got))
	assert.Equal(t, want, got)

	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Read(got), ErrNotConnected)
}
