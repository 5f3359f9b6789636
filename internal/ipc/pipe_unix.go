//go:build !windows

package ipc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var errNotNamedPipe = errors.New("not a named pipe")

// checkPipe fails unless path is an existing FIFO.
func checkPipe(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		return fmt.Errorf("%s: %w", path, errNotNamedPipe)
	}
	return nil
}

// openPipe opens an existing FIFO read-write. Anything else at the path is
// rejected so the probe moves on to the next candidate.
func openPipe(path string) (io.ReadWriteCloser, error) {
	if err := checkPipe(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func inspectPipe(path string) PipeStatus {
	err := checkPipe(path)
	switch {
	case err == nil:
		return PipePresent
	case errors.Is(err, fs.ErrNotExist):
		return PipeAbsent
	case errors.Is(err, errNotNamedPipe):
		return PipeNotPipe
	default:
		return PipeUnknown
	}
}
