package ipc

import "errors"

var (
	// ErrConnectionFailed is returned by Connect when no candidate endpoint
	// could be opened.
	ErrConnectionFailed = errors.New("ipc connection failed: no presence host endpoint found")

	// ErrNotConnected is returned by I/O on a client without an open handle.
	ErrNotConnected = errors.New("ipc client not connected")

	// ErrAlreadyConnected is returned by Connect while a handle is held.
	ErrAlreadyConnected = errors.New("ipc client already connected")

	// ErrRead, ErrWrite and ErrFlush tag failures of the underlying pipe.
	// Returned errors wrap both the tag and the platform cause.
	ErrRead  = errors.New("ipc read failed")
	ErrWrite = errors.New("ipc write failed")
	ErrFlush = errors.New("ipc flush failed")
)
