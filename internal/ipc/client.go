// Package ipc connects to the presence host over its local named pipe and
// exposes exact-length reads, whole-buffer writes and a courtesy close.
//
// The host binds one of a small set of sequentially numbered pipes
// (discord-ipc-0 .. discord-ipc-9); Connect probes them in order and keeps
// the first one that opens.
package ipc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/runger/presence/internal/frame"
	"github.com/runger/presence/internal/sanitize"
)

// OpenFunc opens an existing pipe for reading and writing. It must not
// create the pipe.
type OpenFunc func(path string) (io.ReadWriteCloser, error)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	PipeRoot      string       // Directory or namespace holding the pipes (default: DefaultPipeRoot())
	PipePrefix    string       // Pipe name prefix (default: DefaultPipePrefix)
	MaxCandidates int          // Number of indexes probed (default: DefaultMaxCandidates)
	Open          OpenFunc     // Pipe opener (default: platform named pipe)
	Logger        *slog.Logger // Logger (default: slog.Default())
}

// State is the connection lifecycle state of a Client.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type flusher interface {
	Flush() error
}

// Client owns a single pipe handle to the presence host.
//
// A Client is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Client struct {
	clientID string
	opts     Options
	logger   *slog.Logger

	conn     io.ReadWriteCloser
	endpoint Endpoint
	state    State
}

// NewClient creates a disconnected client. clientID is carried for the
// protocol layer's handshake and is not interpreted here.
func NewClient(clientID string, opts Options) *Client {
	if opts.PipeRoot == "" {
		opts.PipeRoot = DefaultPipeRoot()
	}
	if opts.PipePrefix == "" {
		opts.PipePrefix = DefaultPipePrefix
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultMaxCandidates
	}
	if opts.Open == nil {
		opts.Open = openPipe
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		clientID: clientID,
		opts:     opts,
		logger:   logger.With("component", "ipc", "session", uuid.NewString()),
		state:    StateDisconnected,
	}
}

// ClientID returns the identifier the client was created with.
func (c *Client) ClientID() string {
	return c.clientID
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	return c.state
}

// Endpoint returns the endpoint bound by the last successful Connect.
// The boolean is false unless the client is connected.
func (c *Client) Endpoint() (Endpoint, bool) {
	if c.conn == nil {
		return Endpoint{}, false
	}
	return c.endpoint, true
}

// Connect probes the candidate pipes in index order and keeps the first one
// that opens. It returns ErrConnectionFailed when every candidate fails and
// ErrAlreadyConnected if a handle is already held.
func (c *Client) Connect() error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}

	var lastErr error
	for _, ep := range Candidates(c.opts.PipeRoot, c.opts.PipePrefix, c.opts.MaxCandidates) {
		c.logger.Debug("trying endpoint", "index", ep.Index, "path", ep.Path)

		conn, err := c.opts.Open(ep.Path)
		if err != nil {
			c.logger.Debug("endpoint unavailable", "path", ep.Path, "error", err)
			lastErr = err
			continue
		}

		c.conn = conn
		c.endpoint = ep
		c.state = StateConnected
		c.logger.Info("connected to presence host", "index", ep.Index, "path", ep.Path)
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w (tried %d candidates, last error: %v)", ErrConnectionFailed, c.opts.MaxCandidates, lastErr)
	}
	return ErrConnectionFailed
}

// Write writes all of data to the pipe.
func (c *Client) Write(data []byte) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("writing data", "bytes", len(data), "data", sanitize.Payload(data))
	}

	n, err := c.conn.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
	}
	return nil
}

// Read fills buf completely, blocking until len(buf) bytes have arrived or
// the pipe fails. Pass buf[:n] to read exactly n bytes.
func (c *Client) Read(buf []byte) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	if _, err := io.ReadFull(c.conn, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return nil
}

// Send encodes payload as a frame tagged with op and writes it.
func (c *Client) Send(op frame.Opcode, payload any) error {
	data, err := frame.Encode(op, payload)
	if err != nil {
		return err
	}
	return c.Write(data)
}

// Recv reads one frame and returns its opcode and raw body.
func (c *Client) Recv() (frame.Opcode, []byte, error) {
	hdr := make([]byte, frame.HeaderSize)
	if err := c.Read(hdr); err != nil {
		return 0, nil, err
	}

	h, err := frame.DecodeHeader(hdr)
	if err != nil {
		return 0, nil, err
	}

	body := make([]byte, h.Length)
	if err := c.Read(body); err != nil {
		return 0, nil, err
	}
	return h.Op, body, nil
}

// Close tells the host the session is ending, flushes the pipe and releases
// the handle. The close notification is best effort: its failure is logged
// and does not stop the flush. After Close, Read and Write return
// ErrNotConnected until Connect succeeds again.
func (c *Client) Close() error {
	if c.conn == nil {
		return ErrNotConnected
	}

	if err := c.Send(frame.OpClose, struct{}{}); err != nil {
		c.logger.Debug("close notification not delivered", "error", err)
	}

	var flushErr error
	if f, ok := c.conn.(flusher); ok {
		if err := f.Flush(); err != nil {
			flushErr = fmt.Errorf("%w: %w", ErrFlush, err)
		}
	}

	closeErr := c.conn.Close()
	c.conn = nil
	c.endpoint = Endpoint{}
	c.state = StateClosed
	c.logger.Debug("pipe handle released")

	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to release pipe handle: %w", closeErr)
	}
	return nil
}
