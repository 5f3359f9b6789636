// Package frame encodes the opcode/length framing spoken over the presence
// host's IPC pipe. Each frame is an 8-byte little-endian header (opcode,
// body length) followed by a JSON body.
package frame

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

// Opcode identifies the kind of frame.
type Opcode uint32

const (
	OpHandshake Opcode = 0
	OpFrame     Opcode = 1
	OpClose     Opcode = 2
	OpPing      Opcode = 3
	OpPong      Opcode = 4
)

// HeaderSize is the length of the fixed frame header in bytes.
const HeaderSize = 8

// MaxBodySize bounds the body length accepted by DecodeHeader.
const MaxBodySize = 64 * 1024

// ErrBodyTooLarge is returned when a header announces a body above MaxBodySize.
var ErrBodyTooLarge = errors.New("frame body too large")

func (o Opcode) String() string {
	switch o {
	case OpHandshake:
		return "handshake"
	case OpFrame:
		return "frame"
	case OpClose:
		return "close"
	case OpPing:
		return "ping"
	case OpPong:
		return "pong"
	default:
		return fmt.Sprintf("opcode(%d)", uint32(o))
	}
}

// Header is the decoded fixed-size frame prefix.
type Header struct {
	Op     Opcode
	Length uint32
}

// Encode marshals payload as JSON and prepends the frame header.
func Encode(op Opcode, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", op, err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, len(body))
	}

	buf := make([]byte, HeaderSize+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(op))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(body)))
	copy(buf[HeaderSize:], body)
	return buf, nil
}

// DecodeHeader parses the first HeaderSize bytes of b.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("short frame header: %d bytes", len(b))
	}
	h := Header{
		Op:     Opcode(binary.LittleEndian.Uint32(b[0:4])),
		Length: binary.LittleEndian.Uint32(b[4:8]),
	}
	if h.Length > MaxBodySize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, h.Length)
	}
	return h, nil
}
