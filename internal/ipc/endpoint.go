package ipc

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	// DefaultPipePrefix is the name prefix the presence host binds under.
	DefaultPipePrefix = "discord-ipc-"

	// DefaultMaxCandidates is the number of sequential indexes probed.
	DefaultMaxCandidates = 10

	windowsPipeRoot = `\\?\pipe\`
)

// Endpoint is a candidate pipe: its probe index and full path.
type Endpoint struct {
	Index int
	Path  string
}

// CandidatePath builds the pipe path for index under root.
// A Windows pipe namespace root (`\\?\pipe\`, `\\.\pipe\`) is joined verbatim.
func CandidatePath(root, prefix string, index int) string {
	name := prefix + strconv.Itoa(index)
	if strings.HasSuffix(root, `\pipe\`) {
		return root + name
	}
	return filepath.Join(root, name)
}

// Candidates returns the endpoints probed by Connect, in order.
func Candidates(root, prefix string, n int) []Endpoint {
	out := make([]Endpoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Endpoint{Index: i, Path: CandidatePath(root, prefix, i)})
	}
	return out
}

// DefaultPipeRoot returns the platform directory the host's pipes live in.
//
// On Windows this is the pipe namespace. Elsewhere the first set of
// XDG_RUNTIME_DIR, TMPDIR, TMP and TEMP is used, falling back to /tmp.
func DefaultPipeRoot() string {
	if runtime.GOOS == "windows" {
		return windowsPipeRoot
	}
	for _, key := range []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "/tmp"
}

// PipeStatus describes what sits at a candidate path, found without
// opening it.
type PipeStatus int

const (
	PipeUnknown PipeStatus = iota // not inspected on this platform, or stat failed
	PipeAbsent
	PipePresent
	PipeNotPipe // something other than a named pipe
)

func (s PipeStatus) String() string {
	switch s {
	case PipeAbsent:
		return "absent"
	case PipePresent:
		return "pipe"
	case PipeNotPipe:
		return "not a pipe"
	default:
		return "unknown"
	}
}

// Inspect reports what sits at path using the same checks Connect applies
// before opening. Windows pipes are never inspected since querying one can
// consume a pipe instance, so the result there is always PipeUnknown.
func Inspect(path string) PipeStatus {
	return inspectPipe(path)
}
