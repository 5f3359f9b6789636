package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/presence/internal/ipc"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the pipe paths probed when connecting",
	Long: `List the pipe paths the client probes, in order, when connecting to
the presence host. On Unix-like systems each path is reported as a pipe,
absent, or not a pipe (Connect skips anything that is not a FIFO).

Examples:
  presencectl candidates
  presencectl candidates --pipe-root /run/user/1000`,
	GroupID: groupCore,
	Args:    cobra.NoArgs,
	RunE:    runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	cfg, err := loadIPCConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root := pipeRoot(cfg)
	fmt.Println(paint(styleTitle, "Pipe Candidates"))
	fmt.Println(strings.Repeat("-", 40))

	for _, ep := range ipc.Candidates(root, cfg.IPC.PipePrefix, cfg.IPC.MaxCandidates) {
		fmt.Printf("  %2d  %s  %s\n", ep.Index, ep.Path, endpointStatus(ep.Path))
	}

	return nil
}

// endpointStatus renders ipc.Inspect for one candidate. Windows pipes are
// not inspected and show as "-".
func endpointStatus(path string) string {
	switch st := ipc.Inspect(path); st {
	case ipc.PipePresent:
		return paint(styleOK, st.String())
	case ipc.PipeNotPipe:
		return paint(styleWarn, st.String())
	case ipc.PipeAbsent:
		return paint(styleMuted, st.String())
	default:
		return paint(styleMuted, "-")
	}
}
