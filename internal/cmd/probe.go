package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/presence/internal/ipc"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Connect to the presence host and report the bound pipe",
	Long: `Connect to the presence host by probing discord-ipc-0 through
discord-ipc-N in order, print the pipe that answered, then close the
connection with a close notification.

Examples:
  presencectl probe
  presencectl probe --max-candidates 3`,
	GroupID: groupCore,
	Args:    cobra.NoArgs,
	RunE:    runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadIPCConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := ipc.NewClient(cfg.Client.ClientID, clientOptions(cfg, logger))

	if err := client.Connect(); err != nil {
		if errors.Is(err, ipc.ErrConnectionFailed) {
			fmt.Printf("%s after %d candidates under %s\n",
				paint(styleFail, "No presence host found"), cfg.IPC.MaxCandidates, pipeRoot(cfg))
			fmt.Println("Make sure the presence host application is running.")
		}
		return err
	}

	ep, _ := client.Endpoint()
	fmt.Printf("%s to %s (index %d)\n", paint(styleOK, "Connected"), ep.Path, ep.Index)

	if err := client.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	fmt.Printf("Connection %s\n", client.State())

	return nil
}
