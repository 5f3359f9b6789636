package cmd

import (
	"log/slog"

	"github.com/runger/presence/internal/config"
	"github.com/runger/presence/internal/ipc"
)

// Flag overrides shared by the commands that touch the pipe.
var (
	flagPipeRoot      string
	flagMaxCandidates int
	flagClientID      string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagPipeRoot, "pipe-root", "", "directory or namespace holding the host pipes (overrides ipc.pipe_root)")
	pf.IntVar(&flagMaxCandidates, "max-candidates", 0, "number of pipe indexes to probe (overrides ipc.max_candidates)")
	pf.StringVar(&flagClientID, "client-id", "", "application id (overrides client.client_id)")
}

// loadIPCConfig loads the config file and applies any flags that were set.
func loadIPCConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("pipe-root") {
		cfg.IPC.PipeRoot = flagPipeRoot
	}
	if pf.Changed("max-candidates") {
		cfg.IPC.MaxCandidates = flagMaxCandidates
	}
	if pf.Changed("client-id") {
		cfg.Client.ClientID = flagClientID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func pipeRoot(cfg *config.Config) string {
	if cfg.IPC.PipeRoot != "" {
		return cfg.IPC.PipeRoot
	}
	return ipc.DefaultPipeRoot()
}

func clientOptions(cfg *config.Config, logger *slog.Logger) ipc.Options {
	return ipc.Options{
		PipeRoot:      pipeRoot(cfg),
		PipePrefix:    cfg.IPC.PipePrefix,
		MaxCandidates: cfg.IPC.MaxCandidates,
		Logger:        logger,
	}
}
