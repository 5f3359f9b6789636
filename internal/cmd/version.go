package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/runger/presence/internal/cmd.Version=...".
// Unset fields fall back to the VCS stamp in the binary's build info.
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print version and build information",
	GroupID: groupSetup,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Println(Version)
			return
		}

		info := buildStamp()
		fmt.Printf("presencectl %s\n", Version)
		fmt.Printf("  commit:   %s\n", info.commit)
		fmt.Printf("  built:    %s\n", info.date)
		fmt.Printf("  go:       %s\n", runtime.Version())
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
}

type stamp struct {
	commit string
	date   string
}

// buildStamp prefers ldflags values, then the vcs.* build settings.
func buildStamp() stamp {
	s := stamp{commit: GitCommit, date: BuildDate}

	dirty := false
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, kv := range bi.Settings {
			switch kv.Key {
			case "vcs.revision":
				if s.commit == "" {
					s.commit = kv.Value
				}
			case "vcs.time":
				if s.date == "" {
					s.date = kv.Value
				}
			case "vcs.modified":
				dirty = kv.Value == "true"
			}
		}
	}

	if dirty && GitCommit == "" && s.commit != "" {
		s.commit += "-dirty"
	}

	if s.commit == "" {
		s.commit = "unknown"
	}
	if s.date == "" {
		s.date = "unknown"
	}
	return s
}
