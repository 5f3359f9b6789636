package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/presence/internal/config"
	"github.com/runger/presence/internal/ipc"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Show or change the settings used to find the presence host",
	Long: `Show or change presencectl settings.

Without arguments, lists every key with its effective value. Values that a
PRESENCE_* variable overrides are marked, and an empty ipc.pipe_root shows
the platform directory that is probed instead.
With one argument, prints the effective value of that key.
With two arguments, stores the value in the config file. Environment
overrides are never written to the file.

The config file is config.yaml in the user config directory, or the path
in PRESENCE_CONFIG.

Examples:
  presencectl config
  presencectl config ipc.pipe_root
  presencectl config ipc.pipe_root /run/user/1000
  presencectl config client.client_id 1234567
  presencectl config log.file auto`,
	GroupID: groupSetup,
	Args:    cobra.MaximumNArgs(2),
	RunE:    runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := config.DefaultPaths().ConfigFile

	if len(args) == 2 {
		return setConfig(path, args[0], args[1])
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) == 1 {
		return getConfig(cfg, args[0])
	}
	return listConfig(cfg, path)
}

func listConfig(cfg *config.Config, path string) error {
	overrides := config.EnvOverrides()

	fmt.Println(paint(styleTitle, "Settings"))
	for _, key := range config.ListKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("  %-20s %s", paint(styleKey, key), describeValue(key, value))
		if env, ok := overrides[key]; ok {
			line += " " + paint(styleWarn, "(from "+env+")")
		}
		fmt.Println(line)
	}

	fmt.Printf("\nConfig file: %s\n", path)
	return nil
}

// describeValue renders a value for the listing, spelling out what an
// empty or symbolic value resolves to.
func describeValue(key, value string) string {
	switch {
	case key == "ipc.pipe_root" && value == "":
		return paint(styleMuted, "(default: "+ipc.DefaultPipeRoot()+")")
	case key == "log.file" && value == "":
		return paint(styleMuted, "(stderr)")
	case key == "log.file" && value == config.LogFileAuto:
		return value + " " + paint(styleMuted, "("+config.DefaultPaths().LogFile()+")")
	case value == "":
		return paint(styleMuted, "(not set)")
	default:
		return value
	}
}

// getConfig prints the effective value. An empty pipe root prints the
// directory Connect would probe.
func getConfig(cfg *config.Config, key string) error {
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}

	if key == "ipc.pipe_root" {
		value = pipeRoot(cfg)
	}
	if value == "" {
		fmt.Println(paint(styleMuted, "(not set)"))
		return nil
	}
	fmt.Println(value)
	return nil
}

// setConfig updates one key in the stored file. The file is loaded without
// environment overrides so they are not persisted.
func setConfig(path, key, value string) error {
	cfg, err := config.LoadStored(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.SaveToFile(path); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", paint(styleKey, key), value)
	fmt.Printf("Saved to: %s\n", path)
	if env, ok := config.EnvOverrides()[key]; ok {
		fmt.Printf("%s %s overrides this value in the current environment\n", paint(styleWarn, "Note:"), env)
	}
	return nil
}
