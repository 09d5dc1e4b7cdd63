// Command memstat prints a one-shot memory report for a process.
//
// With no flags it inspects its own process through the platform
// source; with --pid it reads the target's /proc files directly, which
// only works on Linux.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsight/procmem/version"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		pid        int
		format     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "memstat",
		Short:         "Print a one-shot memory report for a process",
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pid") {
				config.Pid = pid
			}
			if cmd.Flags().Changed("format") {
				config.Format = format
			}
			if config.Pid == 0 {
				config.Pid = os.Getpid()
			}
			return run(cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().IntVar(&pid, "pid", 0, "process to inspect (default: the memstat process itself)")
	cmd.Flags().StringVar(&format, "format", "", "output format, table or json")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}

func versionString() string {
	vsn := fmt.Sprintf("%s (go %s)", version.Version, version.GoVersion())
	if version.DevelGoVersion() {
		vsn += " devel"
	}
	return vsn
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}
