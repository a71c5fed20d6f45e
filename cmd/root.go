package cmd

import (
	"fmt"
	"os"

	"departure-board/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "departure-board",
	Short: "Tooling for the SL departure display",
	Long: `departure-board serves the departure display to the local network and
generates the icon set it needs to install as a Progressive Web App.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable CLI errors
		l, logErr := logger.New(&logger.Config{
			Level:  "debug",
			Format: logger.FormatConsole,
		})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
