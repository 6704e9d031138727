// Package main provides the CLI entrypoint for ultratexter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ultracanvas/ultratexter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	flagConfigDir   string
	flagMeterStyle  string
	flagNoAnimation bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ultratexter",
		Short:        "Text editor with a password strength meter",
		Version:      version,
		SilenceUsage: true,
		RunE:         runApp,
	}

	rootCmd.Flags().StringVar(&flagConfigDir, "config-dir", "", "override the configuration directory")
	rootCmd.Flags().StringVar(&flagMeterStyle, "meter-style", "", "force the meter style: bar or circular")
	rootCmd.Flags().BoolVar(&flagNoAnimation, "no-animation", false, "disable meter transition animations")

	return rootCmd
}

func runApp(cmd *cobra.Command, args []string) error {
	switch flagMeterStyle {
	case "", "bar", "circular":
	default:
		return fmt.Errorf("unknown meter style %q: expected bar or circular", flagMeterStyle)
	}

	return ui.RunApp(ui.RunOptions{
		ConfigDir:        flagConfigDir,
		MeterStyle:       flagMeterStyle,
		DisableAnimation: flagNoAnimation,
		WindowTitle:      fmt.Sprintf("UltraTexter v%s", version),
	})
}
