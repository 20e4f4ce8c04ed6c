package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose int
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:           "colorkit",
	Short:         "Convert, compare and generate colors and palettes",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log more (repeat for debug output)")
	rootCmd.AddCommand(versionCmd)
}

// parseColors parses every argument as a hex color.
func parseColors(args []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(args))
	for i, a := range args {
		c, err := color.ParseHex(a)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// printColors writes one color per line, with alpha digits only for
// translucent colors.
func printColors(w io.Writer, colors []color.RGBA) {
	for _, c := range colors {
		fmt.Fprintln(w, color.Format(c, c.A < 1))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
