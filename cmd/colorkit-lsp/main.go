package main

import (
	"os"

	"github.com/jsvensson/colorkit/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "colorkit-lsp",
	Short:        "Language server for .ckpal palette documents",
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lsp.NewServer(version).Run(flagVerbose)
	},
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "log more (repeat for debug output)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
