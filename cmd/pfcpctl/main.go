// Command pfcpctl is a diagnostic CLI over the wire/ie/message/compare
// codec packages: decode PFCP byte vectors, build a few canned messages
// and IEs (see build.go), compare two messages under a chosen mode, run the
// fixture manifest as a self-test, and browse a decoded IE tree
// interactively. Modeled on a cobra root command
// (github.com/spf13/cobra, SilenceUsage/SilenceErrors, one file per
// subcommand).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

// copyToClipboard is set at root-command parse time; subcommands consult it
// after producing their primary text output.
var copyToClipboard bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "pfcpctl",
		Short: "PFCP wire codec inspector",
		Long: `pfcpctl decodes, builds, and compares PFCP (TS 29.244) messages
without opening a socket: a diagnostic companion to the wire/ie/message/
compare codec packages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&copyToClipboard, "copy", false, "copy the command's primary text output to the system clipboard")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newSelftestCmd())
	rootCmd.AddCommand(newBrowseCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
