package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

type decodeFlags struct {
	hex string
}

func newDecodeCmd() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode [hexfile]",
		Short: "Decode a PFCP message and print its IE tree",
		Long: `Decode reads a complete PFCP message (header + body) from a hex file
or an inline --hex string, and prints the message header followed by its
IE tree. Grouped IEs are expanded recursively; leaf IEs show a hex preview
of their payload.`,
		Example: `  pfcpctl decode message.hex
  pfcpctl decode --hex 014c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.hex, "hex", "", "inline hex string (overrides the file argument)")
	return cmd
}

func runDecode(flags *decodeFlags, args []string) error {
	buf, err := readHexInput(flags.hex, args)
	if err != nil {
		return err
	}

	m, err := message.Parse(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		fmt.Fprintf(os.Stderr, "cause: %s (recoverable=%v)\n", pfcperr.ToCauseCode(err), pfcperr.Recoverable(err))
		return err
	}

	out, err := renderIETree(m)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)
	maybeCopy(out)
	return nil
}
