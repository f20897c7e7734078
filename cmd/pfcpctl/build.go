package main

import (
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// newBuildCmd groups the canned-message subcommands, one per scenario
// this codec names explicitly, matching an emit_bytes.go-style
// "build a request, print the bytes" pattern.
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a canned PFCP message and print its wire bytes",
	}
	cmd.AddCommand(newBuildHeartbeatCmd())
	cmd.AddCommand(newBuildVersionNotSupportedCmd())
	cmd.AddCommand(newBuildPFDResponseCmd())
	cmd.AddCommand(newBuildFTEIDCmd())
	cmd.AddCommand(newBuildMissingFSEIDCmd())
	return cmd
}

func printMarshal(b []byte, err error) error {
	if err != nil {
		fmt.Fprintf(os.Stderr, "build error: %v\n", err)
		if cc, ok := err.(pfcperr.CauseMapper); ok {
			fmt.Fprintf(os.Stderr, "cause: %s\n", cc.ToCauseCode())
		}
		return err
	}
	out := hex.EncodeToString(b) + "\n"
	fmt.Fprint(os.Stdout, out)
	maybeCopy(out)
	return nil
}

func newBuildHeartbeatCmd() *cobra.Command {
	var seq uint32
	var recoveryUnix int64
	var response bool

	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Build a Heartbeat Request (or --response for the Response)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ntp := ie.NTPFromUnix(recoveryUnix)
			var b []byte
			var err error
			if response {
				b, err = message.NewHeartbeatResponse(seq, ntp).Marshal()
			} else {
				b, err = message.NewHeartbeatRequest(seq, ntp).Marshal()
			}
			return printMarshal(b, err)
		},
	}
	cmd.Flags().Uint32Var(&seq, "seq", 1, "sequence number")
	cmd.Flags().Int64Var(&recoveryUnix, "recovery-ts", time.Now().Unix(), "recovery time stamp, Unix epoch seconds")
	cmd.Flags().BoolVar(&response, "response", false, "build the Response instead of the Request")
	return cmd
}

func newBuildVersionNotSupportedCmd() *cobra.Command {
	var seq uint32
	cmd := &cobra.Command{
		Use:   "version-not-supported",
		Short: "Build a Version Not Supported Response",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := message.NewVersionNotSupportedResponse(seq).Marshal()
			return printMarshal(b, err)
		},
	}
	cmd.Flags().Uint32Var(&seq, "seq", 1, "sequence number, normally copied from the rejected request")
	return cmd
}

func newBuildPFDResponseCmd() *cobra.Command {
	var seq uint32
	var rejected bool
	cmd := &cobra.Command{
		Use:   "pfd-response",
		Short: "Build a PFD Management Response",
		RunE: func(cmd *cobra.Command, args []string) error {
			cause := ie.CauseValueRequestAccepted
			if rejected {
				cause = ie.CauseValueRequestRejected
			}
			b, err := message.NewPFDManagementResponse(seq, cause).Marshal()
			return printMarshal(b, err)
		},
	}
	cmd.Flags().Uint32Var(&seq, "seq", 1, "sequence number")
	cmd.Flags().BoolVar(&rejected, "rejected", false, "set Cause to Request Rejected instead of Request Accepted")
	return cmd
}

// newBuildFTEIDCmd exercises the F-TEID flag validation state machine:
// by default it builds the valid "choose IPv4 with a
// correlation id" combination; --explicit-ipv4 additionally sets an
// explicit address to reproduce the mutually-exclusive rejection.
func newBuildFTEIDCmd() *cobra.Command {
	var chooseID uint8
	var explicitIPv4 string
	cmd := &cobra.Command{
		Use:   "fteid",
		Short: "Build a standalone F-TEID IE and print its TLV bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := ie.NewFTEIDBuilder().ChooseV4().WithChooseID(chooseID)
			if explicitIPv4 != "" {
				var a [4]byte
				if _, err := fmt.Sscanf(explicitIPv4, "%d.%d.%d.%d", &a[0], &a[1], &a[2], &a[3]); err != nil {
					return fmt.Errorf("--explicit-ipv4: %w", err)
				}
				b = b.WithIPv4(a)
			}
			val, err := b.Build()
			if err != nil {
				return printMarshal(nil, err)
			}
			enc, err := val.Encode().Encode()
			return printMarshal(enc, err)
		},
	}
	cmd.Flags().Uint8Var(&chooseID, "choose-id", 42, "CHID correlation identifier")
	cmd.Flags().StringVar(&explicitIPv4, "explicit-ipv4", "", "also set an explicit IPv4 address, to reproduce the choose/explicit mutual-exclusion rejection")
	return cmd
}

// newBuildMissingFSEIDCmd reproduces a Session Establishment
// Request assembled without its mandatory F-SEID IE. Parse of the
// resulting bytes must fail with MissingMandatoryIe{IEType: "F-SEID"}.
func newBuildMissingFSEIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session-establishment-missing-fseid",
		Short: "Build a Session Establishment Request missing F-SEID and show the rejection",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := sessionEstablishmentMissingFSEIDBytes()
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "wire bytes: %s\n", hex.EncodeToString(b))
			_, perr := message.Parse(b)
			if perr == nil {
				return fmt.Errorf("expected MissingMandatoryIe, got no error")
			}
			fmt.Fprintf(os.Stdout, "parse error: %v\n", perr)
			fmt.Fprintf(os.Stdout, "cause: %s (recoverable=%v)\n", pfcperr.ToCauseCode(perr), pfcperr.Recoverable(perr))
			return nil
		},
	}
	return cmd
}

// sessionEstablishmentMissingFSEIDBytes hand-assembles a Session
// Establishment Request body carrying only a Node ID, deliberately
// omitting F-SEID/Create PDR/Create FAR so message.Parse's mandatory-IE
// check fires on the first missing slot it checks (F-SEID).
func sessionEstablishmentMissingFSEIDBytes() ([]byte, error) {
	node := ie.NodeIDValue{IPv4: net.IPv4(10, 0, 0, 1)}
	nodeIe, err := node.Encode()
	if err != nil {
		return nil, err
	}
	body, err := nodeIe.Encode()
	if err != nil {
		return nil, err
	}
	header := wire.Header{Version: wire.SupportedVersion, S: true, Sequence: 1, MsgType: message.MsgTypeSessionEstablishmentRequest}
	head, err := wire.EncodeHeader(header, len(body))
	if err != nil {
		return nil, err
	}
	return append(head, body...), nil
}
