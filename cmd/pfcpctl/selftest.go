package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/internal/fixtures"
	"github.com/pfcpcodec/pfcpcodec/internal/logging"
	"github.com/pfcpcodec/pfcpcodec/message"
)

// newSelftestCmd runs the fixture manifest (internal/fixtures) end to end:
// round-trip vectors must parse and re-marshal to identical bytes, negative
// vectors must fail to decode with the expected error substring. Mirrors
// a self-test command's pass/fail tally.
func newSelftestCmd() *cobra.Command {
	var manifestPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the canonical fixture manifest and report pass/fail counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if verbose {
				level = logging.LevelVerbose
			}
			log, err := logging.New(level, "")
			if err != nil {
				return err
			}
			defer log.Close()

			m, err := fixtures.Load(manifestPath)
			if err != nil {
				return err
			}

			pass, fail := 0, 0
			for _, v := range m.Vectors {
				ok, msg := runVector(v)
				if ok {
					pass++
					log.Verbose("PASS %s: %s", v.Name, msg)
				} else {
					fail++
					log.Error("FAIL %s: %s", v.Name, msg)
				}
			}

			fmt.Fprintf(os.Stdout, "%d passed, %d failed, %d total\n", pass, fail, pass+fail)
			if fail > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath(), "path to the fixture YAML manifest")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print every passing vector too")
	return cmd
}

func defaultManifestPath() string {
	return filepath.Join("internal", "fixtures", "testdata", "vectors.yaml")
}

// runVector exercises one fixture.Vector per its Kind/Classification and
// reports whether it behaved as expected.
func runVector(v fixtures.Vector) (bool, string) {
	buf, err := v.Bytes()
	if err != nil {
		return false, err.Error()
	}

	var decodeErr error
	var roundTrip []byte
	switch v.Kind {
	case "message":
		m, err := message.Parse(buf)
		decodeErr = err
		if err == nil {
			roundTrip, err = m.Marshal()
			if err != nil {
				decodeErr = err
			}
		}
	case "tlv":
		gie, _, err := ie.DecodeIe(buf)
		decodeErr = err
		if err == nil {
			roundTrip, err = gie.Encode()
			if err != nil {
				decodeErr = err
			}
		}
	default:
		return false, fmt.Sprintf("unknown fixture kind %q", v.Kind)
	}

	switch v.Classification {
	case fixtures.Negative:
		if decodeErr == nil {
			return false, "expected an error, decode succeeded"
		}
		if v.ExpectedErrText != "" && !strings.Contains(strings.ToLower(decodeErr.Error()), strings.ToLower(v.ExpectedErrText)) {
			return false, fmt.Sprintf("error %q does not contain %q", decodeErr, v.ExpectedErrText)
		}
		return true, decodeErr.Error()
	default: // RoundTrip, Conformance
		if decodeErr != nil {
			return false, decodeErr.Error()
		}
		if !bytes.Equal(roundTrip, buf) {
			return false, fmt.Sprintf("round-trip mismatch: got % x, want % x", roundTrip, buf)
		}
		return true, "round-trip ok"
	}
}
