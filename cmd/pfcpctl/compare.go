package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfcpcodec/pfcpcodec/compare"
	"github.com/pfcpcodec/pfcpcodec/message"
)

var compareModes = map[string]compare.Mode{
	"strict":   compare.Strict,
	"test":     compare.TestMode,
	"semantic": compare.Semantic,
	"audit":    compare.Audit,
}

func newCompareCmd() *cobra.Command {
	var mode string
	var tolerance time.Duration

	cmd := &cobra.Command{
		Use:   "compare <left-hexfile-or-hex> <right-hexfile-or-hex>",
		Short: "Decode two PFCP messages and print their semantic diff",
		Long: `Compare decodes both arguments as PFCP messages and runs the
comparison facility against them, printing one line per
mismatch. Each argument is resolved the same way "decode" resolves its
argument: a file path, or a raw hex string if it doesn't name a file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := compareModes[mode]
			if !ok {
				return fmt.Errorf("unknown --mode %q (want strict|test|semantic|audit)", mode)
			}
			left, err := resolveHexArg(args[0])
			if err != nil {
				return err
			}
			right, err := resolveHexArg(args[1])
			if err != nil {
				return err
			}
			lm, err := message.Parse(left)
			if err != nil {
				return fmt.Errorf("left: %w", err)
			}
			rm, err := message.Parse(right)
			if err != nil {
				return fmt.Errorf("right: %w", err)
			}
			report := compare.Compare(lm, rm).Mode(m).Tolerance(tolerance).Run()
			out := report.Pretty()
			fmt.Fprint(os.Stdout, out)
			maybeCopy(out)
			if !report.Matches() {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "strict", "comparison mode: strict|test|semantic|audit")
	cmd.Flags().DurationVar(&tolerance, "tolerance", 2*time.Second, "audit mode's allowed timestamp drift")
	return cmd
}

// resolveHexArg treats arg as a file path if it names an existing file,
// otherwise as an inline hex string.
func resolveHexArg(arg string) ([]byte, error) {
	if _, err := os.Stat(arg); err == nil {
		return readHexInput("", []string{arg})
	}
	return readHexInput(arg, nil)
}
