package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// maybeCopy writes text to the system clipboard when --copy was set,
// warning (but not failing the command) if the platform has no clipboard
// backend. Modeled on internal/ui clipboard.WriteAll calls.
func maybeCopy(text string) {
	if !copyToClipboard {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "warning: --copy: %v\n", err)
	}
}
