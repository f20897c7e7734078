package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// readHexInput resolves a message's raw bytes from either an inline hex
// string (--hex) or a file argument whose contents are hex text
// (whitespace and newlines are stripped before decoding), matching the
// an emit-bytes/validate-bytes pairing of "--hex literal or a file
// path" input sources.
func readHexInput(inlineHex string, args []string) ([]byte, error) {
	var raw string
	switch {
	case strings.TrimSpace(inlineHex) != "":
		raw = inlineHex
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		raw = string(data)
	default:
		return nil, fmt.Errorf("provide a hex file path or --hex <hexstring>")
	}

	clean := strings.Join(strings.Fields(raw), "")
	buf, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return buf, nil
}
