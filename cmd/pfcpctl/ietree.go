package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// allIEer mirrors compare's unexported interface: every concrete message
// type exposes AllIEs/Header through the embedded message.base, but
// message.Message itself does not, so a CLI walking an arbitrary decoded
// message needs the same assertion compare.go uses.
type allIEer interface {
	AllIEs() []*ie.Ie
	Header() wire.Header
}

func formatHeader(h wire.Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (type=%d)\n", message.TypeName(h.MsgType), h.MsgType)
	fmt.Fprintf(&b, "  version=%d sequence=%d", h.Version, h.Sequence)
	if h.S {
		fmt.Fprintf(&b, " seid=0x%016x", h.Seid)
	}
	if h.MP {
		fmt.Fprintf(&b, " priority=%d", h.Priority)
	}
	b.WriteString("\n")
	return b.String()
}

// renderIETree pretty-prints a message's top-level IEs and, recursively,
// every grouped IE's children, hex-previewing leaf payloads.
func renderIETree(m message.Message) (string, error) {
	var b strings.Builder
	b.WriteString(formatHeader(headerOf(m)))

	walker, ok := m.(allIEer)
	if !ok {
		return b.String(), nil
	}
	for _, child := range walker.AllIEs() {
		writeIE(&b, child, 1)
	}
	return b.String(), nil
}

func headerOf(m message.Message) wire.Header {
	if walker, ok := m.(allIEer); ok {
		return walker.Header()
	}
	return wire.Header{MsgType: m.MsgType(), Sequence: m.Sequence().Uint32()}
}

func writeIE(b *strings.Builder, e *ie.Ie, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s", indent, e.Type)
	if e.EnterpriseID != nil {
		fmt.Fprintf(b, " (vendor 0x%08x)", *e.EnterpriseID)
	}
	if len(e.Children) > 0 {
		b.WriteString("\n")
		for _, child := range e.Children {
			writeIE(b, child, depth+1)
		}
		return
	}
	fmt.Fprintf(b, " = %s\n", preview(e.Payload))
}

func preview(b []byte) string {
	const max = 24
	if len(b) <= max {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:max]) + fmt.Sprintf("...(%d bytes)", len(b))
}
