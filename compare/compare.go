// Package compare implements a semantic diff facility
// describes: a structured comparison between two decoded PFCP messages,
// usable as the oracle a test harness runs round-tripped or captured
// messages through. Modeled on the
// internal/cip/catalog/validate.go ValidationResult{Errors, Warnings}
// accumulator shape, generalized from a single-severity findings list to a
// typed MismatchKind enum, and on compliance_audit_test.go's
// byte-by-byte-with-named-field assertion style for what Strict mode checks.
package compare

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// Mode selects how tolerant the comparison is of transport-detail and
// time-based differences.
type Mode int

const (
	// Strict compares every header field and IE byte-for-byte.
	Strict Mode = iota
	// TestMode ignores the header sequence number and, for IEs carrying a
	// timestamp (Recovery Time Stamp), ignores the value entirely.
	TestMode
	// Semantic additionally compares F-TEID and UE IP Address by function
	// (TEID/address value plus choose flags) rather than by the raw
	// IPv4/IPv6 presence flags and byte layout, which are transport detail.
	Semantic
	// Audit is Strict but tolerates timestamp drift within Tolerance.
	Audit
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case TestMode:
		return "test"
	case Semantic:
		return "semantic"
	case Audit:
		return "audit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MismatchKind classifies one entry in a Report.
type MismatchKind int

const (
	HeaderField MismatchKind = iota
	IEValue
	IECount
	LeftOnly
	RightOnly
	GroupedStructure
)

func (k MismatchKind) String() string {
	switch k {
	case HeaderField:
		return "header-field"
	case IEValue:
		return "ie-value"
	case IECount:
		return "ie-count"
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	case GroupedStructure:
		return "grouped-structure"
	default:
		return fmt.Sprintf("MismatchKind(%d)", int(k))
	}
}

// Mismatch is one typed diff entry. Left/Right are short hex previews of
// the differing payload (or a plain description for header fields), never
// the full raw bytes, to keep Report.Pretty() output scannable.
type Mismatch struct {
	Kind   MismatchKind
	Path   string // e.g. "CreatePDR[0]/PDI[0]/FTEID"
	IEType string
	Left   string
	Right  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s at %s (%s): left=%s right=%s", m.Kind, m.Path, m.IEType, m.Left, m.Right)
}

// Report is the ordered sequence of mismatches a comparison produced. An
// empty Report means the two messages match under the comparator's Mode.
type Report []Mismatch

// Matches reports whether the comparison found no differences.
func (r Report) Matches() bool { return len(r) == 0 }

// Pretty renders one line per mismatch, matching how
// ValidationError.Error() formats a single diagnostic line.
func (r Report) Pretty() string {
	if len(r) == 0 {
		return "messages match"
	}
	var b strings.Builder
	for _, m := range r {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// allIEer is satisfied by every concrete message type via the embedded
// base struct (message.base.AllIEs); declared here as an unexported
// interface rather than widening message.Message's public capability set
// (the public capability set stays intentionally small).
type allIEer interface {
	AllIEs() []*ie.Ie
}

// Comparator accumulates the two messages and the comparison options; call
// Run to produce a Report.
type Comparator struct {
	left, right message.Message
	mode        Mode
	tolerance   time.Duration
}

// Compare begins a comparison of left against right. Default mode is
// Strict; chain .Mode()/.Tolerance() before calling .Run().
func Compare(left, right message.Message) *Comparator {
	return &Comparator{left: left, right: right, mode: Strict, tolerance: 2 * time.Second}
}

// Mode sets the comparison mode.
func (c *Comparator) Mode(m Mode) *Comparator {
	c.mode = m
	return c
}

// Tolerance sets the acceptable timestamp drift window for Audit mode.
// Ignored by all other modes. Default is 2 seconds.
func (c *Comparator) Tolerance(d time.Duration) *Comparator {
	c.tolerance = d
	return c
}

// Run performs the comparison and returns the Report.
func (c *Comparator) Run() Report {
	var rep Report
	rep = append(rep, c.compareHeaders()...)

	var leftIEs, rightIEs []*ie.Ie
	if l, ok := c.left.(allIEer); ok {
		leftIEs = l.AllIEs()
	}
	if r, ok := c.right.(allIEer); ok {
		rightIEs = r.AllIEs()
	}
	rep = append(rep, c.compareIELists("", leftIEs, rightIEs)...)
	return rep
}

// compareHeaders diffs the fields a Message exposes publicly (MsgType,
// Sequence, SEID) plus, in Strict and Audit mode and when both sides are the
// wire.Header-carrying message.base, the MP flag and priority nibble read
// through its Header accessor.
func (c *Comparator) compareHeaders() Report {
	var rep Report
	if c.left.MsgType() != c.right.MsgType() {
		rep = append(rep, Mismatch{Kind: HeaderField, Path: "header.MsgType", IEType: "-",
			Left: fmt.Sprintf("%d", c.left.MsgType()), Right: fmt.Sprintf("%d", c.right.MsgType())})
	}

	if c.mode != TestMode && c.mode != Semantic {
		if c.left.Sequence() != c.right.Sequence() {
			rep = append(rep, Mismatch{Kind: HeaderField, Path: "header.Sequence", IEType: "-",
				Left: c.left.Sequence().String(), Right: c.right.Sequence().String()})
		}
	}

	lSeid, lOK := c.left.SEID()
	rSeid, rOK := c.right.SEID()
	if lOK != rOK {
		rep = append(rep, Mismatch{Kind: HeaderField, Path: "header.S", IEType: "-",
			Left: fmt.Sprintf("present=%v", lOK), Right: fmt.Sprintf("present=%v", rOK)})
	} else if lOK && lSeid != rSeid {
		rep = append(rep, Mismatch{Kind: HeaderField, Path: "header.Seid", IEType: "-",
			Left: lSeid.String(), Right: rSeid.String()})
	}

	if c.mode == Strict || c.mode == Audit {
		lh, lHdr := c.left.(interface{ Header() wire.Header })
		rh, rHdr := c.right.(interface{ Header() wire.Header })
		if lHdr && rHdr {
			l, r := lh.Header(), rh.Header()
			if l.MP != r.MP || l.Priority != r.Priority {
				rep = append(rep, Mismatch{Kind: HeaderField, Path: "header.Priority", IEType: "-",
					Left: fmt.Sprintf("mp=%v priority=%d", l.MP, l.Priority), Right: fmt.Sprintf("mp=%v priority=%d", r.MP, r.Priority)})
			}
		}
	}
	return rep
}

// timestampTypes are the scalar IE kinds whose value is a timestamp subject
// to TestMode's "ignore timestamps" and Audit mode's drift tolerance.
var timestampTypes = map[ie.Type]bool{
	ie.RecoveryTimeStamp: true,
	ie.MonitoringTime:    true,
}

// semanticTypes are the flagged IEs Semantic mode compares by decoded
// function rather than raw bytes.
var semanticTypes = map[ie.Type]bool{
	ie.FTEID:       true,
	ie.UEIPAddress: true,
}

// compareIELists walks two top-level-or-sibling IE slices position-wise
// within each distinct type, pairing IEs by (type, occurrence-index) so that
// a difference in the interleaving of distinct types is not reported.
func (c *Comparator) compareIELists(path string, left, right []*ie.Ie) Report {
	var rep Report

	byType := func(list []*ie.Ie) map[ie.Type][]*ie.Ie {
		m := map[ie.Type][]*ie.Ie{}
		for _, g := range list {
			m[g.Type] = append(m[g.Type], g)
		}
		return m
	}
	lByType, rByType := byType(left), byType(right)

	seen := map[ie.Type]bool{}
	order := []ie.Type{}
	for _, g := range left {
		if !seen[g.Type] {
			seen[g.Type] = true
			order = append(order, g.Type)
		}
	}
	for _, g := range right {
		if !seen[g.Type] {
			seen[g.Type] = true
			order = append(order, g.Type)
		}
	}

	for _, t := range order {
		ls, rs := lByType[t], rByType[t]
		if len(ls) != len(rs) {
			rep = append(rep, Mismatch{Kind: IECount, Path: childPath(path, t, -1), IEType: t.String(),
				Left: fmt.Sprintf("count=%d", len(ls)), Right: fmt.Sprintf("count=%d", len(rs))})
		}
		n := len(ls)
		if len(rs) < n {
			n = len(rs)
		}
		for i := 0; i < n; i++ {
			rep = append(rep, c.compareIE(childPath(path, t, i), ls[i], rs[i])...)
		}
		for i := n; i < len(ls); i++ {
			rep = append(rep, Mismatch{Kind: LeftOnly, Path: childPath(path, t, i), IEType: t.String(), Left: preview(ls[i].Payload), Right: "-"})
		}
		for i := n; i < len(rs); i++ {
			rep = append(rep, Mismatch{Kind: RightOnly, Path: childPath(path, t, i), IEType: t.String(), Left: "-", Right: preview(rs[i].Payload)})
		}
	}
	return rep
}

func childPath(parent string, t ie.Type, idx int) string {
	name := t.String()
	if idx >= 0 {
		name = fmt.Sprintf("%s[%d]", name, idx)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// compareIE diffs a single matched-type IE pair, recursing into grouped
// children or applying mode-specific tolerance for timestamps/semantic IEs.
func (c *Comparator) compareIE(path string, l, r *ie.Ie) Report {
	if (l.EnterpriseID == nil) != (r.EnterpriseID == nil) ||
		(l.EnterpriseID != nil && r.EnterpriseID != nil && *l.EnterpriseID != *r.EnterpriseID) {
		return Report{{Kind: IEValue, Path: path, IEType: l.Type.String(), Left: "enterprise-id mismatch", Right: "enterprise-id mismatch"}}
	}

	if l.Children != nil || r.Children != nil {
		rep := c.compareIELists(path, l.Children, r.Children)
		if len(rep) > 0 {
			// Surface the enclosing grouped IE so a caller scanning only
			// top-level mismatches still sees which parent is affected.
			return append(Report{{Kind: GroupedStructure, Path: path, IEType: l.Type.String(),
				Left: fmt.Sprintf("%d children", len(l.Children)), Right: fmt.Sprintf("%d children", len(r.Children))}}, rep...)
		}
		return nil
	}

	if (c.mode == TestMode || c.mode == Audit) && timestampTypes[l.Type] {
		if c.mode == TestMode {
			return nil
		}
		return c.compareTimestamp(path, l, r)
	}

	if c.mode == Semantic && semanticTypes[l.Type] {
		return c.compareSemantic(path, l, r)
	}

	if !bytes.Equal(l.Payload, r.Payload) {
		return Report{{Kind: IEValue, Path: path, IEType: l.Type.String(), Left: preview(l.Payload), Right: preview(r.Payload)}}
	}
	return nil
}

// compareTimestamp decodes both sides as NTP-seconds-since-1900 uint32 and
// compares with c.tolerance drift allowed (Audit mode).
func (c *Comparator) compareTimestamp(path string, l, r *ie.Ie) Report {
	lv, lerr := ie.DecodeRecoveryTimeStamp(l)
	rv, rerr := ie.DecodeRecoveryTimeStamp(r)
	if lerr != nil || rerr != nil {
		if !bytes.Equal(l.Payload, r.Payload) {
			return Report{{Kind: IEValue, Path: path, IEType: l.Type.String(), Left: preview(l.Payload), Right: preview(r.Payload)}}
		}
		return nil
	}
	diff := int64(lv) - int64(rv)
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(c.tolerance/time.Second) {
		return Report{{Kind: IEValue, Path: path, IEType: l.Type.String(),
			Left: fmt.Sprintf("ntp=%d", lv), Right: fmt.Sprintf("ntp=%d", rv)}}
	}
	return nil
}

// compareSemantic compares F-TEID / UE IP Address by decoded function
// rather than raw bytes ("the IPv4/IPv6 encoding flags... are
// transport details").
func (c *Comparator) compareSemantic(path string, l, r *ie.Ie) Report {
	switch l.Type {
	case ie.FTEID:
		lv, lerr := ie.DecodeFTEID(l)
		rv, rerr := ie.DecodeFTEID(r)
		if lerr != nil || rerr != nil {
			break
		}
		if lv.Teid != rv.Teid || lv.ChooseIPv4 != rv.ChooseIPv4 || lv.ChooseIPv6 != rv.ChooseIPv6 ||
			!ptr4Equal(lv.IPv4, rv.IPv4) || !ptr16Equal(lv.IPv6, rv.IPv6) || !ptr8Equal(lv.ChooseID, rv.ChooseID) {
			return Report{{Kind: IEValue, Path: path, IEType: "F-TEID", Left: fmt.Sprintf("%+v", lv), Right: fmt.Sprintf("%+v", rv)}}
		}
		return nil
	case ie.UEIPAddress:
		lv, lerr := ie.DecodeUEIPAddress(l)
		rv, rerr := ie.DecodeUEIPAddress(r)
		if lerr != nil || rerr != nil {
			break
		}
		if lv.IsDestination != rv.IsDestination || !ptr4Equal(lv.IPv4, rv.IPv4) || !ptr16Equal(lv.IPv6, rv.IPv6) {
			return Report{{Kind: IEValue, Path: path, IEType: "UE IP Address", Left: fmt.Sprintf("%+v", lv), Right: fmt.Sprintf("%+v", rv)}}
		}
		return nil
	}
	if !bytes.Equal(l.Payload, r.Payload) {
		return Report{{Kind: IEValue, Path: path, IEType: l.Type.String(), Left: preview(l.Payload), Right: preview(r.Payload)}}
	}
	return nil
}

func ptr4Equal(a, b *[4]byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func ptr16Equal(a, b *[16]byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func ptr8Equal(a, b *uint8) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

// previewMaxBytes bounds how much of a mismatching payload Pretty() shows.
const previewMaxBytes = 16

func preview(b []byte) string {
	if len(b) > previewMaxBytes {
		return hex.EncodeToString(b[:previewMaxBytes]) + fmt.Sprintf("...(%dB)", len(b))
	}
	return hex.EncodeToString(b)
}
