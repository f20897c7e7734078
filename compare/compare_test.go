package compare

import (
	"testing"
	"time"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestCompare_IdenticalMessagesMatchInEveryMode(t *testing.T) {
	a := message.NewHeartbeatRequest(1, 1000)
	b := message.NewHeartbeatRequest(1, 1000)
	for _, m := range []Mode{Strict, TestMode, Semantic, Audit} {
		if rep := Compare(a, b).Mode(m).Run(); !rep.Matches() {
			t.Errorf("mode %v: expected match, got %s", m, rep.Pretty())
		}
	}
}

func TestCompare_StrictDetectsSequenceMismatch(t *testing.T) {
	a := message.NewHeartbeatRequest(1, 1000)
	b := message.NewHeartbeatRequest(2, 1000)
	rep := Compare(a, b).Mode(Strict).Run()
	if rep.Matches() {
		t.Fatal("expected a sequence mismatch under Strict mode")
	}
	found := false
	for _, m := range rep {
		if m.Kind == HeaderField && m.Path == "header.Sequence" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected header.Sequence mismatch, got %s", rep.Pretty())
	}
}

func TestCompare_TestModeIgnoresSequenceAndTimestamp(t *testing.T) {
	a := message.NewHeartbeatRequest(1, 1000)
	b := message.NewHeartbeatRequest(2, 5000)
	rep := Compare(a, b).Mode(TestMode).Run()
	if !rep.Matches() {
		t.Errorf("TestMode should ignore sequence and Recovery Time Stamp, got %s", rep.Pretty())
	}
}

func TestCompare_AuditTolerance(t *testing.T) {
	a := message.NewHeartbeatRequest(1, 1000)
	within := message.NewHeartbeatRequest(1, 1001)
	outside := message.NewHeartbeatRequest(1, 2000)

	if rep := Compare(a, within).Mode(Audit).Tolerance(2 * time.Second).Run(); !rep.Matches() {
		t.Errorf("expected drift within tolerance to match, got %s", rep.Pretty())
	}
	if rep := Compare(a, outside).Mode(Audit).Tolerance(2 * time.Second).Run(); rep.Matches() {
		t.Error("expected drift beyond tolerance to mismatch")
	}
}

// TestCompare_SemanticIgnoresTransportDetailFlags exercises the
// "compare F-TEID/UE IP Address by function, ignoring transport-detail
// flags" rule: two UE IP Address values with the same address and
// source/destination role but a differing IPv6 prefix-delegation bit are
// functionally identical.
func TestCompare_SemanticIgnoresTransportDetailFlags(t *testing.T) {
	addr := [4]byte{10, 20, 30, 40}
	left := ie.UEIPAddressValue{IPv4: &addr, IsDestination: true, IPv6PrefixDlgtn: false}
	right := ie.UEIPAddressValue{IPv4: &addr, IsDestination: true, IPv6PrefixDlgtn: true}

	a := sessionWithUEIPAddress(t, 1, left)
	b := sessionWithUEIPAddress(t, 1, right)

	if rep := Compare(a, b).Mode(Strict).Run(); rep.Matches() {
		t.Fatal("Strict mode should catch the differing IPv6 prefix-delegation bit")
	}
	if rep := Compare(a, b).Mode(Semantic).Run(); !rep.Matches() {
		t.Errorf("Semantic mode should ignore it, got %s", rep.Pretty())
	}
}

// TestCompare_SemanticCatchesRealAddressMismatch confirms Semantic mode does
// not become a no-op for F-TEID/UE IP Address: an actual address difference
// still surfaces.
func TestCompare_SemanticCatchesRealAddressMismatch(t *testing.T) {
	addr1 := [4]byte{10, 20, 30, 40}
	addr2 := [4]byte{10, 20, 30, 41}
	left := ie.UEIPAddressValue{IPv4: &addr1, IsDestination: true}
	right := ie.UEIPAddressValue{IPv4: &addr2, IsDestination: true}

	a := sessionWithUEIPAddress(t, 1, left)
	b := sessionWithUEIPAddress(t, 1, right)

	rep := Compare(a, b).Mode(Semantic).Run()
	if rep.Matches() {
		t.Fatal("expected a semantic mismatch for differing UE IP addresses")
	}
}

// sessionWithUEIPAddress wraps a UE IP Address IE as the sole body IE of a
// wire-encoded PFD Management Request (whose body is passthrough IEs; see
// message/pfd.go) and parses it back, so the Comparator's generic allIEer
// path (message.base.AllIEs) has a real message to walk.
func sessionWithUEIPAddress(t *testing.T, seq uint32, v ie.UEIPAddressValue) message.Message {
	t.Helper()
	body, err := v.Encode().Encode()
	if err != nil {
		t.Fatalf("encode UE IP Address: %v", err)
	}
	h := wire.Header{Version: wire.SupportedVersion, MsgType: message.MsgTypePFDManagementRequest, Sequence: seq}
	buf, err := wire.EncodeHeader(h, len(body))
	if err != nil {
		t.Fatalf("encode header: %v", err)
	}
	buf = append(buf, body...)
	m, err := message.Parse(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func TestMismatchKindAndModeStrings(t *testing.T) {
	if Strict.String() != "strict" || TestMode.String() != "test" || Semantic.String() != "semantic" || Audit.String() != "audit" {
		t.Fatal("mode strings changed")
	}
	if Mode(99).String() != "Mode(99)" {
		t.Errorf("got %q", Mode(99).String())
	}
	if HeaderField.String() != "header-field" || IEValue.String() != "ie-value" {
		t.Fatal("mismatch kind strings changed")
	}
	if MismatchKind(99).String() != "MismatchKind(99)" {
		t.Errorf("got %q", MismatchKind(99).String())
	}
}

func TestReport_MatchesAndPretty(t *testing.T) {
	var empty Report
	if !empty.Matches() || empty.Pretty() != "messages match" {
		t.Fatal("empty report should match and pretty-print accordingly")
	}
	rep := Report{{Kind: IEValue, Path: "Cause", IEType: "Cause", Left: "01", Right: "40"}}
	if rep.Matches() {
		t.Fatal("non-empty report should not match")
	}
	if rep.Pretty() == "" {
		t.Fatal("expected a non-empty pretty string")
	}
}
