package pfcperr

import (
	"errors"
	"testing"
)

func TestCauseCodeString_KnownAndUnknown(t *testing.T) {
	if got := CauseMandatoryIEMissing.String(); got != "Mandatory IE Missing" {
		t.Errorf("got %q", got)
	}
	if got := CauseCode(200).String(); got != "Cause(200)" {
		t.Errorf("got %q", got)
	}
}

func TestToCauseCode_Table(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want CauseCode
	}{
		{"missing mandatory", &MissingMandatoryIe{IEType: "X", InMessage: "Y"}, CauseMandatoryIEMissing},
		{"ie parse", &IeParseError{IEType: "X", Reason: "bad"}, CauseRequestRejected},
		{"invalid length", &InvalidLength{Context: "X", Expected: ">=1", Actual: 0}, CauseInvalidLength},
		{"invalid value", &InvalidValue{IEType: "X", Field: "F", Value: "v"}, CauseMandatoryIEIncorrect},
		{"validation", &ValidationError{Reason: "bad combo"}, CauseMandatoryIEIncorrect},
		{"encoding", &EncodingError{Reason: "too long"}, CauseRequestRejected},
		{"zero length", &ZeroLengthNotAllowed{IEType: "X"}, CauseInvalidLength},
		{"message parse", NewRecoverableMessageParseError("bad version"), CauseVersionNotSupported},
		{"io", &IoError{Underlying: errors.New("eof")}, CauseRequestRejected},
		{"unrelated error", errors.New("plain"), CauseRequestRejected},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ToCauseCode(c.err); got != c.want {
				t.Errorf("ToCauseCode(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestRecoverable_Table(t *testing.T) {
	if !Recoverable(&MissingMandatoryIe{IEType: "X", InMessage: "Y"}) {
		t.Error("MissingMandatoryIe should be recoverable")
	}
	if Recoverable(&EncodingError{Reason: "x"}) {
		t.Error("EncodingError should not be recoverable")
	}
	if Recoverable(&IoError{Underlying: errors.New("eof")}) {
		t.Error("IoError should not be recoverable")
	}
	if Recoverable(errors.New("plain")) {
		t.Error("a plain error should not classify as recoverable")
	}
	if !Recoverable(NewRecoverableMessageParseError("bad version")) {
		t.Error("recoverable MessageParseError should report Recoverable")
	}
	if Recoverable(NewFatalMessageParseError("garbage")) {
		t.Error("fatal MessageParseError should not report Recoverable")
	}
}

func TestWithPath_PrependsAndJoins(t *testing.T) {
	base := &MissingMandatoryIe{IEType: "PDR ID", InMessage: "CreatePDR"}
	once := WithPath("CreatePDR", base)
	mm, ok := once.(*MissingMandatoryIe)
	if !ok {
		t.Fatalf("got %T", once)
	}
	if mm.Path != "CreatePDR" {
		t.Fatalf("path = %q", mm.Path)
	}
	twice := WithPath("Session Establishment Request", once)
	mm2, ok := twice.(*MissingMandatoryIe)
	if !ok {
		t.Fatalf("got %T", twice)
	}
	if mm2.Path != "Session Establishment Request/CreatePDR" {
		t.Fatalf("path = %q", mm2.Path)
	}
}

func TestWithPath_NilAndUnsupported(t *testing.T) {
	if WithPath("frame", nil) != nil {
		t.Error("WithPath(_, nil) should return nil")
	}
	ve := &ValidationError{Reason: "bad combo"}
	got := WithPath("frame", ve)
	if got != error(ve) {
		t.Errorf("ValidationError has no WithPath; expected it unchanged, got %v", got)
	}
}

func TestErrorMessages_IncludePath(t *testing.T) {
	e := (&InvalidLength{Context: "F-TEID", Expected: ">=9", Actual: 3}).WithPath("PDI")
	il, ok := e.(*InvalidLength)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if il.Error() != "PDI: F-TEID: expected length >=9, got 3" {
		t.Errorf("got %q", il.Error())
	}
}
