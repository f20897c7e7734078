package ie

import (
	"github.com/pfcpcodec/pfcpcodec/ids"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// Flagged scalar IEs: a leading flag octet selects which
// fixed-order sub-fields follow. This file is the "hardest class" the core
// TS 29.244 calls out — each type below implements its own small state machine
// translating the flag bits to/from a typed Go struct, and rejects disallowed
// flag combinations with *pfcperr.ValidationError at Build() time.
//
// Every decoded-value struct here carries a Value suffix: registry.go
// already declares FTEID, FSEID, etc. as Type constants, so the struct
// holding a decoded instance must use a distinct name in this package.

// --- F-TEID ---------------------------------------------------------------

const (
	fteidFlagV4   = 1 << 0
	fteidFlagV6   = 1 << 1
	fteidFlagCh   = 1 << 2 // UPF chooses the address
	fteidFlagChID = 1 << 3 // a choose-id (correlation) follows
)

// FTEIDValue is a Fully-Qualified TEID: a TEID plus address(es), or a
// choose-mode indicator plus an optional correlation id.
type FTEIDValue struct {
	Teid       ids.Teid
	IPv4       *[4]byte
	IPv6       *[16]byte
	ChooseIPv4 bool
	ChooseIPv6 bool
	ChooseID   *uint8
}

// DecodeFTEID parses an F-TEID value. It rejects no flag combination: with CH
// set, the V4/V6 bits are read as choose-IPv4/IPv6 and neither a TEID nor an
// address is read; CHID is honoured with or without CH; bytes after the last
// flagged sub-field are ignored.
func DecodeFTEID(gie *Ie) (FTEIDValue, error) {
	p := gie.Payload
	if len(p) < 1 {
		return FTEIDValue{}, pfcperr.WithPath("F-TEID", &pfcperr.InvalidLength{Context: "F-TEID", Expected: ">=1", Actual: 0})
	}
	flags := p[0]
	v4 := flags&fteidFlagV4 != 0
	v6 := flags&fteidFlagV6 != 0
	ch := flags&fteidFlagCh != 0
	chid := flags&fteidFlagChID != 0

	var f FTEIDValue
	f.ChooseIPv4 = ch && v4
	f.ChooseIPv6 = ch && v6
	off := 1

	if !ch {
		if len(p) < off+4 {
			return FTEIDValue{}, pfcperr.WithPath("F-TEID", &pfcperr.InvalidLength{Context: "F-TEID: teid", Expected: ">=5", Actual: len(p)})
		}
		teid, _ := wire.ReadU32(p[off:])
		f.Teid = ids.TeidFromUint32(teid)
		off += 4
	}
	if v4 && !ch {
		if len(p) < off+4 {
			return FTEIDValue{}, pfcperr.WithPath("F-TEID", &pfcperr.InvalidLength{Context: "F-TEID: ipv4", Expected: "", Actual: len(p)})
		}
		var a [4]byte
		copy(a[:], p[off:off+4])
		f.IPv4 = &a
		off += 4
	}
	if v6 && !ch {
		if len(p) < off+16 {
			return FTEIDValue{}, pfcperr.WithPath("F-TEID", &pfcperr.InvalidLength{Context: "F-TEID: ipv6", Expected: "", Actual: len(p)})
		}
		var a [16]byte
		copy(a[:], p[off:off+16])
		f.IPv6 = &a
		off += 16
	}
	if chid {
		if len(p) < off+1 {
			return FTEIDValue{}, pfcperr.WithPath("F-TEID", &pfcperr.InvalidLength{Context: "F-TEID: choose id", Expected: "", Actual: len(p)})
		}
		id := p[off]
		f.ChooseID = &id
	}
	return f, nil
}

// Encode emits the flag octet and fixed-order sub-fields. Callers should
// construct FTEIDValue via FTEIDBuilder rather than populating it by hand,
// since only Build() validates the flag combination.
func (f FTEIDValue) Encode() *Ie {
	var flags uint8
	if f.ChooseIPv4 {
		flags |= fteidFlagV4 | fteidFlagCh
	} else if f.IPv4 != nil {
		flags |= fteidFlagV4
	}
	if f.ChooseIPv6 {
		flags |= fteidFlagV6 | fteidFlagCh
	} else if f.IPv6 != nil {
		flags |= fteidFlagV6
	}
	if f.ChooseID != nil {
		flags |= fteidFlagChID
	}

	out := wire.NewBuffer(21)
	out = wire.WriteU8(out, flags)
	if flags&fteidFlagCh == 0 {
		out = wire.WriteU32(out, f.Teid.Uint32())
		if f.IPv4 != nil {
			out = append(out, f.IPv4[:]...)
		}
		if f.IPv6 != nil {
			out = append(out, f.IPv6[:]...)
		}
	}
	if f.ChooseID != nil {
		out = wire.WriteU8(out, *f.ChooseID)
	}
	return &Ie{Type: FTEID, Payload: out}
}

// FTEIDBuilder builds a validated FTEIDValue.
type FTEIDBuilder struct {
	f   FTEIDValue
	err error
}

func NewFTEIDBuilder() *FTEIDBuilder { return &FTEIDBuilder{} }

func (b *FTEIDBuilder) WithTeid(t ids.Teid) *FTEIDBuilder { b.f.Teid = t; return b }
func (b *FTEIDBuilder) WithIPv4(a [4]byte) *FTEIDBuilder  { b.f.IPv4 = &a; return b }
func (b *FTEIDBuilder) WithIPv6(a [16]byte) *FTEIDBuilder { b.f.IPv6 = &a; return b }
func (b *FTEIDBuilder) ChooseV4() *FTEIDBuilder           { b.f.ChooseIPv4 = true; return b }
func (b *FTEIDBuilder) ChooseV6() *FTEIDBuilder           { b.f.ChooseIPv6 = true; return b }
func (b *FTEIDBuilder) WithChooseID(id uint8) *FTEIDBuilder {
	b.f.ChooseID = &id
	return b
}

// Build validates the flag combination: an explicit
// address and a choose flag for the same address family are mutually
// exclusive; a choose-id without any choose flag is meaningless.
func (b *FTEIDBuilder) Build() (FTEIDValue, error) {
	if b.err != nil {
		return FTEIDValue{}, b.err
	}
	if b.f.ChooseIPv4 && b.f.IPv4 != nil {
		return FTEIDValue{}, &pfcperr.ValidationError{Reason: "F-TEID: explicit address and choose flag are mutually exclusive"}
	}
	if b.f.ChooseIPv6 && b.f.IPv6 != nil {
		return FTEIDValue{}, &pfcperr.ValidationError{Reason: "F-TEID: explicit address and choose flag are mutually exclusive"}
	}
	if b.f.ChooseID != nil && !b.f.ChooseIPv4 && !b.f.ChooseIPv6 {
		return FTEIDValue{}, &pfcperr.ValidationError{Reason: "F-TEID: choose id requires a choose flag"}
	}
	if !b.f.ChooseIPv4 && !b.f.ChooseIPv6 && b.f.IPv4 == nil && b.f.IPv6 == nil {
		return FTEIDValue{}, &pfcperr.ValidationError{Reason: "F-TEID: at least one address or choose flag is required"}
	}
	return b.f, nil
}

// --- F-SEID ----------------------------------------------------------------

const (
	fseidFlagV4 = 1 << 0
	fseidFlagV6 = 1 << 1
)

// FSEIDValue is a Fully-Qualified SEID: a session identifier plus the
// address(es) of the node that allocated it.
type FSEIDValue struct {
	Seid ids.Seid
	IPv4 *[4]byte
	IPv6 *[16]byte
}

func DecodeFSEID(gie *Ie) (FSEIDValue, error) {
	p := gie.Payload
	if len(p) < 9 {
		return FSEIDValue{}, pfcperr.WithPath("F-SEID", &pfcperr.InvalidLength{Context: "F-SEID", Expected: ">=9", Actual: len(p)})
	}
	flags := p[0]
	v4 := flags&fseidFlagV4 != 0
	v6 := flags&fseidFlagV6 != 0
	seid, _ := wire.ReadU64(p[1:9])
	f := FSEIDValue{Seid: ids.FromUint64(seid)}
	off := 9
	if v4 {
		if len(p) < off+4 {
			return FSEIDValue{}, pfcperr.WithPath("F-SEID", &pfcperr.InvalidLength{Context: "F-SEID: ipv4", Expected: "", Actual: len(p)})
		}
		var a [4]byte
		copy(a[:], p[off:off+4])
		f.IPv4 = &a
		off += 4
	}
	if v6 {
		if len(p) < off+16 {
			return FSEIDValue{}, pfcperr.WithPath("F-SEID", &pfcperr.InvalidLength{Context: "F-SEID: ipv6", Expected: "", Actual: len(p)})
		}
		var a [16]byte
		copy(a[:], p[off:off+16])
		f.IPv6 = &a
	}
	return f, nil
}

func (f FSEIDValue) Encode() *Ie {
	var flags uint8
	if f.IPv4 != nil {
		flags |= fseidFlagV4
	}
	if f.IPv6 != nil {
		flags |= fseidFlagV6
	}
	out := wire.NewBuffer(29)
	out = wire.WriteU8(out, flags)
	out = wire.WriteU64(out, f.Seid.Uint64())
	if f.IPv4 != nil {
		out = append(out, f.IPv4[:]...)
	}
	if f.IPv6 != nil {
		out = append(out, f.IPv6[:]...)
	}
	return &Ie{Type: FSEID, Payload: out}
}

// FSEIDBuilder builds a validated FSEIDValue: at least one address is
// mandatory.
type FSEIDBuilder struct {
	f FSEIDValue
}

func NewFSEIDBuilder(seid ids.Seid) *FSEIDBuilder       { return &FSEIDBuilder{f: FSEIDValue{Seid: seid}} }
func (b *FSEIDBuilder) WithIPv4(a [4]byte) *FSEIDBuilder  { b.f.IPv4 = &a; return b }
func (b *FSEIDBuilder) WithIPv6(a [16]byte) *FSEIDBuilder { b.f.IPv6 = &a; return b }

func (b *FSEIDBuilder) Build() (FSEIDValue, error) {
	if b.f.IPv4 == nil && b.f.IPv6 == nil {
		return FSEIDValue{}, &pfcperr.ValidationError{Reason: "F-SEID: at least one address is required"}
	}
	return b.f, nil
}

// --- UE IP Address ----------------------------------------------------------

const (
	ueipFlagV6             = 1 << 0
	ueipFlagV4             = 1 << 1
	ueipFlagSourceDest     = 1 << 2 // S/D: 0=source(UL), 1=destination(DL) in some contexts
	ueipFlagIPv6PrefixDlgt = 1 << 3
)

// UEIPAddressValue carries the UE's IPv4 and/or IPv6 address plus the
// source/destination role flag.
type UEIPAddressValue struct {
	IPv4            *[4]byte
	IPv6            *[16]byte
	IsDestination   bool
	IPv6PrefixDlgtn bool
}

func DecodeUEIPAddress(gie *Ie) (UEIPAddressValue, error) {
	p := gie.Payload
	if len(p) < 1 {
		return UEIPAddressValue{}, pfcperr.WithPath("UE IP Address", &pfcperr.InvalidLength{Context: "UE IP Address", Expected: ">=1", Actual: 0})
	}
	flags := p[0]
	u := UEIPAddressValue{
		IsDestination:   flags&ueipFlagSourceDest != 0,
		IPv6PrefixDlgtn: flags&ueipFlagIPv6PrefixDlgt != 0,
	}
	off := 1
	if flags&ueipFlagV4 != 0 {
		if len(p) < off+4 {
			return UEIPAddressValue{}, pfcperr.WithPath("UE IP Address", &pfcperr.InvalidLength{Context: "UE IP Address: ipv4", Expected: "", Actual: len(p)})
		}
		var a [4]byte
		copy(a[:], p[off:off+4])
		u.IPv4 = &a
		off += 4
	}
	if flags&ueipFlagV6 != 0 {
		if len(p) < off+16 {
			return UEIPAddressValue{}, pfcperr.WithPath("UE IP Address", &pfcperr.InvalidLength{Context: "UE IP Address: ipv6", Expected: "", Actual: len(p)})
		}
		var a [16]byte
		copy(a[:], p[off:off+16])
		u.IPv6 = &a
	}
	return u, nil
}

func (u UEIPAddressValue) Encode() *Ie {
	var flags uint8
	if u.IPv6 != nil {
		flags |= ueipFlagV6
	}
	if u.IPv4 != nil {
		flags |= ueipFlagV4
	}
	if u.IsDestination {
		flags |= ueipFlagSourceDest
	}
	if u.IPv6PrefixDlgtn {
		flags |= ueipFlagIPv6PrefixDlgt
	}
	out := wire.NewBuffer(21)
	out = wire.WriteU8(out, flags)
	if u.IPv4 != nil {
		out = append(out, u.IPv4[:]...)
	}
	if u.IPv6 != nil {
		out = append(out, u.IPv6[:]...)
	}
	return &Ie{Type: UEIPAddress, Payload: out}
}

// --- Outer Header Creation --------------------------------------------------

const (
	ohcFlagGTPUV4 = 1 << 0
	ohcFlagGTPUV6 = 1 << 1
	ohcFlagUDPV4  = 1 << 2
	ohcFlagUDPV6  = 1 << 3
)

// OuterHeaderCreationValue describes the tunnel header a FAR adds to
// forwarded packets: a GTP-U TEID plus address, or a UDP port plus address.
type OuterHeaderCreationValue struct {
	Teid   *ids.Teid
	IPv4   *[4]byte
	IPv6   *[16]byte
	Port   *uint16
	isGTPU bool
}

func DecodeOuterHeaderCreation(gie *Ie) (OuterHeaderCreationValue, error) {
	p := gie.Payload
	if len(p) < 2 {
		return OuterHeaderCreationValue{}, pfcperr.WithPath("Outer Header Creation", &pfcperr.InvalidLength{Context: "Outer Header Creation", Expected: ">=2", Actual: len(p)})
	}
	flags, _ := wire.ReadU16(p[0:2])
	off := 2
	var o OuterHeaderCreationValue
	gtpu := flags&(ohcFlagGTPUV4|ohcFlagGTPUV6) != 0
	o.isGTPU = gtpu
	if gtpu {
		if len(p) < off+4 {
			return OuterHeaderCreationValue{}, pfcperr.WithPath("Outer Header Creation", &pfcperr.InvalidLength{Context: "teid", Expected: "", Actual: len(p)})
		}
		teid, _ := wire.ReadU32(p[off:])
		t := ids.TeidFromUint32(teid)
		o.Teid = &t
		off += 4
	}
	if flags&(ohcFlagGTPUV4|ohcFlagUDPV4) != 0 {
		if len(p) < off+4 {
			return OuterHeaderCreationValue{}, pfcperr.WithPath("Outer Header Creation", &pfcperr.InvalidLength{Context: "ipv4", Expected: "", Actual: len(p)})
		}
		var a [4]byte
		copy(a[:], p[off:off+4])
		o.IPv4 = &a
		off += 4
	}
	if flags&(ohcFlagGTPUV6|ohcFlagUDPV6) != 0 {
		if len(p) < off+16 {
			return OuterHeaderCreationValue{}, pfcperr.WithPath("Outer Header Creation", &pfcperr.InvalidLength{Context: "ipv6", Expected: "", Actual: len(p)})
		}
		var a [16]byte
		copy(a[:], p[off:off+16])
		o.IPv6 = &a
		off += 16
	}
	if !gtpu {
		if len(p) < off+2 {
			return OuterHeaderCreationValue{}, pfcperr.WithPath("Outer Header Creation", &pfcperr.InvalidLength{Context: "port", Expected: "", Actual: len(p)})
		}
		port, _ := wire.ReadU16(p[off:])
		o.Port = &port
	}
	return o, nil
}

func (o OuterHeaderCreationValue) Encode() *Ie {
	var flags uint16
	if o.isGTPU {
		if o.IPv4 != nil {
			flags |= ohcFlagGTPUV4
		}
		if o.IPv6 != nil {
			flags |= ohcFlagGTPUV6
		}
	} else {
		if o.IPv4 != nil {
			flags |= ohcFlagUDPV4
		}
		if o.IPv6 != nil {
			flags |= ohcFlagUDPV6
		}
	}
	out := wire.NewBuffer(24)
	out = wire.WriteU16(out, flags)
	if o.isGTPU && o.Teid != nil {
		out = wire.WriteU32(out, o.Teid.Uint32())
	}
	if o.IPv4 != nil {
		out = append(out, o.IPv4[:]...)
	}
	if o.IPv6 != nil {
		out = append(out, o.IPv6[:]...)
	}
	if !o.isGTPU && o.Port != nil {
		out = wire.WriteU16(out, *o.Port)
	}
	return &Ie{Type: OuterHeaderCreation, Payload: out}
}

// NewGTPUOuterHeaderCreation builds the GTP-U form (TEID + address).
func NewGTPUOuterHeaderCreation(t ids.Teid, ipv4 *[4]byte, ipv6 *[16]byte) OuterHeaderCreationValue {
	return OuterHeaderCreationValue{Teid: &t, IPv4: ipv4, IPv6: ipv6, isGTPU: true}
}

// NewUDPOuterHeaderCreation builds the UDP form (port + address), used for
// non-GTP-U encapsulation.
func NewUDPOuterHeaderCreation(port uint16, ipv4 *[4]byte, ipv6 *[16]byte) OuterHeaderCreationValue {
	return OuterHeaderCreationValue{Port: &port, IPv4: ipv4, IPv6: ipv6, isGTPU: false}
}

// --- Volume Measurement ------------------------------------------------------

const (
	volFlagTotal    = 1 << 0
	volFlagUplink   = 1 << 1
	volFlagDownlink = 1 << 2
)

// VolumeMeasurementValue reports byte counters, each independently present
// per its flag bit.
type VolumeMeasurementValue struct {
	Total    *uint64
	Uplink   *uint64
	Downlink *uint64
}

func DecodeVolumeMeasurement(gie *Ie) (VolumeMeasurementValue, error) {
	p := gie.Payload
	if len(p) < 1 {
		return VolumeMeasurementValue{}, pfcperr.WithPath("Volume Measurement", &pfcperr.InvalidLength{Context: "Volume Measurement", Expected: ">=1", Actual: 0})
	}
	flags := p[0]
	off := 1
	var v VolumeMeasurementValue
	readField := func(present bool) (*uint64, error) {
		if !present {
			return nil, nil
		}
		if len(p) < off+8 {
			return nil, pfcperr.WithPath("Volume Measurement", &pfcperr.InvalidLength{Context: "counter", Expected: "", Actual: len(p)})
		}
		val, _ := wire.ReadU64(p[off:])
		off += 8
		return &val, nil
	}
	var err error
	if v.Total, err = readField(flags&volFlagTotal != 0); err != nil {
		return VolumeMeasurementValue{}, err
	}
	if v.Uplink, err = readField(flags&volFlagUplink != 0); err != nil {
		return VolumeMeasurementValue{}, err
	}
	if v.Downlink, err = readField(flags&volFlagDownlink != 0); err != nil {
		return VolumeMeasurementValue{}, err
	}
	return v, nil
}

func (v VolumeMeasurementValue) Encode() *Ie {
	var flags uint8
	if v.Total != nil {
		flags |= volFlagTotal
	}
	if v.Uplink != nil {
		flags |= volFlagUplink
	}
	if v.Downlink != nil {
		flags |= volFlagDownlink
	}
	out := wire.NewBuffer(25)
	out = wire.WriteU8(out, flags)
	if v.Total != nil {
		out = wire.WriteU64(out, *v.Total)
	}
	if v.Uplink != nil {
		out = wire.WriteU64(out, *v.Uplink)
	}
	if v.Downlink != nil {
		out = wire.WriteU64(out, *v.Downlink)
	}
	return &Ie{Type: VolumeMeasurement, Payload: out}
}

// --- Duration Measurement ----------------------------------------------------

// DurationMeasurementValue is a plain 32-bit second count; modeled here as a
// flagged IE only in the sense that its registry Kind matches the rest of
// the measurement-report family, with no optional sub-fields of its own.
type DurationMeasurementValue struct {
	Seconds uint32
}

func DecodeDurationMeasurement(gie *Ie) (DurationMeasurementValue, error) {
	v, err := wire.ReadU32(gie.Payload)
	if err != nil {
		return DurationMeasurementValue{}, pfcperr.WithPath("Duration Measurement", &pfcperr.InvalidLength{Context: "Duration Measurement", Expected: ">=4", Actual: len(gie.Payload)})
	}
	return DurationMeasurementValue{Seconds: v}, nil
}

func (d DurationMeasurementValue) Encode() *Ie {
	return &Ie{Type: DurationMeasurement, Payload: wire.WriteU32(nil, d.Seconds)}
}

// --- Usage Information --------------------------------------------------------

const (
	uiFlagBEF = 1 << 0 // Before usage report
	uiFlagAFT = 1 << 1 // After
	uiFlagUAE = 1 << 2 // Usage before QoS enforcement
	uiFlagUBE = 1 << 3 // Usage before
)

// UsageInformationValue is a one-octet flag bundle describing which quota
// segment a usage report covers.
type UsageInformationValue struct {
	Before               bool
	After                bool
	UnderUsage           bool
	BeforeQoSEnforcement bool
}

func DecodeUsageInformation(gie *Ie) (UsageInformationValue, error) {
	v, err := decodeScalarU8("Usage Information", gie)
	if err != nil {
		return UsageInformationValue{}, err
	}
	return UsageInformationValue{
		Before:               v&uiFlagBEF != 0,
		After:                v&uiFlagAFT != 0,
		BeforeQoSEnforcement: v&uiFlagUAE != 0,
		UnderUsage:           v&uiFlagUBE != 0,
	}, nil
}

func (u UsageInformationValue) Encode() *Ie {
	var flags uint8
	if u.Before {
		flags |= uiFlagBEF
	}
	if u.After {
		flags |= uiFlagAFT
	}
	if u.BeforeQoSEnforcement {
		flags |= uiFlagUAE
	}
	if u.UnderUsage {
		flags |= uiFlagUBE
	}
	return &Ie{Type: UsageInformation, Payload: []byte{flags}}
}
