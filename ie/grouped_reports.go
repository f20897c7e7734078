package ie

import (
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// usageReportFields is the shared field set behind all three Usage Report
// context-specific IE types below. TS 29.244 reuses the same semantic content
// is carried under three distinct numeric IE types depending on which
// message encloses it, so they must be distinct Go types — never
// interchangeable, even though they share this decode/encode core.
type usageReportFields struct {
	URRID               uint32
	URSEQN              uint32
	UsageReportTrigger  uint32
	VolumeMeasurement   *VolumeMeasurementValue
	DurationMeasurement *DurationMeasurementValue
	StartTime           *uint32
	EndTime             *uint32
	UsageInformation    *UsageInformationValue
}

func decodeUsageReportFields(inMessage string, gie *Ie) (usageReportFields, error) {
	var u usageReportFields
	haveURRID, haveSeqn, haveTrigger := false, false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case URRID:
			v, err := DecodeURRID(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.URRID = v
			haveURRID = true
		case URSEQN:
			v, err := DecodeURSEQN(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.URSEQN = v
			haveSeqn = true
		case UsageReportTrigger:
			v, err := DecodeUsageReportTrigger(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.UsageReportTrigger = v
			haveTrigger = true
		case VolumeMeasurement:
			v, err := DecodeVolumeMeasurement(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.VolumeMeasurement = &v
		case DurationMeasurement:
			v, err := DecodeDurationMeasurement(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.DurationMeasurement = &v
		case StartTime:
			v, err := DecodeStartTime(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.StartTime = &v
		case EndTime:
			v, err := DecodeEndTime(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.EndTime = &v
		case UsageInformation:
			v, err := DecodeUsageInformation(ch)
			if err != nil {
				return usageReportFields{}, pfcperr.WithPath(inMessage, err)
			}
			u.UsageInformation = &v
		}
	}
	if !haveURRID {
		return usageReportFields{}, &pfcperr.MissingMandatoryIe{IEType: "URR ID", InMessage: inMessage}
	}
	if !haveSeqn {
		return usageReportFields{}, &pfcperr.MissingMandatoryIe{IEType: "UR-SEQN", InMessage: inMessage}
	}
	if !haveTrigger {
		return usageReportFields{}, &pfcperr.MissingMandatoryIe{IEType: "Usage Report Trigger", InMessage: inMessage}
	}
	return u, nil
}

func (u usageReportFields) encodeChildren() []*Ie {
	children := []*Ie{
		EncodeURRID(u.URRID),
		EncodeURSEQN(u.URSEQN),
		EncodeUsageReportTrigger(u.UsageReportTrigger),
	}
	if u.VolumeMeasurement != nil {
		children = append(children, u.VolumeMeasurement.Encode())
	}
	if u.DurationMeasurement != nil {
		children = append(children, u.DurationMeasurement.Encode())
	}
	if u.StartTime != nil {
		children = append(children, EncodeStartTime(*u.StartTime))
	}
	if u.EndTime != nil {
		children = append(children, EncodeEndTime(*u.EndTime))
	}
	if u.UsageInformation != nil {
		children = append(children, u.UsageInformation.Encode())
	}
	return children
}

// UsageReportInSessionModificationResponseValue is the Usage Report variant
// carried in a Session Modification Response.
type UsageReportInSessionModificationResponseValue struct{ usageReportFields }

func DecodeUsageReportInSessionModificationResponse(gie *Ie) (UsageReportInSessionModificationResponseValue, error) {
	f, err := decodeUsageReportFields("Usage Report (Session Modification Response)", gie)
	return UsageReportInSessionModificationResponseValue{f}, err
}

func (u UsageReportInSessionModificationResponseValue) Encode() *Ie {
	return &Ie{Type: UsageReportInSessionModificationResponse, Children: u.encodeChildren()}
}

// UsageReportInSessionDeletionResponseValue is the Usage Report variant
// carried in a Session Deletion Response.
type UsageReportInSessionDeletionResponseValue struct{ usageReportFields }

func DecodeUsageReportInSessionDeletionResponse(gie *Ie) (UsageReportInSessionDeletionResponseValue, error) {
	f, err := decodeUsageReportFields("Usage Report (Session Deletion Response)", gie)
	return UsageReportInSessionDeletionResponseValue{f}, err
}

func (u UsageReportInSessionDeletionResponseValue) Encode() *Ie {
	return &Ie{Type: UsageReportInSessionDeletionResponse, Children: u.encodeChildren()}
}

// UsageReportInSessionReportRequestValue is the Usage Report variant carried
// in a Session Report Request (an unsolicited report, not a response to a
// CP-initiated message).
type UsageReportInSessionReportRequestValue struct{ usageReportFields }

func DecodeUsageReportInSessionReportRequest(gie *Ie) (UsageReportInSessionReportRequestValue, error) {
	f, err := decodeUsageReportFields("Usage Report (Session Report Request)", gie)
	return UsageReportInSessionReportRequestValue{f}, err
}

func (u UsageReportInSessionReportRequestValue) Encode() *Ie {
	return &Ie{Type: UsageReportInSessionReportRequest, Children: u.encodeChildren()}
}

// LoadControlInformationValue advertises the sending node's current load
// via a sequence number plus a load metric.
type LoadControlInformationValue struct {
	SequenceNumber uint32
	Metric         uint8
}

func DecodeLoadControlInformation(gie *Ie) (LoadControlInformationValue, error) {
	var l LoadControlInformationValue
	haveSeq, haveMetric := false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case SequenceNumberIE:
			v, err := DecodeSequenceNumberIE(ch)
			if err != nil {
				return LoadControlInformationValue{}, pfcperr.WithPath("Load Control Information", err)
			}
			l.SequenceNumber = v
			haveSeq = true
		case Metric:
			v, err := DecodeMetric(ch)
			if err != nil {
				return LoadControlInformationValue{}, pfcperr.WithPath("Load Control Information", err)
			}
			l.Metric = v
			haveMetric = true
		}
	}
	if !haveSeq {
		return LoadControlInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Sequence Number", InMessage: "Load Control Information"}
	}
	if !haveMetric {
		return LoadControlInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Metric", InMessage: "Load Control Information"}
	}
	return l, nil
}

func (l LoadControlInformationValue) Encode() *Ie {
	return &Ie{Type: LoadControlInformation, Children: []*Ie{
		EncodeSequenceNumberIE(l.SequenceNumber),
		EncodeMetric(l.Metric),
	}}
}

// OverloadControlInformationValue advertises the sending node's overload
// state via a sequence number, a metric, and a validity period.
type OverloadControlInformationValue struct {
	SequenceNumber uint32
	Metric         uint8
	TimerSeconds   uint32
}

func DecodeOverloadControlInformation(gie *Ie) (OverloadControlInformationValue, error) {
	var o OverloadControlInformationValue
	haveSeq, haveMetric, haveTimer := false, false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case SequenceNumberIE:
			v, err := DecodeSequenceNumberIE(ch)
			if err != nil {
				return OverloadControlInformationValue{}, pfcperr.WithPath("Overload Control Information", err)
			}
			o.SequenceNumber = v
			haveSeq = true
		case Metric:
			v, err := DecodeMetric(ch)
			if err != nil {
				return OverloadControlInformationValue{}, pfcperr.WithPath("Overload Control Information", err)
			}
			o.Metric = v
			haveMetric = true
		case Timer:
			v, err := decodeScalarU32("Timer", ch)
			if err != nil {
				return OverloadControlInformationValue{}, pfcperr.WithPath("Overload Control Information", err)
			}
			o.TimerSeconds = v
			haveTimer = true
		}
	}
	if !haveSeq {
		return OverloadControlInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Sequence Number", InMessage: "Overload Control Information"}
	}
	if !haveMetric {
		return OverloadControlInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Metric", InMessage: "Overload Control Information"}
	}
	if !haveTimer {
		return OverloadControlInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Timer", InMessage: "Overload Control Information"}
	}
	return o, nil
}

func (o OverloadControlInformationValue) Encode() *Ie {
	return &Ie{Type: OverloadControlInformation, Children: []*Ie{
		EncodeSequenceNumberIE(o.SequenceNumber),
		EncodeMetric(o.Metric),
		{Type: Timer, Payload: wire.WriteU32(nil, o.TimerSeconds)},
	}}
}

// ApplicationDetectionInformationValue reports a detected application
// instance matched against a PDR's SDF/application filters.
type ApplicationDetectionInformationValue struct {
	ApplicationID string
}

func DecodeApplicationDetectionInformation(gie *Ie) (ApplicationDetectionInformationValue, error) {
	child := gie.Find(ApplicationID)
	if child == nil {
		return ApplicationDetectionInformationValue{}, &pfcperr.MissingMandatoryIe{IEType: "Application ID", InMessage: "Application Detection Information"}
	}
	return ApplicationDetectionInformationValue{ApplicationID: string(child.Payload)}, nil
}

func (a ApplicationDetectionInformationValue) Encode() *Ie {
	return &Ie{Type: ApplicationDetectionInformation, Children: []*Ie{
		{Type: ApplicationID, Payload: []byte(a.ApplicationID)},
	}}
}

// DownlinkDataReportValue notifies the CP function of buffered downlink
// data awaiting paging, identified by the PDR that matched it.
type DownlinkDataReportValue struct {
	PDRID uint16
}

func DecodeDownlinkDataReport(gie *Ie) (DownlinkDataReportValue, error) {
	child := gie.Find(PDRID)
	if child == nil {
		return DownlinkDataReportValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDR ID", InMessage: "Downlink Data Report"}
	}
	v, err := DecodePDRID(child)
	if err != nil {
		return DownlinkDataReportValue{}, pfcperr.WithPath("Downlink Data Report", err)
	}
	return DownlinkDataReportValue{PDRID: v}, nil
}

func (d DownlinkDataReportValue) Encode() *Ie {
	return &Ie{Type: DownlinkDataReport, Children: []*Ie{EncodePDRID(d.PDRID)}}
}

// ErrorIndicationReportValue reports a GTP-U Error Indication the UPF
// received for a given F-TEID, so the CP function can clean up the
// associated session.
type ErrorIndicationReportValue struct {
	FTEID FTEIDValue
}

func DecodeErrorIndicationReport(gie *Ie) (ErrorIndicationReportValue, error) {
	child := gie.Find(FTEID)
	if child == nil {
		return ErrorIndicationReportValue{}, &pfcperr.MissingMandatoryIe{IEType: "F-TEID", InMessage: "Error Indication Report"}
	}
	v, err := DecodeFTEID(child)
	if err != nil {
		return ErrorIndicationReportValue{}, pfcperr.WithPath("Error Indication Report", err)
	}
	return ErrorIndicationReportValue{FTEID: v}, nil
}

func (e ErrorIndicationReportValue) Encode() *Ie {
	return &Ie{Type: ErrorIndicationReport, Children: []*Ie{e.FTEID.Encode()}}
}

// UserPlanePathFailureReportValue reports a failed GTP-U path by peer
// address.
type UserPlanePathFailureReportValue struct {
	RemoteGTPUPeer NodeIDValue
}

func DecodeUserPlanePathFailureReport(gie *Ie) (UserPlanePathFailureReportValue, error) {
	child := gie.Find(RemoteGTPUPeer)
	if child == nil {
		return UserPlanePathFailureReportValue{}, &pfcperr.MissingMandatoryIe{IEType: "Remote GTP-U Peer", InMessage: "User Plane Path Failure Report"}
	}
	v, err := DecodeNodeID(child)
	if err != nil {
		return UserPlanePathFailureReportValue{}, pfcperr.WithPath("User Plane Path Failure Report", err)
	}
	return UserPlanePathFailureReportValue{RemoteGTPUPeer: v}, nil
}

func (u UserPlanePathFailureReportValue) Encode() (*Ie, error) {
	peer, err := u.RemoteGTPUPeer.Encode()
	if err != nil {
		return nil, err
	}
	peer.Type = RemoteGTPUPeer
	return &Ie{Type: UserPlanePathFailureReport, Children: []*Ie{peer}}, nil
}
