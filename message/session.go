package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// SessionEstablishmentRequest creates a new PFCP session: the CP function's
// F-SEID plus the initial set of PDRs/FARs/URRs/QERs/BARs.
type SessionEstablishmentRequest struct {
	base
	NodeID     ie.NodeIDValue
	CPFSEID    ie.FSEIDValue
	CreatePDRs []ie.CreatePDRValue
	CreateFARs []ie.CreateFARValue
	CreateURRs []ie.CreateURRValue
	CreateQERs []ie.CreateQERValue
	CreateBAR  *ie.CreateBARValue
	PDNType    *uint8
}

func (m *SessionEstablishmentRequest) MsgType() uint8 { return MsgTypeSessionEstablishmentRequest }

func decodeSessionEstablishmentRequest(h wire.Header, ies []*ie.Ie) (*SessionEstablishmentRequest, error) {
	const inMessage = "Session Establishment Request"
	nodeID, err := findNodeID(ies, inMessage)
	if err != nil {
		return nil, err
	}
	m := &SessionEstablishmentRequest{base: base{header: h, ies: ies}, NodeID: nodeID}
	haveFSEID := false
	for _, g := range ies {
		switch g.Type {
		case ie.FSEID:
			v, err := ie.DecodeFSEID(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.CPFSEID = v
			haveFSEID = true
		case ie.CreatePDR:
			v, err := ie.DecodeCreatePDR(g)
			if err != nil {
				return nil, err
			}
			m.CreatePDRs = append(m.CreatePDRs, v)
		case ie.CreateFAR:
			v, err := ie.DecodeCreateFAR(g)
			if err != nil {
				return nil, err
			}
			m.CreateFARs = append(m.CreateFARs, v)
		case ie.CreateURR:
			v, err := ie.DecodeCreateURR(g)
			if err != nil {
				return nil, err
			}
			m.CreateURRs = append(m.CreateURRs, v)
		case ie.CreateQER:
			v, err := ie.DecodeCreateQER(g)
			if err != nil {
				return nil, err
			}
			m.CreateQERs = append(m.CreateQERs, v)
		case ie.CreateBAR:
			v, err := ie.DecodeCreateBAR(g)
			if err != nil {
				return nil, err
			}
			m.CreateBAR = &v
		case ie.PDNType:
			v, err := ie.DecodePDNType(g)
			if err != nil {
				return nil, err
			}
			m.PDNType = &v
		}
	}
	if !haveFSEID {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "F-SEID", InMessage: inMessage}
	}
	if len(m.CreatePDRs) == 0 {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Create PDR", InMessage: inMessage}
	}
	if len(m.CreateFARs) == 0 {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Create FAR", InMessage: inMessage}
	}
	return m, nil
}

func (m *SessionEstablishmentRequest) Marshal() ([]byte, error) {
	node, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := node.Encode()
	if err != nil {
		return nil, err
	}
	fb, err := m.CPFSEID.Encode().Encode()
	if err != nil {
		return nil, err
	}
	body := append(append([]byte{}, nb...), fb...)
	for _, p := range m.CreatePDRs {
		pie, err := p.Encode()
		if err != nil {
			return nil, err
		}
		b, err := pie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, f := range m.CreateFARs {
		fie, err := f.Encode()
		if err != nil {
			return nil, err
		}
		b, err := fie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, u := range m.CreateURRs {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, q := range m.CreateQERs {
		b, err := q.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.CreateBAR != nil {
		b, err := m.CreateBAR.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.PDNType != nil {
		b, err := ie.EncodePDNType(*m.PDNType).Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionEstablishmentRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionEstablishmentResponse reports the outcome of session establishment,
// including the UPF's own F-SEID and any F-TEIDs it allocated.
type SessionEstablishmentResponse struct {
	base
	NodeID      ie.NodeIDValue
	Cause       ie.CauseValue
	UPFSEID     *ie.FSEIDValue
	CreatedPDRs []ie.CreatedPDRValue
	OffendingIE *ie.Type
}

func (m *SessionEstablishmentResponse) MsgType() uint8 { return MsgTypeSessionEstablishmentResponse }

func decodeSessionEstablishmentResponse(h wire.Header, ies []*ie.Ie) (*SessionEstablishmentResponse, error) {
	const inMessage = "Session Establishment Response"
	nodeID, err := findNodeID(ies, inMessage)
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, inMessage)
	if err != nil {
		return nil, err
	}
	m := &SessionEstablishmentResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}
	for _, g := range ies {
		switch g.Type {
		case ie.FSEID:
			v, err := ie.DecodeFSEID(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.UPFSEID = &v
		case ie.CreatedPDR:
			v, err := ie.DecodeCreatedPDR(g)
			if err != nil {
				return nil, err
			}
			m.CreatedPDRs = append(m.CreatedPDRs, v)
		case ie.OffendingIE:
			v, err := ie.DecodeOffendingIE(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.OffendingIE = &v
		}
	}
	return m, nil
}

func (m *SessionEstablishmentResponse) Marshal() ([]byte, error) {
	node, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := node.Encode()
	if err != nil {
		return nil, err
	}
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	body := append(append([]byte{}, nb...), cb...)
	if m.UPFSEID != nil {
		b, err := m.UPFSEID.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, p := range m.CreatedPDRs {
		b, err := p.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.OffendingIE != nil {
		b, err := ie.EncodeOffendingIE(*m.OffendingIE).Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionEstablishmentResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionModificationRequest updates the PDRs/FARs/URRs/QERs/BARs of an
// existing session. Targeted by SEID, carried in the header, not a body IE.
type SessionModificationRequest struct {
	base
	CPFSEID    *ie.FSEIDValue
	CreatePDRs []ie.CreatePDRValue
	UpdatePDRs []ie.UpdatePDRValue
	RemovePDRs []ie.RemovePDRValue
	CreateFARs []ie.CreateFARValue
	UpdateFARs []ie.UpdateFARValue
	RemoveFARs []ie.RemoveFARValue
	CreateURRs []ie.CreateURRValue
	UpdateURRs []ie.UpdateURRValue
	RemoveURRs []ie.RemoveURRValue
	QueryURRs  []ie.QueryURRValue
	CreateQERs []ie.CreateQERValue
	UpdateQERs []ie.UpdateQERValue
	RemoveQERs []ie.RemoveQERValue
}

func (m *SessionModificationRequest) MsgType() uint8 { return MsgTypeSessionModificationRequest }

func decodeSessionModificationRequest(h wire.Header, ies []*ie.Ie) (*SessionModificationRequest, error) {
	const inMessage = "Session Modification Request"
	m := &SessionModificationRequest{base: base{header: h, ies: ies}}
	for _, g := range ies {
		switch g.Type {
		case ie.FSEID:
			v, err := ie.DecodeFSEID(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.CPFSEID = &v
		case ie.CreatePDR:
			v, err := ie.DecodeCreatePDR(g)
			if err != nil {
				return nil, err
			}
			m.CreatePDRs = append(m.CreatePDRs, v)
		case ie.UpdatePDR:
			v, err := ie.DecodeUpdatePDR(g)
			if err != nil {
				return nil, err
			}
			m.UpdatePDRs = append(m.UpdatePDRs, v)
		case ie.RemovePDR:
			v, err := ie.DecodeRemovePDR(g)
			if err != nil {
				return nil, err
			}
			m.RemovePDRs = append(m.RemovePDRs, v)
		case ie.CreateFAR:
			v, err := ie.DecodeCreateFAR(g)
			if err != nil {
				return nil, err
			}
			m.CreateFARs = append(m.CreateFARs, v)
		case ie.UpdateFAR:
			v, err := ie.DecodeUpdateFAR(g)
			if err != nil {
				return nil, err
			}
			m.UpdateFARs = append(m.UpdateFARs, v)
		case ie.RemoveFAR:
			v, err := ie.DecodeRemoveFAR(g)
			if err != nil {
				return nil, err
			}
			m.RemoveFARs = append(m.RemoveFARs, v)
		case ie.CreateURR:
			v, err := ie.DecodeCreateURR(g)
			if err != nil {
				return nil, err
			}
			m.CreateURRs = append(m.CreateURRs, v)
		case ie.UpdateURR:
			v, err := ie.DecodeUpdateURR(g)
			if err != nil {
				return nil, err
			}
			m.UpdateURRs = append(m.UpdateURRs, v)
		case ie.RemoveURR:
			v, err := ie.DecodeRemoveURR(g)
			if err != nil {
				return nil, err
			}
			m.RemoveURRs = append(m.RemoveURRs, v)
		case ie.QueryURR:
			v, err := ie.DecodeQueryURR(g)
			if err != nil {
				return nil, err
			}
			m.QueryURRs = append(m.QueryURRs, v)
		case ie.CreateQER:
			v, err := ie.DecodeCreateQER(g)
			if err != nil {
				return nil, err
			}
			m.CreateQERs = append(m.CreateQERs, v)
		case ie.UpdateQER:
			v, err := ie.DecodeUpdateQER(g)
			if err != nil {
				return nil, err
			}
			m.UpdateQERs = append(m.UpdateQERs, v)
		case ie.RemoveQER:
			v, err := ie.DecodeRemoveQER(g)
			if err != nil {
				return nil, err
			}
			m.RemoveQERs = append(m.RemoveQERs, v)
		}
	}
	return m, nil
}

func (m *SessionModificationRequest) Marshal() ([]byte, error) {
	var body []byte
	if m.CPFSEID != nil {
		b, err := m.CPFSEID.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, p := range m.CreatePDRs {
		pie, err := p.Encode()
		if err != nil {
			return nil, err
		}
		b, err := pie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, p := range m.UpdatePDRs {
		pie, err := p.Encode()
		if err != nil {
			return nil, err
		}
		b, err := pie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, p := range m.RemovePDRs {
		b, err := p.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, f := range m.CreateFARs {
		fie, err := f.Encode()
		if err != nil {
			return nil, err
		}
		b, err := fie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, f := range m.UpdateFARs {
		fie, err := f.Encode()
		if err != nil {
			return nil, err
		}
		b, err := fie.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, f := range m.RemoveFARs {
		b, err := f.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, u := range m.CreateURRs {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, u := range m.UpdateURRs {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, u := range m.RemoveURRs {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, q := range m.QueryURRs {
		b, err := q.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, q := range m.CreateQERs {
		b, err := q.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, q := range m.UpdateQERs {
		b, err := q.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, q := range m.RemoveQERs {
		b, err := q.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionModificationRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionModificationResponse reports the outcome of a session modification,
// carrying any newly created PDR F-TEIDs and usage reports triggered by the
// change.
type SessionModificationResponse struct {
	base
	Cause        ie.CauseValue
	CreatedPDRs  []ie.CreatedPDRValue
	UsageReports []ie.UsageReportInSessionModificationResponseValue
	OffendingIE  *ie.Type
}

func (m *SessionModificationResponse) MsgType() uint8 { return MsgTypeSessionModificationResponse }

func decodeSessionModificationResponse(h wire.Header, ies []*ie.Ie) (*SessionModificationResponse, error) {
	const inMessage = "Session Modification Response"
	cause, err := findCause(ies, inMessage)
	if err != nil {
		return nil, err
	}
	m := &SessionModificationResponse{base: base{header: h, ies: ies}, Cause: cause}
	for _, g := range ies {
		switch g.Type {
		case ie.CreatedPDR:
			v, err := ie.DecodeCreatedPDR(g)
			if err != nil {
				return nil, err
			}
			m.CreatedPDRs = append(m.CreatedPDRs, v)
		case ie.UsageReportInSessionModificationResponse:
			v, err := ie.DecodeUsageReportInSessionModificationResponse(g)
			if err != nil {
				return nil, err
			}
			m.UsageReports = append(m.UsageReports, v)
		case ie.OffendingIE:
			v, err := ie.DecodeOffendingIE(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.OffendingIE = &v
		}
	}
	return m, nil
}

func (m *SessionModificationResponse) Marshal() ([]byte, error) {
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, cb...)
	for _, p := range m.CreatedPDRs {
		b, err := p.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	for _, u := range m.UsageReports {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.OffendingIE != nil {
		b, err := ie.EncodeOffendingIE(*m.OffendingIE).Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionModificationResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionDeletionRequest tears down an existing session, identified by the
// header's SEID; it carries no mandatory body IEs.
type SessionDeletionRequest struct {
	base
}

func (m *SessionDeletionRequest) MsgType() uint8 { return MsgTypeSessionDeletionRequest }

func decodeSessionDeletionRequest(h wire.Header, ies []*ie.Ie) (*SessionDeletionRequest, error) {
	return &SessionDeletionRequest{base: base{header: h, ies: ies}}, nil
}

func (m *SessionDeletionRequest) Marshal() ([]byte, error) {
	return marshalWith(m.header, m.MsgType(), nil)
}

func (m *SessionDeletionRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionDeletionResponse reports final usage for every URR in the deleted
// session.
type SessionDeletionResponse struct {
	base
	Cause        ie.CauseValue
	UsageReports []ie.UsageReportInSessionDeletionResponseValue
}

func (m *SessionDeletionResponse) MsgType() uint8 { return MsgTypeSessionDeletionResponse }

func decodeSessionDeletionResponse(h wire.Header, ies []*ie.Ie) (*SessionDeletionResponse, error) {
	const inMessage = "Session Deletion Response"
	cause, err := findCause(ies, inMessage)
	if err != nil {
		return nil, err
	}
	m := &SessionDeletionResponse{base: base{header: h, ies: ies}, Cause: cause}
	for _, g := range ies {
		if g.Type == ie.UsageReportInSessionDeletionResponse {
			v, err := ie.DecodeUsageReportInSessionDeletionResponse(g)
			if err != nil {
				return nil, err
			}
			m.UsageReports = append(m.UsageReports, v)
		}
	}
	return m, nil
}

func (m *SessionDeletionResponse) Marshal() ([]byte, error) {
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, cb...)
	for _, u := range m.UsageReports {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionDeletionResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionReportRequest is an unsolicited UPF->CP report: usage, a downlink
// data notification, an error indication, or a path failure, optionally
// paired with BAR updates the CP should apply in its response.
type SessionReportRequest struct {
	base
	ReportType            uint8
	UsageReports          []ie.UsageReportInSessionReportRequestValue
	DownlinkDataReport    *ie.DownlinkDataReportValue
	ErrorIndicationReport *ie.ErrorIndicationReportValue
}

func (m *SessionReportRequest) MsgType() uint8 { return MsgTypeSessionReportRequest }

func decodeSessionReportRequest(h wire.Header, ies []*ie.Ie) (*SessionReportRequest, error) {
	const inMessage = "Session Report Request"
	m := &SessionReportRequest{base: base{header: h, ies: ies}}
	haveType := false
	for _, g := range ies {
		switch g.Type {
		case ie.ReportType:
			v, err := ie.DecodeReportType(g)
			if err != nil {
				return nil, pfcperr.WithPath(inMessage, err)
			}
			m.ReportType = v
			haveType = true
		case ie.UsageReportInSessionReportRequest:
			v, err := ie.DecodeUsageReportInSessionReportRequest(g)
			if err != nil {
				return nil, err
			}
			m.UsageReports = append(m.UsageReports, v)
		case ie.DownlinkDataReport:
			v, err := ie.DecodeDownlinkDataReport(g)
			if err != nil {
				return nil, err
			}
			m.DownlinkDataReport = &v
		case ie.ErrorIndicationReport:
			v, err := ie.DecodeErrorIndicationReport(g)
			if err != nil {
				return nil, err
			}
			m.ErrorIndicationReport = &v
		}
	}
	if !haveType {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Report Type", InMessage: inMessage}
	}
	return m, nil
}

func (m *SessionReportRequest) Marshal() ([]byte, error) {
	rb, err := ie.EncodeReportType(m.ReportType).Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, rb...)
	for _, u := range m.UsageReports {
		b, err := u.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.DownlinkDataReport != nil {
		b, err := m.DownlinkDataReport.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if m.ErrorIndicationReport != nil {
		b, err := m.ErrorIndicationReport.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionReportRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionReportResponse answers a Session Report Request, optionally
// carrying BAR updates (e.g. a new downlink data notification delay) the CP
// wants applied as part of acknowledging the report.
type SessionReportResponse struct {
	base
	Cause     ie.CauseValue
	UpdateBAR *ie.UpdateBARWithinSessionReportResponseValue
}

func (m *SessionReportResponse) MsgType() uint8 { return MsgTypeSessionReportResponse }

func decodeSessionReportResponse(h wire.Header, ies []*ie.Ie) (*SessionReportResponse, error) {
	const inMessage = "Session Report Response"
	cause, err := findCause(ies, inMessage)
	if err != nil {
		return nil, err
	}
	m := &SessionReportResponse{base: base{header: h, ies: ies}, Cause: cause}
	for _, g := range ies {
		if g.Type == ie.UpdateBARWithinSessionReportResponse {
			v, err := ie.DecodeUpdateBARWithinSessionReportResponse(g)
			if err != nil {
				return nil, err
			}
			m.UpdateBAR = &v
		}
	}
	return m, nil
}

func (m *SessionReportResponse) Marshal() ([]byte, error) {
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, cb...)
	if m.UpdateBAR != nil {
		b, err := m.UpdateBAR.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionReportResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
