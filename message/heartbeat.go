package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// HeartbeatRequest carries the sender's Recovery Time Stamp so the peer can
// detect a restart.
type HeartbeatRequest struct {
	base
	RecoveryTimeStamp uint32 // NTP seconds
}

func (m *HeartbeatRequest) MsgType() uint8 { return MsgTypeHeartbeatRequest }

func decodeHeartbeatRequest(h wire.Header, ies []*ie.Ie) (*HeartbeatRequest, error) {
	m := &HeartbeatRequest{base: base{header: h, ies: ies}}
	found := false
	for _, g := range ies {
		if g.Type == ie.RecoveryTimeStamp {
			v, err := ie.DecodeRecoveryTimeStamp(g)
			if err != nil {
				return nil, pfcperr.WithPath("Heartbeat Request", err)
			}
			m.RecoveryTimeStamp = v
			found = true
		}
	}
	if !found {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Recovery Time Stamp", InMessage: "Heartbeat Request"}
	}
	return m, nil
}

func (m *HeartbeatRequest) Marshal() ([]byte, error) {
	body := ie.EncodeRecoveryTimeStamp(m.RecoveryTimeStamp)
	encoded, err := body.Encode()
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), encoded)
}

func (m *HeartbeatRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// NewHeartbeatRequest builds a request carrying recoveryTimeStamp (an NTP
// second count; see ie.NTPFromUnix).
func NewHeartbeatRequest(sequence uint32, recoveryTimeStamp uint32) *HeartbeatRequest {
	return &HeartbeatRequest{
		base:              base{header: wire.Header{Version: wire.SupportedVersion, Sequence: sequence}, ies: []*ie.Ie{ie.EncodeRecoveryTimeStamp(recoveryTimeStamp)}},
		RecoveryTimeStamp: recoveryTimeStamp,
	}
}

// HeartbeatResponse echoes the responder's own Recovery Time Stamp.
type HeartbeatResponse struct {
	base
	RecoveryTimeStamp uint32
}

func (m *HeartbeatResponse) MsgType() uint8 { return MsgTypeHeartbeatResponse }

func decodeHeartbeatResponse(h wire.Header, ies []*ie.Ie) (*HeartbeatResponse, error) {
	m := &HeartbeatResponse{base: base{header: h, ies: ies}}
	found := false
	for _, g := range ies {
		if g.Type == ie.RecoveryTimeStamp {
			v, err := ie.DecodeRecoveryTimeStamp(g)
			if err != nil {
				return nil, pfcperr.WithPath("Heartbeat Response", err)
			}
			m.RecoveryTimeStamp = v
			found = true
		}
	}
	if !found {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Recovery Time Stamp", InMessage: "Heartbeat Response"}
	}
	return m, nil
}

func (m *HeartbeatResponse) Marshal() ([]byte, error) {
	body := ie.EncodeRecoveryTimeStamp(m.RecoveryTimeStamp)
	encoded, err := body.Encode()
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), encoded)
}

func (m *HeartbeatResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func NewHeartbeatResponse(sequence uint32, recoveryTimeStamp uint32) *HeartbeatResponse {
	return &HeartbeatResponse{
		base:              base{header: wire.Header{Version: wire.SupportedVersion, Sequence: sequence}, ies: []*ie.Ie{ie.EncodeRecoveryTimeStamp(recoveryTimeStamp)}},
		RecoveryTimeStamp: recoveryTimeStamp,
	}
}
