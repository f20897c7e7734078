package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// SessionSetDeletionRequest asks a peer to delete every PFCP session
// associated with a given CP/UP function, used during a planned node
// restart or graceful decommission.
type SessionSetDeletionRequest struct {
	base
	NodeID ie.NodeIDValue
}

func (m *SessionSetDeletionRequest) MsgType() uint8 { return MsgTypeSessionSetDeletionRequest }

func decodeSessionSetDeletionRequest(h wire.Header, ies []*ie.Ie) (*SessionSetDeletionRequest, error) {
	nodeID, err := findNodeID(ies, "Session Set Deletion Request")
	if err != nil {
		return nil, err
	}
	return &SessionSetDeletionRequest{base: base{header: h, ies: ies}, NodeID: nodeID}, nil
}

func (m *SessionSetDeletionRequest) Marshal() ([]byte, error) {
	node, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := node.Encode()
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), nb)
}

func (m *SessionSetDeletionRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionSetDeletionResponse acknowledges a Session Set Deletion Request.
type SessionSetDeletionResponse struct {
	base
	NodeID ie.NodeIDValue
	Cause  ie.CauseValue
}

func (m *SessionSetDeletionResponse) MsgType() uint8 { return MsgTypeSessionSetDeletionResponse }

func decodeSessionSetDeletionResponse(h wire.Header, ies []*ie.Ie) (*SessionSetDeletionResponse, error) {
	nodeID, err := findNodeID(ies, "Session Set Deletion Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Session Set Deletion Response")
	if err != nil {
		return nil, err
	}
	return &SessionSetDeletionResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}, nil
}

func (m *SessionSetDeletionResponse) Marshal() ([]byte, error) {
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
	return marshalWith(m.header, m.MsgType(), append(nb, cb...))
}

func (m *SessionSetDeletionResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionSetModificationRequest carries a bulk load/overload control update
// across every session a CP/UP function pair shares.
type SessionSetModificationRequest struct {
	base
	NodeID                    ie.NodeIDValue
	OverloadControlInformation *ie.OverloadControlInformationValue
}

func (m *SessionSetModificationRequest) MsgType() uint8 { return MsgTypeSessionSetModificationRequest }

func decodeSessionSetModificationRequest(h wire.Header, ies []*ie.Ie) (*SessionSetModificationRequest, error) {
	nodeID, err := findNodeID(ies, "Session Set Modification Request")
	if err != nil {
		return nil, err
	}
	m := &SessionSetModificationRequest{base: base{header: h, ies: ies}, NodeID: nodeID}
	for _, g := range ies {
		if g.Type == ie.OverloadControlInformation {
			v, err := ie.DecodeOverloadControlInformation(g)
			if err != nil {
				return nil, err
			}
			m.OverloadControlInformation = &v
		}
	}
	return m, nil
}

func (m *SessionSetModificationRequest) Marshal() ([]byte, error) {
	node, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := node.Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, nb...)
	if m.OverloadControlInformation != nil {
		ob, err := m.OverloadControlInformation.Encode().Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, ob...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *SessionSetModificationRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SessionSetModificationResponse acknowledges a Session Set Modification
// Request.
type SessionSetModificationResponse struct {
	base
	NodeID ie.NodeIDValue
	Cause  ie.CauseValue
}

func (m *SessionSetModificationResponse) MsgType() uint8 { return MsgTypeSessionSetModificationResponse }

func decodeSessionSetModificationResponse(h wire.Header, ies []*ie.Ie) (*SessionSetModificationResponse, error) {
	nodeID, err := findNodeID(ies, "Session Set Modification Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Session Set Modification Response")
	if err != nil {
		return nil, err
	}
	return &SessionSetModificationResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}, nil
}

func (m *SessionSetModificationResponse) Marshal() ([]byte, error) {
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
	return marshalWith(m.header, m.MsgType(), append(nb, cb...))
}

func (m *SessionSetModificationResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
