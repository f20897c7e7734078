package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func findNodeID(ies []*ie.Ie, inMessage string) (ie.NodeIDValue, error) {
	for _, g := range ies {
		if g.Type == ie.NodeID {
			v, err := ie.DecodeNodeID(g)
			if err != nil {
				return ie.NodeIDValue{}, pfcperr.WithPath(inMessage, err)
			}
			return v, nil
		}
	}
	return ie.NodeIDValue{}, &pfcperr.MissingMandatoryIe{IEType: "Node ID", InMessage: inMessage}
}

func findCause(ies []*ie.Ie, inMessage string) (ie.CauseValue, error) {
	for _, g := range ies {
		if g.Type == ie.Cause {
			v, err := ie.DecodeCause(g)
			if err != nil {
				return 0, pfcperr.WithPath(inMessage, err)
			}
			return v, nil
		}
	}
	return 0, &pfcperr.MissingMandatoryIe{IEType: "Cause", InMessage: inMessage}
}

func findRecoveryTimeStamp(ies []*ie.Ie, inMessage string) (uint32, error) {
	for _, g := range ies {
		if g.Type == ie.RecoveryTimeStamp {
			v, err := ie.DecodeRecoveryTimeStamp(g)
			if err != nil {
				return 0, pfcperr.WithPath(inMessage, err)
			}
			return v, nil
		}
	}
	return 0, &pfcperr.MissingMandatoryIe{IEType: "Recovery Time Stamp", InMessage: inMessage}
}

func encodeNodeID(n ie.NodeIDValue) (*ie.Ie, error) { return n.Encode() }

// AssociationSetupRequest establishes a CP/UP association.
type AssociationSetupRequest struct {
	base
	NodeID            ie.NodeIDValue
	RecoveryTimeStamp uint32
}

func (m *AssociationSetupRequest) MsgType() uint8 { return MsgTypeAssociationSetupRequest }

func decodeAssociationSetupRequest(h wire.Header, ies []*ie.Ie) (*AssociationSetupRequest, error) {
	nodeID, err := findNodeID(ies, "Association Setup Request")
	if err != nil {
		return nil, err
	}
	rts, err := findRecoveryTimeStamp(ies, "Association Setup Request")
	if err != nil {
		return nil, err
	}
	return &AssociationSetupRequest{base: base{header: h, ies: ies}, NodeID: nodeID, RecoveryTimeStamp: rts}, nil
}

func (m *AssociationSetupRequest) Marshal() ([]byte, error) {
	node, err := encodeNodeID(m.NodeID)
	if err != nil {
		return nil, err
	}
	nodeBytes, err := node.Encode()
	if err != nil {
		return nil, err
	}
	rtsBytes, err := ie.EncodeRecoveryTimeStamp(m.RecoveryTimeStamp).Encode()
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), append(nodeBytes, rtsBytes...))
}

func (m *AssociationSetupRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// AssociationSetupResponse accepts or rejects an association.
type AssociationSetupResponse struct {
	base
	NodeID            ie.NodeIDValue
	Cause             ie.CauseValue
	RecoveryTimeStamp uint32
}

func (m *AssociationSetupResponse) MsgType() uint8 { return MsgTypeAssociationSetupResponse }

func decodeAssociationSetupResponse(h wire.Header, ies []*ie.Ie) (*AssociationSetupResponse, error) {
	nodeID, err := findNodeID(ies, "Association Setup Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Association Setup Response")
	if err != nil {
		return nil, err
	}
	rts, err := findRecoveryTimeStamp(ies, "Association Setup Response")
	if err != nil {
		return nil, err
	}
	return &AssociationSetupResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause, RecoveryTimeStamp: rts}, nil
}

func (m *AssociationSetupResponse) Marshal() ([]byte, error) {
	nodeBytes, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := nodeBytes.Encode()
	if err != nil {
		return nil, err
	}
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	rb, err := ie.EncodeRecoveryTimeStamp(m.RecoveryTimeStamp).Encode()
	if err != nil {
		return nil, err
	}
	body := append(append(nb, cb...), rb...)
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *AssociationSetupResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// AssociationUpdateRequest changes UP function feature advertisement for an
// existing association.
type AssociationUpdateRequest struct {
	base
	NodeID ie.NodeIDValue
}

func (m *AssociationUpdateRequest) MsgType() uint8 { return MsgTypeAssociationUpdateRequest }

func decodeAssociationUpdateRequest(h wire.Header, ies []*ie.Ie) (*AssociationUpdateRequest, error) {
	nodeID, err := findNodeID(ies, "Association Update Request")
	if err != nil {
		return nil, err
	}
	return &AssociationUpdateRequest{base: base{header: h, ies: ies}, NodeID: nodeID}, nil
}

func (m *AssociationUpdateRequest) Marshal() ([]byte, error) {
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

func (m *AssociationUpdateRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// AssociationUpdateResponse acknowledges an association update.
type AssociationUpdateResponse struct {
	base
	NodeID ie.NodeIDValue
	Cause  ie.CauseValue
}

func (m *AssociationUpdateResponse) MsgType() uint8 { return MsgTypeAssociationUpdateResponse }

func decodeAssociationUpdateResponse(h wire.Header, ies []*ie.Ie) (*AssociationUpdateResponse, error) {
	nodeID, err := findNodeID(ies, "Association Update Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Association Update Response")
	if err != nil {
		return nil, err
	}
	return &AssociationUpdateResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}, nil
}

func (m *AssociationUpdateResponse) Marshal() ([]byte, error) {
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

func (m *AssociationUpdateResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// AssociationReleaseRequest tears down an association.
type AssociationReleaseRequest struct {
	base
	NodeID ie.NodeIDValue
}

func (m *AssociationReleaseRequest) MsgType() uint8 { return MsgTypeAssociationReleaseRequest }

func decodeAssociationReleaseRequest(h wire.Header, ies []*ie.Ie) (*AssociationReleaseRequest, error) {
	nodeID, err := findNodeID(ies, "Association Release Request")
	if err != nil {
		return nil, err
	}
	return &AssociationReleaseRequest{base: base{header: h, ies: ies}, NodeID: nodeID}, nil
}

func (m *AssociationReleaseRequest) Marshal() ([]byte, error) {
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

func (m *AssociationReleaseRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// AssociationReleaseResponse acknowledges an association release.
type AssociationReleaseResponse struct {
	base
	NodeID ie.NodeIDValue
	Cause  ie.CauseValue
}

func (m *AssociationReleaseResponse) MsgType() uint8 { return MsgTypeAssociationReleaseResponse }

func decodeAssociationReleaseResponse(h wire.Header, ies []*ie.Ie) (*AssociationReleaseResponse, error) {
	nodeID, err := findNodeID(ies, "Association Release Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Association Release Response")
	if err != nil {
		return nil, err
	}
	return &AssociationReleaseResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}, nil
}

func (m *AssociationReleaseResponse) Marshal() ([]byte, error) {
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

func (m *AssociationReleaseResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
