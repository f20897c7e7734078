package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// PFDManagementRequest carries one or more Application ID / PFD content
// bundles. Those bundles aren't part of the catalogued IE taxonomy (see
// ie/registry.go), so they round-trip as opaque top-level IEs rather than a
// typed grouped structure — the same passthrough treatment grouped IEs give
// their own uncatalogued children.
type PFDManagementRequest struct {
	base
}

func (m *PFDManagementRequest) MsgType() uint8 { return MsgTypePFDManagementRequest }

func decodePFDManagementRequest(h wire.Header, ies []*ie.Ie) (*PFDManagementRequest, error) {
	return &PFDManagementRequest{base: base{header: h, ies: ies}}, nil
}

func (m *PFDManagementRequest) Marshal() ([]byte, error) {
	body, err := ie.EncodeChildren(m.ies)
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *PFDManagementRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// PFDManagementResponse reports the outcome of a PFD Management Request.
type PFDManagementResponse struct {
	base
	Cause ie.CauseValue
}

func (m *PFDManagementResponse) MsgType() uint8 { return MsgTypePFDManagementResponse }

func decodePFDManagementResponse(h wire.Header, ies []*ie.Ie) (*PFDManagementResponse, error) {
	cause, err := findCause(ies, "PFD Management Response")
	if err != nil {
		return nil, err
	}
	return &PFDManagementResponse{base: base{header: h, ies: ies}, Cause: cause}, nil
}

func (m *PFDManagementResponse) Marshal() ([]byte, error) {
	cb, err := m.Cause.Encode().Encode()
	if err != nil {
		return nil, err
	}
	return marshalWith(m.header, m.MsgType(), cb)
}

func (m *PFDManagementResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func NewPFDManagementResponse(sequence uint32, cause ie.CauseValue) *PFDManagementResponse {
	return &PFDManagementResponse{
		base:  base{header: wire.Header{Version: wire.SupportedVersion, Sequence: sequence}, ies: []*ie.Ie{cause.Encode()}},
		Cause: cause,
	}
}
