package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// VersionNotSupportedResponse carries no IEs: its entire meaning is the
// header's version field and message type.
type VersionNotSupportedResponse struct {
	base
}

func (m *VersionNotSupportedResponse) MsgType() uint8 { return MsgTypeVersionNotSupportedResponse }

func decodeVersionNotSupportedResponse(h wire.Header, ies []*ie.Ie) (*VersionNotSupportedResponse, error) {
	return &VersionNotSupportedResponse{base: base{header: h, ies: ies}}, nil
}

func (m *VersionNotSupportedResponse) Marshal() ([]byte, error) {
	return marshalWith(m.header, m.MsgType(), nil)
}

func (m *VersionNotSupportedResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// NewVersionNotSupportedResponse builds a synthesized response to a
// request carrying an unsupported protocol version; sequence should echo
// the request that triggered it.
func NewVersionNotSupportedResponse(sequence uint32) *VersionNotSupportedResponse {
	return &VersionNotSupportedResponse{base: base{header: wire.Header{Version: wire.SupportedVersion, Sequence: sequence}}}
}
