// Package message implements the 25 PFCP message types: each is a struct of
// typed IE slots plus an embedded wire.Header, with a Marshal method and a
// type-byte-keyed Parse dispatcher that decodes every type; there is no
// per-type Unmarshal method. Modeled on a
// Registry/LookupService dispatch-by-key pattern, generalized from a
// (classID, service) pair to a flat message-type byte.
package message

import (
	"fmt"

	"github.com/pfcpcodec/pfcpcodec/ids"
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// Message type bytes, per TS 29.244 Table 7.2.1-1.
const (
	MsgTypeHeartbeatRequest             uint8 = 1
	MsgTypeHeartbeatResponse            uint8 = 2
	MsgTypePFDManagementRequest         uint8 = 3
	MsgTypePFDManagementResponse        uint8 = 4
	MsgTypeAssociationSetupRequest      uint8 = 5
	MsgTypeAssociationSetupResponse     uint8 = 6
	MsgTypeAssociationUpdateRequest     uint8 = 7
	MsgTypeAssociationUpdateResponse    uint8 = 8
	MsgTypeAssociationReleaseRequest    uint8 = 9
	MsgTypeAssociationReleaseResponse   uint8 = 10
	MsgTypeVersionNotSupportedResponse  uint8 = 11
	MsgTypeNodeReportRequest            uint8 = 12
	MsgTypeNodeReportResponse           uint8 = 13
	MsgTypeSessionSetDeletionRequest    uint8 = 14
	MsgTypeSessionSetDeletionResponse   uint8 = 15
	MsgTypeSessionSetModificationRequest  uint8 = 16
	MsgTypeSessionSetModificationResponse uint8 = 17
	MsgTypeSessionEstablishmentRequest  uint8 = 50
	MsgTypeSessionEstablishmentResponse uint8 = 51
	MsgTypeSessionModificationRequest   uint8 = 52
	MsgTypeSessionModificationResponse  uint8 = 53
	MsgTypeSessionDeletionRequest       uint8 = 54
	MsgTypeSessionDeletionResponse      uint8 = 55
	MsgTypeSessionReportRequest         uint8 = 56
	MsgTypeSessionReportResponse        uint8 = 57
)

// Message is the capability set every message type implements: enough for
// the compare package and the CLI to work with any parsed message without a
// type switch on the concrete struct.
type Message interface {
	MsgType() uint8
	Sequence() ids.SequenceNumber
	SEID() (ids.Seid, bool)
	IterIEs(t ie.Type) []*ie.Ie
	Marshal() ([]byte, error)
	MarshalInto(dst *[]byte) error
}

// base is embedded by every message struct; it stores the parsed header and
// provides the Sequence/SEID/IterIEs methods generically over the message's
// decoded top-level IE list.
type base struct {
	header wire.Header
	ies    []*ie.Ie
}

func (b *base) Sequence() ids.SequenceNumber { return ids.SequenceNumberFromUint32(b.header.Sequence) }

func (b *base) SEID() (ids.Seid, bool) {
	if !b.header.S {
		return 0, false
	}
	return ids.FromUint64(b.header.Seid), true
}

func (b *base) IterIEs(t ie.Type) []*ie.Ie {
	var out []*ie.Ie
	for _, gie := range b.ies {
		if gie.Type == t {
			out = append(out, gie)
		}
	}
	return out
}

// AllIEs returns every top-level IE the message carries, in encoding order:
// the IEs decoded by Parse, or those a New* constructor records. A message
// assembled as a struct literal returns an empty list. Used by package compare to walk a message without a type switch on the
// concrete struct; not part of the Message capability set itself since most
// callers want IterIEs's type-filtered view.
func (b *base) AllIEs() []*ie.Ie { return b.ies }

// Header returns the parsed (or builder-assembled) wire header. Used by
// package compare for header-field mismatches; kept off the Message
// interface proper to keep the public capability set small.
func (b *base) Header() wire.Header { return b.header }

func marshalWith(header wire.Header, t uint8, body []byte) ([]byte, error) {
	header.MsgType = t
	head, err := wire.EncodeHeader(header, len(body))
	if err != nil {
		return nil, err
	}
	return append(head, body...), nil
}

// Parse decodes a complete PFCP message from buf, dispatching on the
// header's message-type byte. Unknown Version returns a recoverable
// *pfcperr.MessageParseError from wire.DecodeHeader before any body parsing
// is attempted.
func Parse(buf []byte) (Message, error) {
	header, body, err := wire.DecodeHeader(buf)
	if err != nil {
		if mpe, ok := err.(*pfcperr.MessageParseError); ok {
			return nil, mpe
		}
		return nil, err
	}

	ies, err := ie.DecodeAll(body)
	if err != nil {
		return nil, pfcperr.WithPath(fmt.Sprintf("message(type=%d)", header.MsgType), err)
	}

	switch header.MsgType {
	case MsgTypeHeartbeatRequest:
		return decodeHeartbeatRequest(header, ies)
	case MsgTypeHeartbeatResponse:
		return decodeHeartbeatResponse(header, ies)
	case MsgTypePFDManagementRequest:
		return decodePFDManagementRequest(header, ies)
	case MsgTypePFDManagementResponse:
		return decodePFDManagementResponse(header, ies)
	case MsgTypeAssociationSetupRequest:
		return decodeAssociationSetupRequest(header, ies)
	case MsgTypeAssociationSetupResponse:
		return decodeAssociationSetupResponse(header, ies)
	case MsgTypeAssociationUpdateRequest:
		return decodeAssociationUpdateRequest(header, ies)
	case MsgTypeAssociationUpdateResponse:
		return decodeAssociationUpdateResponse(header, ies)
	case MsgTypeAssociationReleaseRequest:
		return decodeAssociationReleaseRequest(header, ies)
	case MsgTypeAssociationReleaseResponse:
		return decodeAssociationReleaseResponse(header, ies)
	case MsgTypeVersionNotSupportedResponse:
		return decodeVersionNotSupportedResponse(header, ies)
	case MsgTypeNodeReportRequest:
		return decodeNodeReportRequest(header, ies)
	case MsgTypeNodeReportResponse:
		return decodeNodeReportResponse(header, ies)
	case MsgTypeSessionSetDeletionRequest:
		return decodeSessionSetDeletionRequest(header, ies)
	case MsgTypeSessionSetDeletionResponse:
		return decodeSessionSetDeletionResponse(header, ies)
	case MsgTypeSessionSetModificationRequest:
		return decodeSessionSetModificationRequest(header, ies)
	case MsgTypeSessionSetModificationResponse:
		return decodeSessionSetModificationResponse(header, ies)
	case MsgTypeSessionEstablishmentRequest:
		return decodeSessionEstablishmentRequest(header, ies)
	case MsgTypeSessionEstablishmentResponse:
		return decodeSessionEstablishmentResponse(header, ies)
	case MsgTypeSessionModificationRequest:
		return decodeSessionModificationRequest(header, ies)
	case MsgTypeSessionModificationResponse:
		return decodeSessionModificationResponse(header, ies)
	case MsgTypeSessionDeletionRequest:
		return decodeSessionDeletionRequest(header, ies)
	case MsgTypeSessionDeletionResponse:
		return decodeSessionDeletionResponse(header, ies)
	case MsgTypeSessionReportRequest:
		return decodeSessionReportRequest(header, ies)
	case MsgTypeSessionReportResponse:
		return decodeSessionReportResponse(header, ies)
	default:
		return nil, pfcperr.NewRecoverableMessageParseError(fmt.Sprintf("unknown message type %d", header.MsgType))
	}
}

// typeNames maps a message-type byte to its TS 29.244 Table 7.2.1-1 name,
// for diagnostic output (pfcpctl decode/browse). Centralized the same way
// the Cause-code table in pfcperr is, rather than scattered string literals.
var typeNames = map[uint8]string{
	MsgTypeHeartbeatRequest:               "Heartbeat Request",
	MsgTypeHeartbeatResponse:              "Heartbeat Response",
	MsgTypePFDManagementRequest:           "PFD Management Request",
	MsgTypePFDManagementResponse:          "PFD Management Response",
	MsgTypeAssociationSetupRequest:        "Association Setup Request",
	MsgTypeAssociationSetupResponse:       "Association Setup Response",
	MsgTypeAssociationUpdateRequest:       "Association Update Request",
	MsgTypeAssociationUpdateResponse:      "Association Update Response",
	MsgTypeAssociationReleaseRequest:      "Association Release Request",
	MsgTypeAssociationReleaseResponse:     "Association Release Response",
	MsgTypeVersionNotSupportedResponse:    "Version Not Supported Response",
	MsgTypeNodeReportRequest:              "Node Report Request",
	MsgTypeNodeReportResponse:             "Node Report Response",
	MsgTypeSessionSetDeletionRequest:      "Session Set Deletion Request",
	MsgTypeSessionSetDeletionResponse:     "Session Set Deletion Response",
	MsgTypeSessionSetModificationRequest:  "Session Set Modification Request",
	MsgTypeSessionSetModificationResponse: "Session Set Modification Response",
	MsgTypeSessionEstablishmentRequest:    "Session Establishment Request",
	MsgTypeSessionEstablishmentResponse:   "Session Establishment Response",
	MsgTypeSessionModificationRequest:     "Session Modification Request",
	MsgTypeSessionModificationResponse:    "Session Modification Response",
	MsgTypeSessionDeletionRequest:         "Session Deletion Request",
	MsgTypeSessionDeletionResponse:        "Session Deletion Response",
	MsgTypeSessionReportRequest:           "Session Report Request",
	MsgTypeSessionReportResponse:          "Session Report Response",
}

// TypeName returns the human-readable name for a message-type byte, or a
// placeholder for an unrecognized one.
func TypeName(t uint8) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", t)
}
