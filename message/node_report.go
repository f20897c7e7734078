package message

import (
	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// NodeReportRequest notifies a peer of a node-level condition: a GTP-U path
// failure or a restart, identified by NodeReportType and an optional
// User Plane Path Failure Report.
type NodeReportRequest struct {
	base
	NodeID                     ie.NodeIDValue
	NodeReportType              uint8
	UserPlanePathFailureReport *ie.UserPlanePathFailureReportValue
}

func (m *NodeReportRequest) MsgType() uint8 { return MsgTypeNodeReportRequest }

func decodeNodeReportRequest(h wire.Header, ies []*ie.Ie) (*NodeReportRequest, error) {
	nodeID, err := findNodeID(ies, "Node Report Request")
	if err != nil {
		return nil, err
	}
	m := &NodeReportRequest{base: base{header: h, ies: ies}, NodeID: nodeID}
	haveType := false
	for _, g := range ies {
		switch g.Type {
		case ie.NodeReportType:
			if len(g.Payload) < 1 {
				return nil, pfcperr.WithPath("Node Report Request", &pfcperr.InvalidLength{Context: "Node Report Type", Expected: ">=1", Actual: len(g.Payload)})
			}
			m.NodeReportType = g.Payload[0]
			haveType = true
		case ie.UserPlanePathFailureReport:
			v, err := ie.DecodeUserPlanePathFailureReport(g)
			if err != nil {
				return nil, pfcperr.WithPath("Node Report Request", err)
			}
			m.UserPlanePathFailureReport = &v
		}
	}
	if !haveType {
		return nil, &pfcperr.MissingMandatoryIe{IEType: "Node Report Type", InMessage: "Node Report Request"}
	}
	return m, nil
}

func (m *NodeReportRequest) Marshal() ([]byte, error) {
	node, err := m.NodeID.Encode()
	if err != nil {
		return nil, err
	}
	nb, err := node.Encode()
	if err != nil {
		return nil, err
	}
	body := append([]byte{}, nb...)
	typeIe := &ie.Ie{Type: ie.NodeReportType, Payload: []byte{m.NodeReportType}}
	tb, err := typeIe.Encode()
	if err != nil {
		return nil, err
	}
	body = append(body, tb...)
	if m.UserPlanePathFailureReport != nil {
		reportIe, err := m.UserPlanePathFailureReport.Encode()
		if err != nil {
			return nil, err
		}
		rb, err := reportIe.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, rb...)
	}
	return marshalWith(m.header, m.MsgType(), body)
}

func (m *NodeReportRequest) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// NodeReportResponse acknowledges a Node Report Request.
type NodeReportResponse struct {
	base
	NodeID ie.NodeIDValue
	Cause  ie.CauseValue
}

func (m *NodeReportResponse) MsgType() uint8 { return MsgTypeNodeReportResponse }

func decodeNodeReportResponse(h wire.Header, ies []*ie.Ie) (*NodeReportResponse, error) {
	nodeID, err := findNodeID(ies, "Node Report Response")
	if err != nil {
		return nil, err
	}
	cause, err := findCause(ies, "Node Report Response")
	if err != nil {
		return nil, err
	}
	return &NodeReportResponse{base: base{header: h, ies: ies}, NodeID: nodeID, Cause: cause}, nil
}

func (m *NodeReportResponse) Marshal() ([]byte, error) {
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

func (m *NodeReportResponse) MarshalInto(dst *[]byte) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
