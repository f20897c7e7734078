package ie

import "github.com/pfcpcodec/pfcpcodec/pfcperr"

// CreateURRValue installs one Usage Reporting Rule.
type CreateURRValue struct {
	URRID             uint32
	MeasurementMethod uint8
	ReportingTriggers uint32
	VolumeThreshold   *uint64
	TimeThreshold     *uint32
	VolumeQuota       *uint64
	TimeQuota         *uint32
}

func DecodeCreateURR(gie *Ie) (CreateURRValue, error) {
	var c CreateURRValue
	haveID, haveMethod, haveTriggers := false, false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case URRID:
			v, err := DecodeURRID(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.URRID = v
			haveID = true
		case MeasurementMethod:
			v, err := DecodeMeasurementMethod(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.MeasurementMethod = v
			haveMethod = true
		case ReportingTriggers:
			v, err := DecodeReportingTriggers(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.ReportingTriggers = v
			haveTriggers = true
		case VolumeThreshold:
			v, err := DecodeVolumeThreshold(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.VolumeThreshold = &v
		case TimeThreshold:
			v, err := DecodeTimeThreshold(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.TimeThreshold = &v
		case VolumeQuota:
			v, err := DecodeVolumeQuota(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.VolumeQuota = &v
		case TimeQuota:
			v, err := DecodeTimeQuota(ch)
			if err != nil {
				return CreateURRValue{}, pfcperr.WithPath("Create URR", err)
			}
			c.TimeQuota = &v
		}
	}
	if !haveID {
		return CreateURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "URR ID", InMessage: "Create URR"}
	}
	if !haveMethod {
		return CreateURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "Measurement Method", InMessage: "Create URR"}
	}
	if !haveTriggers {
		return CreateURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "Reporting Triggers", InMessage: "Create URR"}
	}
	return c, nil
}

func (c CreateURRValue) Encode() *Ie {
	children := []*Ie{
		EncodeURRID(c.URRID),
		EncodeMeasurementMethod(c.MeasurementMethod),
		EncodeReportingTriggers(c.ReportingTriggers),
	}
	if c.VolumeThreshold != nil {
		children = append(children, EncodeVolumeThreshold(*c.VolumeThreshold))
	}
	if c.TimeThreshold != nil {
		children = append(children, EncodeTimeThreshold(*c.TimeThreshold))
	}
	if c.VolumeQuota != nil {
		children = append(children, EncodeVolumeQuota(*c.VolumeQuota))
	}
	if c.TimeQuota != nil {
		children = append(children, EncodeTimeQuota(*c.TimeQuota))
	}
	return &Ie{Type: CreateURR, Children: children}
}

// UpdateURRValue modifies an existing URR; URRID is the only mandatory
// field.
type UpdateURRValue struct {
	URRID             uint32
	ReportingTriggers *uint32
	VolumeThreshold   *uint64
	TimeThreshold     *uint32
	VolumeQuota       *uint64
	TimeQuota         *uint32
}

func DecodeUpdateURR(gie *Ie) (UpdateURRValue, error) {
	var u UpdateURRValue
	haveID := false
	for _, ch := range gie.Children {
		switch ch.Type {
		case URRID:
			v, err := DecodeURRID(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.URRID = v
			haveID = true
		case ReportingTriggers:
			v, err := DecodeReportingTriggers(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.ReportingTriggers = &v
		case VolumeThreshold:
			v, err := DecodeVolumeThreshold(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.VolumeThreshold = &v
		case TimeThreshold:
			v, err := DecodeTimeThreshold(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.TimeThreshold = &v
		case VolumeQuota:
			v, err := DecodeVolumeQuota(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.VolumeQuota = &v
		case TimeQuota:
			v, err := DecodeTimeQuota(ch)
			if err != nil {
				return UpdateURRValue{}, pfcperr.WithPath("Update URR", err)
			}
			u.TimeQuota = &v
		}
	}
	if !haveID {
		return UpdateURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "URR ID", InMessage: "Update URR"}
	}
	return u, nil
}

func (u UpdateURRValue) Encode() *Ie {
	children := []*Ie{EncodeURRID(u.URRID)}
	if u.ReportingTriggers != nil {
		children = append(children, EncodeReportingTriggers(*u.ReportingTriggers))
	}
	if u.VolumeThreshold != nil {
		children = append(children, EncodeVolumeThreshold(*u.VolumeThreshold))
	}
	if u.TimeThreshold != nil {
		children = append(children, EncodeTimeThreshold(*u.TimeThreshold))
	}
	if u.VolumeQuota != nil {
		children = append(children, EncodeVolumeQuota(*u.VolumeQuota))
	}
	if u.TimeQuota != nil {
		children = append(children, EncodeTimeQuota(*u.TimeQuota))
	}
	return &Ie{Type: UpdateURR, Children: children}
}

// RemoveURRValue names the URR to delete by ID.
type RemoveURRValue struct {
	URRID uint32
}

func DecodeRemoveURR(gie *Ie) (RemoveURRValue, error) {
	child := gie.Find(URRID)
	if child == nil {
		return RemoveURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "URR ID", InMessage: "Remove URR"}
	}
	v, err := DecodeURRID(child)
	if err != nil {
		return RemoveURRValue{}, pfcperr.WithPath("Remove URR", err)
	}
	return RemoveURRValue{URRID: v}, nil
}

func (r RemoveURRValue) Encode() *Ie {
	return &Ie{Type: RemoveURR, Children: []*Ie{EncodeURRID(r.URRID)}}
}

// QueryURRValue requests an immediate usage report for one URR.
type QueryURRValue struct {
	URRID uint32
}

func DecodeQueryURR(gie *Ie) (QueryURRValue, error) {
	child := gie.Find(URRID)
	if child == nil {
		return QueryURRValue{}, &pfcperr.MissingMandatoryIe{IEType: "URR ID", InMessage: "Query URR"}
	}
	v, err := DecodeURRID(child)
	if err != nil {
		return QueryURRValue{}, pfcperr.WithPath("Query URR", err)
	}
	return QueryURRValue{URRID: v}, nil
}

func (q QueryURRValue) Encode() *Ie {
	return &Ie{Type: QueryURR, Children: []*Ie{EncodeURRID(q.URRID)}}
}

// CreateQERValue installs one QoS Enforcement Rule.
type CreateQERValue struct {
	QERID      uint32
	GateStatus GateStatusValue
	MBR        *BitRate
	GBR        *BitRate
}

func DecodeCreateQER(gie *Ie) (CreateQERValue, error) {
	var c CreateQERValue
	haveID, haveGate := false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case QERID:
			v, err := DecodeQERID(ch)
			if err != nil {
				return CreateQERValue{}, pfcperr.WithPath("Create QER", err)
			}
			c.QERID = v
			haveID = true
		case GateStatus:
			v, err := DecodeGateStatus(ch)
			if err != nil {
				return CreateQERValue{}, pfcperr.WithPath("Create QER", err)
			}
			c.GateStatus = v
			haveGate = true
		case MBR:
			v, err := DecodeMBR(ch)
			if err != nil {
				return CreateQERValue{}, pfcperr.WithPath("Create QER", err)
			}
			c.MBR = &v
		case GBR:
			v, err := DecodeGBR(ch)
			if err != nil {
				return CreateQERValue{}, pfcperr.WithPath("Create QER", err)
			}
			c.GBR = &v
		}
	}
	if !haveID {
		return CreateQERValue{}, &pfcperr.MissingMandatoryIe{IEType: "QER ID", InMessage: "Create QER"}
	}
	if !haveGate {
		return CreateQERValue{}, &pfcperr.MissingMandatoryIe{IEType: "Gate Status", InMessage: "Create QER"}
	}
	return c, nil
}

func (c CreateQERValue) Encode() *Ie {
	children := []*Ie{EncodeQERID(c.QERID), c.GateStatus.Encode()}
	if c.MBR != nil {
		children = append(children, EncodeMBR(*c.MBR))
	}
	if c.GBR != nil {
		children = append(children, EncodeGBR(*c.GBR))
	}
	return &Ie{Type: CreateQER, Children: children}
}

// UpdateQERValue modifies an existing QER; QERID is the only mandatory
// field.
type UpdateQERValue struct {
	QERID      uint32
	GateStatus *GateStatusValue
	MBR        *BitRate
	GBR        *BitRate
}

func DecodeUpdateQER(gie *Ie) (UpdateQERValue, error) {
	var u UpdateQERValue
	haveID := false
	for _, ch := range gie.Children {
		switch ch.Type {
		case QERID:
			v, err := DecodeQERID(ch)
			if err != nil {
				return UpdateQERValue{}, pfcperr.WithPath("Update QER", err)
			}
			u.QERID = v
			haveID = true
		case GateStatus:
			v, err := DecodeGateStatus(ch)
			if err != nil {
				return UpdateQERValue{}, pfcperr.WithPath("Update QER", err)
			}
			u.GateStatus = &v
		case MBR:
			v, err := DecodeMBR(ch)
			if err != nil {
				return UpdateQERValue{}, pfcperr.WithPath("Update QER", err)
			}
			u.MBR = &v
		case GBR:
			v, err := DecodeGBR(ch)
			if err != nil {
				return UpdateQERValue{}, pfcperr.WithPath("Update QER", err)
			}
			u.GBR = &v
		}
	}
	if !haveID {
		return UpdateQERValue{}, &pfcperr.MissingMandatoryIe{IEType: "QER ID", InMessage: "Update QER"}
	}
	return u, nil
}

func (u UpdateQERValue) Encode() *Ie {
	children := []*Ie{EncodeQERID(u.QERID)}
	if u.GateStatus != nil {
		children = append(children, u.GateStatus.Encode())
	}
	if u.MBR != nil {
		children = append(children, EncodeMBR(*u.MBR))
	}
	if u.GBR != nil {
		children = append(children, EncodeGBR(*u.GBR))
	}
	return &Ie{Type: UpdateQER, Children: children}
}

// RemoveQERValue names the QER to delete by ID.
type RemoveQERValue struct {
	QERID uint32
}

func DecodeRemoveQER(gie *Ie) (RemoveQERValue, error) {
	child := gie.Find(QERID)
	if child == nil {
		return RemoveQERValue{}, &pfcperr.MissingMandatoryIe{IEType: "QER ID", InMessage: "Remove QER"}
	}
	v, err := DecodeQERID(child)
	if err != nil {
		return RemoveQERValue{}, pfcperr.WithPath("Remove QER", err)
	}
	return RemoveQERValue{QERID: v}, nil
}

func (r RemoveQERValue) Encode() *Ie {
	return &Ie{Type: RemoveQER, Children: []*Ie{EncodeQERID(r.QERID)}}
}
