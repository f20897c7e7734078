package ie

import "github.com/pfcpcodec/pfcpcodec/pfcperr"

// Grouped IEs: a TLV whose value is itself a flat
// sequence of child TLVs, recursed into by DecodeIe/Encode in tlv.go. Each
// type below extracts its mandatory/optional children by IE type and
// re-assembles them on Encode. Mandatory-child validation happens at decode
// time in the Decode* functions; Encode checks nothing (there is no separate
// flag state machine to validate up front, unlike
// FTEID/FSEID in flagged.go, so a dedicated Builder adds no value here).

// PDIValue is the Packet Detection Information nested inside CreatePDR and
// UpdatePDR: what traffic a PDR matches.
type PDIValue struct {
	SourceInterface InterfaceValue
	FTEID           *FTEIDValue
	NetworkInstance *NetworkInstanceValue
	UEIPAddress     *UEIPAddressValue
	Extra           []*Ie // passthrough for SDF Filter, Application ID, etc.
}

func DecodePDI(gie *Ie) (PDIValue, error) {
	var p PDIValue
	found := false
	for _, c := range gie.Children {
		switch c.Type {
		case SourceInterface:
			v, err := DecodeSourceInterface(c)
			if err != nil {
				return PDIValue{}, pfcperr.WithPath("PDI", err)
			}
			p.SourceInterface = v
			found = true
		case FTEID:
			v, err := DecodeFTEID(c)
			if err != nil {
				return PDIValue{}, pfcperr.WithPath("PDI", err)
			}
			p.FTEID = &v
		case NetworkInstance:
			v, err := DecodeNetworkInstance(c)
			if err != nil {
				return PDIValue{}, pfcperr.WithPath("PDI", err)
			}
			p.NetworkInstance = &v
		case UEIPAddress:
			v, err := DecodeUEIPAddress(c)
			if err != nil {
				return PDIValue{}, pfcperr.WithPath("PDI", err)
			}
			p.UEIPAddress = &v
		default:
			p.Extra = append(p.Extra, c)
		}
	}
	if !found {
		return PDIValue{}, &pfcperr.MissingMandatoryIe{IEType: "Source Interface", InMessage: "PDI"}
	}
	return p, nil
}

func (p PDIValue) Encode() (*Ie, error) {
	children := []*Ie{p.SourceInterface.EncodeSource()}
	if p.FTEID != nil {
		children = append(children, p.FTEID.Encode())
	}
	if p.NetworkInstance != nil {
		ni, err := p.NetworkInstance.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, ni)
	}
	if p.UEIPAddress != nil {
		children = append(children, p.UEIPAddress.Encode())
	}
	children = append(children, p.Extra...)
	return &Ie{Type: PDI, Children: children}, nil
}

// CreatePDRValue installs one Packet Detection Rule.
type CreatePDRValue struct {
	PDRID              uint16
	Precedence         uint32
	PDI                PDIValue
	OuterHeaderRemoval *uint8
	FARID              *uint32
	URRIDs             []uint32
	QERIDs             []uint32
}

func DecodeCreatePDR(gie *Ie) (CreatePDRValue, error) {
	var c CreatePDRValue
	havePDRID, havePrecedence, havePDI := false, false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case PDRID:
			v, err := DecodePDRID(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.PDRID = v
			havePDRID = true
		case Precedence:
			v, err := DecodePrecedence(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.Precedence = v
			havePrecedence = true
		case PDI:
			v, err := DecodePDI(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.PDI = v
			havePDI = true
		case OuterHeaderRemoval:
			v, err := DecodeOuterHeaderRemoval(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.OuterHeaderRemoval = &v
		case FARID:
			v, err := DecodeFARID(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.FARID = &v
		case URRID:
			v, err := DecodeURRID(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.URRIDs = append(c.URRIDs, v)
		case QERID:
			v, err := DecodeQERID(ch)
			if err != nil {
				return CreatePDRValue{}, pfcperr.WithPath("Create PDR", err)
			}
			c.QERIDs = append(c.QERIDs, v)
		}
	}
	if !havePDRID {
		return CreatePDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDR ID", InMessage: "Create PDR"}
	}
	if !havePrecedence {
		return CreatePDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "Precedence", InMessage: "Create PDR"}
	}
	if !havePDI {
		return CreatePDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDI", InMessage: "Create PDR"}
	}
	return c, nil
}

func (c CreatePDRValue) Encode() (*Ie, error) {
	pdi, err := c.PDI.Encode()
	if err != nil {
		return nil, err
	}
	children := []*Ie{EncodePDRID(c.PDRID), EncodePrecedence(c.Precedence), pdi}
	if c.OuterHeaderRemoval != nil {
		children = append(children, EncodeOuterHeaderRemoval(*c.OuterHeaderRemoval))
	}
	if c.FARID != nil {
		children = append(children, EncodeFARID(*c.FARID))
	}
	for _, u := range c.URRIDs {
		children = append(children, EncodeURRID(u))
	}
	for _, q := range c.QERIDs {
		children = append(children, EncodeQERID(q))
	}
	return &Ie{Type: CreatePDR, Children: children}, nil
}

// UpdatePDRValue modifies an existing PDR; all fields besides PDRID are
// optional (only the ones present are changed).
type UpdatePDRValue struct {
	PDRID              uint16
	Precedence         *uint32
	PDI                *PDIValue
	OuterHeaderRemoval *uint8
	FARID              *uint32
}

func DecodeUpdatePDR(gie *Ie) (UpdatePDRValue, error) {
	var u UpdatePDRValue
	havePDRID := false
	for _, ch := range gie.Children {
		switch ch.Type {
		case PDRID:
			v, err := DecodePDRID(ch)
			if err != nil {
				return UpdatePDRValue{}, pfcperr.WithPath("Update PDR", err)
			}
			u.PDRID = v
			havePDRID = true
		case Precedence:
			v, err := DecodePrecedence(ch)
			if err != nil {
				return UpdatePDRValue{}, pfcperr.WithPath("Update PDR", err)
			}
			u.Precedence = &v
		case PDI:
			v, err := DecodePDI(ch)
			if err != nil {
				return UpdatePDRValue{}, pfcperr.WithPath("Update PDR", err)
			}
			u.PDI = &v
		case OuterHeaderRemoval:
			v, err := DecodeOuterHeaderRemoval(ch)
			if err != nil {
				return UpdatePDRValue{}, pfcperr.WithPath("Update PDR", err)
			}
			u.OuterHeaderRemoval = &v
		case FARID:
			v, err := DecodeFARID(ch)
			if err != nil {
				return UpdatePDRValue{}, pfcperr.WithPath("Update PDR", err)
			}
			u.FARID = &v
		}
	}
	if !havePDRID {
		return UpdatePDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDR ID", InMessage: "Update PDR"}
	}
	return u, nil
}

func (u UpdatePDRValue) Encode() (*Ie, error) {
	children := []*Ie{EncodePDRID(u.PDRID)}
	if u.Precedence != nil {
		children = append(children, EncodePrecedence(*u.Precedence))
	}
	if u.PDI != nil {
		pdi, err := u.PDI.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, pdi)
	}
	if u.OuterHeaderRemoval != nil {
		children = append(children, EncodeOuterHeaderRemoval(*u.OuterHeaderRemoval))
	}
	if u.FARID != nil {
		children = append(children, EncodeFARID(*u.FARID))
	}
	return &Ie{Type: UpdatePDR, Children: children}, nil
}

// RemovePDRValue names the PDR to delete by ID.
type RemovePDRValue struct {
	PDRID uint16
}

func DecodeRemovePDR(gie *Ie) (RemovePDRValue, error) {
	child := gie.Find(PDRID)
	if child == nil {
		return RemovePDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDR ID", InMessage: "Remove PDR"}
	}
	v, err := DecodePDRID(child)
	if err != nil {
		return RemovePDRValue{}, pfcperr.WithPath("Remove PDR", err)
	}
	return RemovePDRValue{PDRID: v}, nil
}

func (r RemovePDRValue) Encode() *Ie {
	return &Ie{Type: RemovePDR, Children: []*Ie{EncodePDRID(r.PDRID)}}
}

// CreatedPDRValue is returned by the UPF in a Session Establishment/
// Modification Response to report the F-TEID it allocated for a PDR.
type CreatedPDRValue struct {
	PDRID uint16
	FTEID *FTEIDValue
}

func DecodeCreatedPDR(gie *Ie) (CreatedPDRValue, error) {
	var c CreatedPDRValue
	havePDRID := false
	for _, ch := range gie.Children {
		switch ch.Type {
		case PDRID:
			v, err := DecodePDRID(ch)
			if err != nil {
				return CreatedPDRValue{}, pfcperr.WithPath("Created PDR", err)
			}
			c.PDRID = v
			havePDRID = true
		case FTEID:
			v, err := DecodeFTEID(ch)
			if err != nil {
				return CreatedPDRValue{}, pfcperr.WithPath("Created PDR", err)
			}
			c.FTEID = &v
		}
	}
	if !havePDRID {
		return CreatedPDRValue{}, &pfcperr.MissingMandatoryIe{IEType: "PDR ID", InMessage: "Created PDR"}
	}
	return c, nil
}

func (c CreatedPDRValue) Encode() *Ie {
	children := []*Ie{EncodePDRID(c.PDRID)}
	if c.FTEID != nil {
		children = append(children, c.FTEID.Encode())
	}
	return &Ie{Type: CreatedPDR, Children: children}
}
