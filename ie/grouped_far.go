package ie

import "github.com/pfcpcodec/pfcpcodec/pfcperr"

// ForwardingParametersValue controls how a FAR forwards matched traffic.
type ForwardingParametersValue struct {
	DestinationInterface InterfaceValue
	NetworkInstance       *NetworkInstanceValue
	OuterHeaderCreation   *OuterHeaderCreationValue
}

func DecodeForwardingParameters(gie *Ie) (ForwardingParametersValue, error) {
	var f ForwardingParametersValue
	found := false
	for _, c := range gie.Children {
		switch c.Type {
		case DestinationInterface:
			v, err := DecodeDestinationInterface(c)
			if err != nil {
				return ForwardingParametersValue{}, pfcperr.WithPath("Forwarding Parameters", err)
			}
			f.DestinationInterface = v
			found = true
		case NetworkInstance:
			v, err := DecodeNetworkInstance(c)
			if err != nil {
				return ForwardingParametersValue{}, pfcperr.WithPath("Forwarding Parameters", err)
			}
			f.NetworkInstance = &v
		case OuterHeaderCreation:
			v, err := DecodeOuterHeaderCreation(c)
			if err != nil {
				return ForwardingParametersValue{}, pfcperr.WithPath("Forwarding Parameters", err)
			}
			f.OuterHeaderCreation = &v
		}
	}
	if !found {
		return ForwardingParametersValue{}, &pfcperr.MissingMandatoryIe{IEType: "Destination Interface", InMessage: "Forwarding Parameters"}
	}
	return f, nil
}

func (f ForwardingParametersValue) Encode() (*Ie, error) {
	children := []*Ie{f.DestinationInterface.EncodeDestination()}
	if f.NetworkInstance != nil {
		ni, err := f.NetworkInstance.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, ni)
	}
	if f.OuterHeaderCreation != nil {
		children = append(children, f.OuterHeaderCreation.Encode())
	}
	return &Ie{Type: ForwardingParameters, Children: children}, nil
}

// DuplicatingParametersValue directs a copy of matched traffic to a second
// destination (lawful-intercept style mirroring).
type DuplicatingParametersValue struct {
	DestinationInterface InterfaceValue
	OuterHeaderCreation  *OuterHeaderCreationValue
}

func DecodeDuplicatingParameters(gie *Ie) (DuplicatingParametersValue, error) {
	var d DuplicatingParametersValue
	found := false
	for _, c := range gie.Children {
		switch c.Type {
		case DestinationInterface:
			v, err := DecodeDestinationInterface(c)
			if err != nil {
				return DuplicatingParametersValue{}, pfcperr.WithPath("Duplicating Parameters", err)
			}
			d.DestinationInterface = v
			found = true
		case OuterHeaderCreation:
			v, err := DecodeOuterHeaderCreation(c)
			if err != nil {
				return DuplicatingParametersValue{}, pfcperr.WithPath("Duplicating Parameters", err)
			}
			d.OuterHeaderCreation = &v
		}
	}
	if !found {
		return DuplicatingParametersValue{}, &pfcperr.MissingMandatoryIe{IEType: "Destination Interface", InMessage: "Duplicating Parameters"}
	}
	return d, nil
}

func (d DuplicatingParametersValue) Encode() *Ie {
	children := []*Ie{d.DestinationInterface.EncodeDestination()}
	if d.OuterHeaderCreation != nil {
		children = append(children, d.OuterHeaderCreation.Encode())
	}
	return &Ie{Type: DuplicatingParameters, Children: children}
}

// CreateFARValue installs one Forwarding Action Rule.
type CreateFARValue struct {
	FARID                uint32
	ApplyAction          ApplyActionFlags
	ForwardingParameters *ForwardingParametersValue
	DuplicatingParameters *DuplicatingParametersValue
}

func DecodeCreateFAR(gie *Ie) (CreateFARValue, error) {
	var c CreateFARValue
	haveFARID, haveApplyAction := false, false
	for _, ch := range gie.Children {
		switch ch.Type {
		case FARID:
			v, err := DecodeFARID(ch)
			if err != nil {
				return CreateFARValue{}, pfcperr.WithPath("Create FAR", err)
			}
			c.FARID = v
			haveFARID = true
		case ApplyAction:
			v, err := DecodeApplyAction(ch)
			if err != nil {
				return CreateFARValue{}, pfcperr.WithPath("Create FAR", err)
			}
			c.ApplyAction = v
			haveApplyAction = true
		case ForwardingParameters:
			v, err := DecodeForwardingParameters(ch)
			if err != nil {
				return CreateFARValue{}, pfcperr.WithPath("Create FAR", err)
			}
			c.ForwardingParameters = &v
		case DuplicatingParameters:
			v, err := DecodeDuplicatingParameters(ch)
			if err != nil {
				return CreateFARValue{}, pfcperr.WithPath("Create FAR", err)
			}
			c.DuplicatingParameters = &v
		}
	}
	if !haveFARID {
		return CreateFARValue{}, &pfcperr.MissingMandatoryIe{IEType: "FAR ID", InMessage: "Create FAR"}
	}
	if !haveApplyAction {
		return CreateFARValue{}, &pfcperr.MissingMandatoryIe{IEType: "Apply Action", InMessage: "Create FAR"}
	}
	return c, nil
}

func (c CreateFARValue) Encode() (*Ie, error) {
	children := []*Ie{EncodeFARID(c.FARID), c.ApplyAction.Encode()}
	if c.ForwardingParameters != nil {
		fp, err := c.ForwardingParameters.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, fp)
	}
	if c.DuplicatingParameters != nil {
		children = append(children, c.DuplicatingParameters.Encode())
	}
	return &Ie{Type: CreateFAR, Children: children}, nil
}

// UpdateForwardingParametersValue carries only the forwarding fields being
// changed; all are optional.
type UpdateForwardingParametersValue struct {
	DestinationInterface *InterfaceValue
	NetworkInstance       *NetworkInstanceValue
	OuterHeaderCreation   *OuterHeaderCreationValue
}

func DecodeUpdateForwardingParameters(gie *Ie) (UpdateForwardingParametersValue, error) {
	var u UpdateForwardingParametersValue
	for _, c := range gie.Children {
		switch c.Type {
		case DestinationInterface:
			v, err := DecodeDestinationInterface(c)
			if err != nil {
				return UpdateForwardingParametersValue{}, pfcperr.WithPath("Update Forwarding Parameters", err)
			}
			u.DestinationInterface = &v
		case NetworkInstance:
			v, err := DecodeNetworkInstance(c)
			if err != nil {
				return UpdateForwardingParametersValue{}, pfcperr.WithPath("Update Forwarding Parameters", err)
			}
			u.NetworkInstance = &v
		case OuterHeaderCreation:
			v, err := DecodeOuterHeaderCreation(c)
			if err != nil {
				return UpdateForwardingParametersValue{}, pfcperr.WithPath("Update Forwarding Parameters", err)
			}
			u.OuterHeaderCreation = &v
		}
	}
	return u, nil
}

func (u UpdateForwardingParametersValue) Encode() (*Ie, error) {
	var children []*Ie
	if u.DestinationInterface != nil {
		children = append(children, u.DestinationInterface.EncodeDestination())
	}
	if u.NetworkInstance != nil {
		ni, err := u.NetworkInstance.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, ni)
	}
	if u.OuterHeaderCreation != nil {
		children = append(children, u.OuterHeaderCreation.Encode())
	}
	return &Ie{Type: UpdateForwardingParameters, Children: children}, nil
}

// UpdateFARValue modifies an existing FAR; FARID is the only mandatory
// field.
type UpdateFARValue struct {
	FARID                      uint32
	ApplyAction                *ApplyActionFlags
	UpdateForwardingParameters *UpdateForwardingParametersValue
}

func DecodeUpdateFAR(gie *Ie) (UpdateFARValue, error) {
	var u UpdateFARValue
	haveFARID := false
	for _, ch := range gie.Children {
		switch ch.Type {
		case FARID:
			v, err := DecodeFARID(ch)
			if err != nil {
				return UpdateFARValue{}, pfcperr.WithPath("Update FAR", err)
			}
			u.FARID = v
			haveFARID = true
		case ApplyAction:
			v, err := DecodeApplyAction(ch)
			if err != nil {
				return UpdateFARValue{}, pfcperr.WithPath("Update FAR", err)
			}
			u.ApplyAction = &v
		case UpdateForwardingParameters:
			v, err := DecodeUpdateForwardingParameters(ch)
			if err != nil {
				return UpdateFARValue{}, pfcperr.WithPath("Update FAR", err)
			}
			u.UpdateForwardingParameters = &v
		}
	}
	if !haveFARID {
		return UpdateFARValue{}, &pfcperr.MissingMandatoryIe{IEType: "FAR ID", InMessage: "Update FAR"}
	}
	return u, nil
}

func (u UpdateFARValue) Encode() (*Ie, error) {
	children := []*Ie{EncodeFARID(u.FARID)}
	if u.ApplyAction != nil {
		children = append(children, u.ApplyAction.Encode())
	}
	if u.UpdateForwardingParameters != nil {
		ufp, err := u.UpdateForwardingParameters.Encode()
		if err != nil {
			return nil, err
		}
		children = append(children, ufp)
	}
	return &Ie{Type: UpdateFAR, Children: children}, nil
}

// RemoveFARValue names the FAR to delete by ID.
type RemoveFARValue struct {
	FARID uint32
}

func DecodeRemoveFAR(gie *Ie) (RemoveFARValue, error) {
	child := gie.Find(FARID)
	if child == nil {
		return RemoveFARValue{}, &pfcperr.MissingMandatoryIe{IEType: "FAR ID", InMessage: "Remove FAR"}
	}
	v, err := DecodeFARID(child)
	if err != nil {
		return RemoveFARValue{}, pfcperr.WithPath("Remove FAR", err)
	}
	return RemoveFARValue{FARID: v}, nil
}

func (r RemoveFARValue) Encode() *Ie {
	return &Ie{Type: RemoveFAR, Children: []*Ie{EncodeFARID(r.FARID)}}
}
