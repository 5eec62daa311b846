package tr104v2

import (
	"encoding/xml"
	"errors"
)

// ErrExclusiveControl is returned when a document configures both
// CallControl and Interwork on one voice service.
var ErrExclusiveControl = errors.New("CallControl and Interwork are mutually exclusive")

// ControlMode identifies which control function a voice service runs.
type ControlMode uint8

// Control modes.
const (
	ControlNone ControlMode = iota
	ControlCallControl
	ControlInterwork
)

var controlModeNames = map[ControlMode]string{
	ControlNone:        "None",
	ControlCallControl: "CallControl",
	ControlInterwork:   "Interwork",
}

func (m ControlMode) String() string {
	if name, ok := controlModeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// Control is the control function of a voice service. It is implemented by
// *CallControl and Interworks only.
type Control interface {
	controlMode() ControlMode
}

// Interworks is the Interwork table of a voice service.
type Interworks []Interwork

func (*CallControl) controlMode() ControlMode { return ControlCallControl }

func (Interworks) controlMode() ControlMode { return ControlInterwork }

// ControlMode returns the control function currently configured.
func (v *VoiceService) ControlMode() ControlMode {
	if v.control == nil {
		return ControlNone
	}
	return v.control.controlMode()
}

// Control returns the configured control function, or nil.
func (v *VoiceService) Control() Control {
	return v.control
}

// CallControl returns the call control object, or nil when the service is
// not a call controlling endpoint.
func (v *VoiceService) CallControl() *CallControl {
	cc, _ := v.control.(*CallControl)
	return cc
}

// Interwork returns the Interwork entries. The result is empty, never nil,
// when the service is not an interworking function.
func (v *VoiceService) Interwork() []Interwork {
	if iw, ok := v.control.(Interworks); ok {
		return iw
	}
	return []Interwork{}
}

// SetCallControl makes the service a call controlling endpoint, discarding
// any Interwork entries. A nil cc clears the control function.
func (v *VoiceService) SetCallControl(cc *CallControl) {
	if cc == nil {
		v.ClearControl()
		return
	}
	v.control = cc
	v.InterworkNumberOfEntries = 0
}

// SetInterwork makes the service an interworking function with the given
// entries, discarding any CallControl. Without entries it behaves like
// ClearControl.
func (v *VoiceService) SetInterwork(entries ...Interwork) {
	if len(entries) == 0 {
		v.ClearControl()
		return
	}
	v.control = Interworks(append([]Interwork{}, entries...))
	v.InterworkNumberOfEntries = uint32(len(entries))
}

// ClearControl removes the control function.
func (v *VoiceService) ClearControl() {
	v.control = nil
	v.InterworkNumberOfEntries = 0
}

// WithCallControl calls SetCallControl and returns v.
func (v *VoiceService) WithCallControl(cc *CallControl) *VoiceService {
	v.SetCallControl(cc)
	return v
}

// WithInterwork appends entries to the Interwork table and returns v. A
// configured CallControl is discarded. Without entries v is left unchanged.
func (v *VoiceService) WithInterwork(entries ...Interwork) *VoiceService {
	if len(entries) == 0 {
		return v
	}
	v.SetInterwork(append(v.Interwork(), entries...)...)
	return v
}

// MarshalXML writes the service with its control function as a CallControl
// element or as repeated Interwork elements.
func (v VoiceService) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type Fields VoiceService
	out := struct {
		Fields
		CallControl *CallControl `xml:"CallControl,omitempty"`
		Interwork   []Interwork  `xml:"Interwork,omitempty"`
	}{Fields: Fields(v)}

	switch c := v.control.(type) {
	case *CallControl:
		out.CallControl = c
	case Interworks:
		out.Interwork = c
	}
	return e.EncodeElement(out, start)
}

// UnmarshalXML reads a service. A document with both CallControl and
// Interwork is rejected with ErrExclusiveControl.
func (v *VoiceService) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type Fields VoiceService
	in := struct {
		Fields
		CallControl *CallControl `xml:"CallControl"`
		Interwork   []Interwork  `xml:"Interwork"`
	}{Fields: Fields(*v)}

	if err := d.DecodeElement(&in, &start); err != nil {
		return err
	}
	if in.CallControl != nil && len(in.Interwork) > 0 {
		return ErrExclusiveControl
	}

	*v = VoiceService(in.Fields)
	switch {
	case in.CallControl != nil:
		v.control = in.CallControl
	case len(in.Interwork) > 0:
		v.control = Interworks(in.Interwork)
	default:
		v.control = nil
	}
	return nil
}
