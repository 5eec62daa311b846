// Package tr104v2 holds the node types of the TR-104 Issue 2 VoIP data
// model (VoiceService:2.0).
//
// A voice service is either a call controlling endpoint, configured through
// CallControl, or an interworking function between two signaling networks,
// configured through the Interwork table. The two are mutually exclusive; a
// VoiceService holds at most one of them as its Control and switching from
// one to the other discards the previous configuration.
//
//	svc := tr104v2.NewVoiceService()
//	svc.SetCallControl(tr104v2.NewCallControl().
//		WithExtension(*tr104v2.NewExtension().WithExtensionNumber("100")))
//
//	svc.ControlMode() // ControlCallControl
package tr104v2
