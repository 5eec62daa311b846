// Package tr104 holds the node types of the TR-104 Issue 1 VoIP data model
// (VoiceService:1.0), rooted at InternetGatewayDevice.Services.VoiceService
// or Device.Services.VoiceService.
//
// A voice service groups its lines into voice profiles; each profile owns its
// SIP, RTP and fax settings:
//
//	VoiceService.{i}.
//	├── Capabilities.
//	│   └── Codecs.{i}.
//	└── VoiceProfile.{i}.
//	    ├── SIP.
//	    ├── RTP.
//	    │   ├── RTCP.
//	    │   └── Redundancy.
//	    ├── FaxT38.
//	    └── Line.{i}.
//	        ├── SIP.
//	        └── Stats.
//
// For the Issue 2 model see package tr104v2.
package tr104
