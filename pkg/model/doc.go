// Package model implements the metadata core of the TR-069 data model.
//
// # Object Hierarchy
//
// Every Broadband Forum data model (TR-098, TR-104, TR-106, TR-143, TR-181,
// TR-196) is a tree of objects addressed by dotted paths:
//
//	Device.
//	├── Routing.
//	│   └── Router.{i}.
//	│       └── IPv4Forwarding.{i}.
//	└── DynamicDNS.
//	    └── Client.{i}.
//	        └── Hostname.{i}.
//
// A path segment followed by {i} is a multi-instance object (a table); each
// row is addressed by its instance number or, where supported, by its Alias.
//
// # Descriptors
//
// Each object type is described by an ObjectDef holding its path, its
// parameters (ParamDef) and its children (ChildDef). Parameters carry:
//   - Type: the CWMP data type (boolean, unsignedInt, string, ...)
//   - Access: read-only or read-write from the ACS point of view
//   - Notify: the active notification policy
//   - Constraints: range, maximum length, pattern, enumeration
//
// Descriptors are plain data. The generated node types in the tr* packages
// never consult them; validation and inspection layers do.
//
// # Registry
//
// A Registry indexes descriptors by path template so that a concrete
// instance path can be mapped back to its definition.
package model
