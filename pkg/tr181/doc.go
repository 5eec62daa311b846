// Package tr181 holds the node types of the TR-181 Issue 2 Device data
// model (Device:2.12): routing, dynamic DNS, DSL channels, periodic
// statistics and LAN hosts.
//
// Generated types live in the *_gen.go files; see defs/tr181 for their
// definitions.
//
// Collections serialize in one of three ways. Most tables repeat their
// entries directly under the parent element. Dynamic DNS host names are
// wrapped:
//
//	<Client>
//	  <Hostnames>
//	    <Hostname><Name>a.example.com</Name></Hostname>
//	  </Hostnames>
//	</Client>
//
// Scalar lists such as SampleSeconds and Values are a single element
// holding a comma-separated string.
package tr181
