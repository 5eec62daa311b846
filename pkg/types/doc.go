// Package types defines the shared primitive data types of the TR-069 data
// models.
//
// Each type is a distinct named wrapper around a string, integer or byte
// slice, so that objects from different standards share one representation
// of an IP address, a MAC address, an Alias or a statistics counter.
//
// Assignment never validates. Types with a syntactic constraint expose a
// Validate method, which the validation layer calls; everything else is
// purely nominal.
//
// List, time and binary types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, which is how they appear as a single XML element
// holding a comma-separated, RFC 3339 or encoded string.
package types
