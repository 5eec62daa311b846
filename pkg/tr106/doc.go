// Package tr106 holds the common device objects of the TR-106 data model
// template (Device:1.4): device information, the management server and the
// gateway information.
package tr106
