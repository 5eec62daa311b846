package model

import (
	"fmt"
	"strings"
)

// DataType represents the CWMP base type of a parameter value.
type DataType uint8

const (
	TypeUnknown DataType = iota
	TypeBoolean
	TypeInt
	TypeUnsignedInt
	TypeLong
	TypeUnsignedLong
	TypeString
	TypeDateTime
	TypeBase64
	TypeHexBinary
)

var dataTypeNames = []string{
	"unknown", "boolean", "int", "unsignedInt", "long", "unsignedLong",
	"string", "dateTime", "base64", "hexBinary",
}

// String returns the data type name as used on the wire (xsd type name).
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// IsNumeric returns true for the integer types.
func (d DataType) IsNumeric() bool {
	return d >= TypeInt && d <= TypeUnsignedLong
}

// ParseDataType parses an xsd type name.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames[1:] {
		if name == s {
			return DataType(i + 1), nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown data type %q", s)
}

// bits returns the width of an integer type and whether it is signed.
func (d DataType) bits() (int, bool) {
	switch d {
	case TypeInt:
		return 32, true
	case TypeUnsignedInt:
		return 32, false
	case TypeLong:
		return 64, true
	case TypeUnsignedLong:
		return 64, false
	default:
		return 0, false
	}
}

// Standard identifies the Broadband Forum technical report an object
// belongs to.
type Standard string

const (
	StandardTR098 Standard = "TR-098"
	StandardTR104 Standard = "TR-104"
	StandardTR106 Standard = "TR-106"
	StandardTR143 Standard = "TR-143"
	StandardTR181 Standard = "TR-181"
	StandardTR196 Standard = "TR-196"
)

// Standards lists every supported technical report in document order.
func Standards() []Standard {
	return []Standard{
		StandardTR098, StandardTR104, StandardTR106,
		StandardTR143, StandardTR181, StandardTR196,
	}
}

// ParseStandard accepts "TR-181", "tr181" and "181".
func ParseStandard(s string) (Standard, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.TrimPrefix(strings.TrimPrefix(norm, "TR-"), "TR")
	for _, std := range Standards() {
		if strings.TrimPrefix(string(std), "TR-") == norm {
			return std, nil
		}
	}
	return "", fmt.Errorf("unknown standard %q", s)
}

// CollectionStyle describes how a collection is laid out in XML.
type CollectionStyle uint8

const (
	// StyleRepeated serializes each entry as a sibling element with no
	// wrapper: <Forwarding/><Forwarding/>.
	StyleRepeated CollectionStyle = iota

	// StyleWrapped serializes entries inside a wrapper element:
	// <Hostnames><Hostname/><Hostname/></Hostnames>.
	StyleWrapped

	// StyleCommaList serializes a scalar list as one element holding a
	// comma-separated string: <SampleSeconds>10,20,30</SampleSeconds>.
	StyleCommaList
)

var styleNames = []string{"repeated", "wrapped", "commaList"}

// String returns the style name.
func (s CollectionStyle) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseCollectionStyle parses a style name. An empty string is repeated.
func ParseCollectionStyle(s string) (CollectionStyle, error) {
	if s == "" {
		return StyleRepeated, nil
	}
	for i, name := range styleNames {
		if name == s {
			return CollectionStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown collection style %q", s)
}
