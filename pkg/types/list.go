package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Comma-separated list types. A list is carried as one XML element holding
// the joined items: <SampleSeconds>10,20,30</SampleSeconds>. Decoding an
// empty element yields an empty, non-nil list.

// StringList is a list of strings.
type StringList []string

func (l StringList) String() string { return strings.Join(l, ",") }

// MarshalText joins the items with commas.
func (l StringList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText splits on commas and trims surrounding space.
func (l *StringList) UnmarshalText(b []byte) error {
	items := splitList(string(b))
	*l = make(StringList, len(items))
	copy(*l, items)
	return nil
}

// UnsignedIntList is a list of unsignedInt values.
type UnsignedIntList []uint32

func (l UnsignedIntList) String() string {
	items := make([]string, len(l))
	for i, v := range l {
		items[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(items, ",")
}

// MarshalText joins the items with commas.
func (l UnsignedIntList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a comma-separated list of unsigned integers.
func (l *UnsignedIntList) UnmarshalText(b []byte) error {
	items := splitList(string(b))
	out := make(UnsignedIntList, len(items))
	for i, s := range items {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid unsignedInt list item %q", s)
		}
		out[i] = uint32(v)
	}
	*l = out
	return nil
}

// IntList is a list of int values.
type IntList []int32

func (l IntList) String() string {
	items := make([]string, len(l))
	for i, v := range l {
		items[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(items, ",")
}

// MarshalText joins the items with commas.
func (l IntList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a comma-separated list of integers.
func (l *IntList) UnmarshalText(b []byte) error {
	items := splitList(string(b))
	out := make(IntList, len(items))
	for i, s := range items {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid int list item %q", s)
		}
		out[i] = int32(v)
	}
	*l = out
	return nil
}

// IPAddressList is a list of IP addresses, e.g. DNS servers.
type IPAddressList []IPAddress

func (l IPAddressList) String() string {
	items := make([]string, len(l))
	for i, v := range l {
		items[i] = string(v)
	}
	return strings.Join(items, ",")
}

// MarshalText joins the items with commas.
func (l IPAddressList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText splits on commas. Items are not validated.
func (l *IPAddressList) UnmarshalText(b []byte) error {
	items := splitList(string(b))
	out := make(IPAddressList, len(items))
	for i, s := range items {
		out[i] = IPAddress(s)
	}
	*l = out
	return nil
}

// Validate checks every address in the list.
func (l IPAddressList) Validate() error {
	for _, a := range l {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
