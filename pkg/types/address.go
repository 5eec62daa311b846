package types

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Address and alias errors.
var (
	ErrInvalidIPAddress  = errors.New("invalid IP address")
	ErrInvalidMACAddress = errors.New("invalid MAC address")
	ErrInvalidAlias      = errors.New("invalid alias")
)

// Size limits of the address types.
const (
	// IPAddressMaxLength fits the longest IPv6 text form.
	IPAddressMaxLength = 45

	// MACAddressMaxLength is six colon-separated octets.
	MACAddressMaxLength = 17

	// AliasMaxLength is the maximum length of an Alias.
	AliasMaxLength = 64

	// CPEAliasPrefix is reserved for aliases assigned by the CPE.
	CPEAliasPrefix = "cpe-"
)

// IPAddress is an IPv4 or IPv6 address in text form. An empty value means
// the address is not set.
type IPAddress string

func (a IPAddress) String() string { return string(a) }

// Validate reports whether the address parses. Empty is valid.
func (a IPAddress) Validate() error {
	if a == "" {
		return nil
	}
	if _, err := netip.ParseAddr(string(a)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidIPAddress, string(a))
	}
	return nil
}

// IPv4Address is an IPv4 address or subnet mask in dotted-decimal form.
type IPv4Address string

func (a IPv4Address) String() string { return string(a) }

// Validate reports whether the address is a dotted-decimal IPv4 address.
// Empty is valid.
func (a IPv4Address) Validate() error {
	if a == "" {
		return nil
	}
	ip, err := netip.ParseAddr(string(a))
	if err != nil || !ip.Is4() {
		return fmt.Errorf("%w: %q is not IPv4", ErrInvalidIPAddress, string(a))
	}
	return nil
}

// IsUnspecified returns true for 0.0.0.0.
func (a IPv4Address) IsUnspecified() bool {
	return a == "0.0.0.0"
}

// IPv6Address is an IPv6 address in text form.
type IPv6Address string

func (a IPv6Address) String() string { return string(a) }

// Validate reports whether the address is an IPv6 address. Empty is valid.
func (a IPv6Address) Validate() error {
	if a == "" {
		return nil
	}
	ip, err := netip.ParseAddr(string(a))
	if err != nil || !ip.Is6() {
		return fmt.Errorf("%w: %q is not IPv6", ErrInvalidIPAddress, string(a))
	}
	return nil
}

var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// MACAddress is an IEEE 802 MAC address, colon-separated: "00:1A:2B:3C:4D:5E".
type MACAddress string

func (m MACAddress) String() string { return string(m) }

// Validate reports whether the value is six colon-separated hex octets.
// Empty is valid.
func (m MACAddress) Validate() error {
	if m == "" {
		return nil
	}
	if !macPattern.MatchString(string(m)) {
		return fmt.Errorf("%w: %q", ErrInvalidMACAddress, string(m))
	}
	return nil
}

// Alias is a stable, human-assignable name for a table entry, distinct from
// its instance number. Aliases set by the ACS start with a letter; aliases
// assigned by the CPE start with "cpe-".
type Alias string

func (a Alias) String() string { return string(a) }

// Validate checks length and that the alias starts with a letter.
// Empty is valid.
func (a Alias) Validate() error {
	if a == "" {
		return nil
	}
	if n := utf8.RuneCountInString(string(a)); n > AliasMaxLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrInvalidAlias, n, AliasMaxLength)
	}
	r, _ := utf8.DecodeRuneInString(string(a))
	if !unicode.IsLetter(r) {
		return fmt.Errorf("%w: %q must start with a letter", ErrInvalidAlias, string(a))
	}
	return nil
}

// IsCPEAssigned returns true if the alias carries the reserved CPE prefix.
func (a Alias) IsCPEAssigned() bool {
	return strings.HasPrefix(string(a), CPEAliasPrefix)
}

// NewCPEAlias returns a unique alias as a CPE assigns it when the ACS did not
// provide one.
func NewCPEAlias() Alias {
	return Alias(CPEAliasPrefix + uuid.NewString())
}
