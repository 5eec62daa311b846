package model

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cwmp-go/tr069/pkg/types"
)

// Parameter errors.
var (
	ErrParamNotFound     = errors.New("parameter not found")
	ErrParamNotWritable  = errors.New("parameter is not writable")
	ErrParamValueType    = errors.New("invalid value for parameter type")
	ErrParamOutOfRange   = errors.New("value out of range")
	ErrParamTooLong      = errors.New("value exceeds maximum length")
	ErrParamPattern      = errors.New("value does not match pattern")
	ErrParamEnumeration  = errors.New("value not in enumeration")
	ErrParamPrecondition = errors.New("write precondition not met")
)

// ParamDef describes a parameter of an object.
type ParamDef struct {
	// Name is the parameter name, which is also its XML element name.
	Name string

	// Field is the Go struct field holding the value.
	Field string

	// Type is the CWMP base type. For lists it is the item type.
	Type DataType

	// TypeRef names the shared data type (e.g. "IPAddress", "Alias"),
	// empty for plain base types.
	TypeRef string

	// List marks a comma-separated list of Type values.
	List bool

	// ListMaxLength bounds the length of the joined list string (0 = none).
	ListMaxLength int

	// Access defines what the ACS may do with the value.
	Access Access

	// Notify is the active notification policy.
	Notify Notify

	// MinValue is the minimum allowed value (numeric types), nil if none.
	MinValue *int64

	// MaxValue is the maximum allowed value (numeric types), nil if none.
	MaxValue *int64

	// MaxLength bounds string length in characters, or binary length in
	// bytes (0 = none).
	MaxLength int

	// Pattern is a regular expression the whole value must match.
	Pattern string

	// Enumeration lists the legal string values.
	Enumeration []string

	// Default is the value applied when the object is created.
	Default any

	// Hidden parameters always read back as an empty string (passwords).
	Hidden bool

	// WritableIf names a sibling boolean parameter that must be true for
	// the ACS to write this one.
	WritableIf string

	// Description is a short human-readable description.
	Description string
}

// Int64 returns a pointer to v, for use in MinValue and MaxValue.
func Int64(v int64) *int64 { return &v }

// HasRange returns true if a numeric bound is set.
func (p *ParamDef) HasRange() bool {
	return p.MinValue != nil || p.MaxValue != nil
}

// CheckValue validates a value in CWMP string form against the definition:
// type syntax, range, length, enumeration and pattern. String parameters
// with a TypeRef also get the syntax check of that type. Access is not
// checked.
func (p *ParamDef) CheckValue(text string) error {
	if p.List {
		if p.ListMaxLength > 0 && utf8.RuneCountInString(text) > p.ListMaxLength {
			return fmt.Errorf("%w: %s list is %d characters, max %d",
				ErrParamTooLong, p.Name, utf8.RuneCountInString(text), p.ListMaxLength)
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}
		for _, item := range strings.Split(text, ",") {
			if err := p.checkScalar(strings.TrimSpace(item)); err != nil {
				return err
			}
		}
		return nil
	}
	return p.checkScalar(text)
}

func (p *ParamDef) checkScalar(text string) error {
	switch p.Type {
	case TypeBoolean:
		if _, err := ParseBool(text); err != nil {
			return fmt.Errorf("%w: %s expects boolean, got %q", ErrParamValueType, p.Name, text)
		}
	case TypeInt, TypeUnsignedInt, TypeLong, TypeUnsignedLong:
		return p.checkInteger(text)
	case TypeDateTime:
		if text == "" {
			return nil
		}
		if _, err := time.Parse(time.RFC3339Nano, text); err != nil {
			if _, err := time.Parse("2006-01-02T15:04:05", text); err != nil {
				return fmt.Errorf("%w: %s expects dateTime, got %q", ErrParamValueType, p.Name, text)
			}
		}
	case TypeHexBinary:
		b, err := hex.DecodeString(text)
		if err != nil {
			return fmt.Errorf("%w: %s expects hexBinary", ErrParamValueType, p.Name)
		}
		return p.checkLength(len(b))
	case TypeBase64:
		b, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return fmt.Errorf("%w: %s expects base64", ErrParamValueType, p.Name)
		}
		return p.checkLength(len(b))
	default:
		if err := p.checkLength(utf8.RuneCountInString(text)); err != nil {
			return err
		}
		if err := p.checkEnumeration(text); err != nil {
			return err
		}
		if err := p.checkPattern(text); err != nil {
			return err
		}
		return p.checkTypeRef(text)
	}
	return nil
}

// checkTypeRef checks the syntax of the shared string types. List items
// arrive one at a time.
func (p *ParamDef) checkTypeRef(text string) error {
	var err error
	switch p.TypeRef {
	case "IPAddress":
		err = types.IPAddress(text).Validate()
	case "IPv4Address":
		err = types.IPv4Address(text).Validate()
	case "IPv6Address":
		err = types.IPv6Address(text).Validate()
	case "MACAddress":
		err = types.MACAddress(text).Validate()
	case "Alias":
		err = types.Alias(text).Validate()
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParamValueType, p.Name, err)
	}
	return nil
}

func (p *ParamDef) checkInteger(text string) error {
	bits, signed := p.Type.bits()
	var v int64
	if signed {
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, bits)
		if err != nil {
			return fmt.Errorf("%w: %s expects %s, got %q", ErrParamValueType, p.Name, p.Type, text)
		}
		v = n
	} else {
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, bits)
		if err != nil {
			return fmt.Errorf("%w: %s expects %s, got %q", ErrParamValueType, p.Name, p.Type, text)
		}
		// Bounds above MaxInt64 are not representable in the descriptor.
		if n > 1<<63-1 {
			return nil
		}
		v = int64(n)
	}
	return p.CheckRange(v)
}

// CheckRange validates a numeric value against MinValue and MaxValue.
func (p *ParamDef) CheckRange(v int64) error {
	if p.MinValue != nil && v < *p.MinValue {
		return fmt.Errorf("%w: %s %d < %d", ErrParamOutOfRange, p.Name, v, *p.MinValue)
	}
	if p.MaxValue != nil && v > *p.MaxValue {
		return fmt.Errorf("%w: %s %d > %d", ErrParamOutOfRange, p.Name, v, *p.MaxValue)
	}
	return nil
}

func (p *ParamDef) checkLength(n int) error {
	if p.MaxLength > 0 && n > p.MaxLength {
		return fmt.Errorf("%w: %s is %d long, max %d", ErrParamTooLong, p.Name, n, p.MaxLength)
	}
	return nil
}

func (p *ParamDef) checkEnumeration(text string) error {
	if len(p.Enumeration) == 0 || text == "" {
		return nil
	}
	for _, e := range p.Enumeration {
		if e == text {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q not one of %s",
		ErrParamEnumeration, p.Name, text, strings.Join(p.Enumeration, ", "))
}

func (p *ParamDef) checkPattern(text string) error {
	if p.Pattern == "" || text == "" {
		return nil
	}
	re, err := compilePattern(p.Pattern)
	if err != nil {
		return err
	}
	if !re.MatchString(text) {
		return fmt.Errorf("%w: %s %q does not match %s", ErrParamPattern, p.Name, text, p.Pattern)
	}
	return nil
}

// MatchPattern reports whether text satisfies the parameter pattern.
// Parameters without a pattern match everything.
func (p *ParamDef) MatchPattern(text string) bool {
	return p.checkPattern(text) == nil
}

// patterns caches compiled patterns; definitions share a small set.
var patterns sync.Map

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	patterns.Store(pattern, re)
	return re, nil
}

// ParseBool parses a CWMP boolean. The xsd:boolean lexical forms "true",
// "false", "1" and "0" are accepted.
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrParamValueType, s)
	}
}
