// Package inspect provides path handling and object tree inspection.
//
// The inspect package offers a unified interface for:
//   - Parsing CWMP path expressions (e.g., "Device.DynamicDNS.Client.1.Enable")
//   - Converting between concrete paths and {i} templates
//   - Reading and writing parameters of an object tree
//   - Formatting definitions and values for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath       = errors.New("empty path")
	ErrInvalidPath     = errors.New("invalid path format")
	ErrInvalidInstance = errors.New("invalid instance reference")
)

// Placeholder is the instance placeholder of path templates.
const Placeholder = "{i}"

// SegmentKind classifies a path segment.
type SegmentKind uint8

const (
	// SegmentName is an object or parameter name.
	SegmentName SegmentKind = iota

	// SegmentInstance is a table instance number.
	SegmentInstance

	// SegmentPlaceholder is the {i} template placeholder.
	SegmentPlaceholder

	// SegmentAlias is an instance alias reference: [office].
	SegmentAlias
)

// Segment is one dot-separated element of a path.
type Segment struct {
	Kind SegmentKind

	// Name is the element name or the alias (without brackets).
	Name string

	// Instance is the instance number of SegmentInstance.
	Instance uint32
}

// IsInstanceRef returns true for instance numbers, placeholders and aliases.
func (s Segment) IsInstanceRef() bool {
	return s.Kind != SegmentName
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentInstance:
		return strconv.FormatUint(uint64(s.Instance), 10)
	case SegmentPlaceholder:
		return Placeholder
	case SegmentAlias:
		return "[" + s.Name + "]"
	default:
		return s.Name
	}
}

// Path represents a parsed CWMP path.
// Object paths end with "."; parameter paths end with the parameter name.
type Path struct {
	Segments []Segment

	// IsObject is true for paths ending with ".".
	IsObject bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a dotted path.
//
// Supported segments:
//   - names: "Device", "X_EXAMPLE-COM_Mode"
//   - instance numbers: "3" (1 or greater)
//   - placeholders: "{i}"
//   - alias references: "[office]"
//
// The first segment may be a root shorthand such as "igd" (see
// ResolveRootName). Instance references may not start a path, and a
// parameter path must end with a name.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	if strings.HasPrefix(input, ".") || strings.Contains(input, "..") {
		return nil, ErrInvalidPath
	}

	p := &Path{Raw: input, IsObject: strings.HasSuffix(input, ".")}
	parts := strings.Split(strings.TrimSuffix(input, "."), ".")

	for i, part := range parts {
		if i == 0 {
			if root, ok := ResolveRootName(part); ok {
				part = root
			}
		}
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		p.Segments = append(p.Segments, seg)
	}

	if p.Segments[0].IsInstanceRef() {
		return nil, fmt.Errorf("%w: path starts with an instance reference", ErrInvalidPath)
	}
	if !p.IsObject && p.Segments[len(p.Segments)-1].IsInstanceRef() {
		return nil, fmt.Errorf("%w: parameter path must end with a name", ErrInvalidPath)
	}
	return p, nil
}

func parseSegment(s string) (Segment, error) {
	switch {
	case s == Placeholder:
		return Segment{Kind: SegmentPlaceholder}, nil

	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") || len(s) < 3 {
			return Segment{}, fmt.Errorf("%w: %q", ErrInvalidInstance, s)
		}
		return Segment{Kind: SegmentAlias, Name: s[1 : len(s)-1]}, nil

	case isDigits(s):
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 {
			return Segment{}, fmt.Errorf("%w: %q", ErrInvalidInstance, s)
		}
		return Segment{Kind: SegmentInstance, Instance: uint32(n)}, nil
	}

	if !isName(s) {
		return Segment{}, fmt.Errorf("%w: bad name %q", ErrInvalidPath, s)
	}
	return Segment{Kind: SegmentName, Name: s}, nil
}

// String returns the path in dotted form.
func (p *Path) String() string {
	return p.join(func(s Segment) string { return s.String() })
}

// Template returns the path with every instance reference replaced by {i}.
func (p *Path) Template() string {
	return p.join(func(s Segment) string {
		if s.IsInstanceRef() {
			return Placeholder
		}
		return s.Name
	})
}

func (p *Path) join(render func(Segment) string) string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(render(s))
	}
	if p.IsObject {
		sb.WriteString(".")
	}
	return sb.String()
}

// Parameter returns the parameter name of a parameter path, or "" for an
// object path.
func (p *Path) Parameter() string {
	if p.IsObject {
		return ""
	}
	return p.Segments[len(p.Segments)-1].Name
}

// Object returns the object part of the path. For an object path it is the
// path itself.
func (p *Path) Object() *Path {
	if p.IsObject {
		return p
	}
	return &Path{
		Segments: p.Segments[:len(p.Segments)-1],
		IsObject: true,
		Raw:      p.Raw,
	}
}

// IsTemplate returns true if the path contains {i} placeholders.
func (p *Path) IsTemplate() bool {
	for _, s := range p.Segments {
		if s.Kind == SegmentPlaceholder {
			return true
		}
	}
	return false
}

// Instantiate fills the {i} placeholders of a template with instance
// numbers, in order.
func Instantiate(template string, instances ...uint32) (string, error) {
	p, err := ParsePath(template)
	if err != nil {
		return "", err
	}

	n := 0
	for i, s := range p.Segments {
		if s.Kind != SegmentPlaceholder {
			continue
		}
		if n >= len(instances) {
			return "", fmt.Errorf("%w: %s needs more than %d instance numbers", ErrInvalidInstance, template, len(instances))
		}
		if instances[n] == 0 {
			return "", fmt.Errorf("%w: instance numbers start at 1", ErrInvalidInstance)
		}
		p.Segments[i] = Segment{Kind: SegmentInstance, Instance: instances[n]}
		n++
	}
	if n != len(instances) {
		return "", fmt.Errorf("%w: %s has %d placeholders, got %d instance numbers", ErrInvalidInstance, template, n, len(instances))
	}
	return p.String(), nil
}

// Match reports whether a concrete path is an instance of a template.
// Placeholders match instance numbers and alias references; names must
// be equal.
func Match(template, concrete string) bool {
	t, err := ParsePath(template)
	if err != nil {
		return false
	}
	c, err := ParsePath(concrete)
	if err != nil {
		return false
	}
	if t.IsObject != c.IsObject || len(t.Segments) != len(c.Segments) {
		return false
	}

	for i, ts := range t.Segments {
		cs := c.Segments[i]
		switch ts.Kind {
		case SegmentPlaceholder:
			if cs.Kind != SegmentInstance && cs.Kind != SegmentAlias {
				return false
			}
		default:
			if ts != cs {
				return false
			}
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// isName checks the element name syntax: a letter followed by letters,
// digits, '_' or '-'.
func isName(s string) bool {
	for i, c := range s {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_' || c == '-'):
		default:
			return false
		}
	}
	return s != ""
}
