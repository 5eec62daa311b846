package model

import (
	"errors"
	"strings"
)

// Object errors.
var (
	ErrChildNotFound    = errors.New("child object not found")
	ErrExclusiveParams  = errors.New("mutually exclusive parameters both set")
	ErrExclusiveObjects = errors.New("mutually exclusive objects both present")
)

// Unbounded is the MaxEntries value of tables without an upper limit.
const Unbounded = -1

// Object is implemented by every generated node type.
type Object interface {
	// ObjectDef returns the descriptor of the node type.
	ObjectDef() *ObjectDef
}

// Checker is implemented by node types with rules spanning several
// parameters. Check reports every broken rule, or nil.
type Checker interface {
	Check() error
}

// ChildDef describes a child object of an object.
type ChildDef struct {
	// Name is the XML element name of each child entry.
	Name string

	// Field is the Go struct field, or the accessor method when the child
	// is not held in an exported field.
	Field string

	// Object is the path template of the child definition.
	Object string

	// Multi marks a table (slice of entries).
	Multi bool

	// Style is the XML layout of a table.
	Style CollectionStyle

	// Wrapper is the wrapper element name for StyleWrapped tables.
	Wrapper string
}

// ObjectDef describes an object type.
type ObjectDef struct {
	// Path is the dotted path template, e.g. "Device.DynamicDNS.Client.{i}.".
	Path string

	// Standard is the technical report defining the object.
	Standard Standard

	// Version is the data model version, e.g. "Device:2.12".
	Version string

	// Name is the Go type name.
	Name string

	// Access is AccessReadWrite when the ACS may add and delete entries.
	Access Access

	// MinEntries and MaxEntries bound the number of table entries.
	// Single-instance objects have both set to 1.
	MinEntries int
	MaxEntries int

	// NumEntriesParameter is the parent parameter counting the entries.
	NumEntriesParameter string

	// EnableParameter is the parameter enabling the entry, if any.
	EnableParameter string

	// UniqueKeys lists the parameter sets unique within the table.
	UniqueKeys [][]string

	// Exclusive lists groups of children of which at most one may be present.
	Exclusive [][]string

	// Description is a short human-readable description.
	Description string

	// Params are the parameters in definition order.
	Params []ParamDef

	// Children are the child objects in definition order.
	Children []ChildDef

	// New returns a fresh instance populated with defaults.
	New func() Object
}

// ElementName returns the last name segment of the path, which is the XML
// element name of an instance.
func (d *ObjectDef) ElementName() string {
	segs := strings.Split(strings.TrimSuffix(d.Path, "."), ".")
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i] != "{i}" {
			return segs[i]
		}
	}
	return ""
}

// IsMultiInstance returns true if the object is a table row.
func (d *ObjectDef) IsMultiInstance() bool {
	return strings.HasSuffix(d.Path, ".{i}.")
}

// Param returns the parameter with the given name.
func (d *ObjectDef) Param(name string) (*ParamDef, error) {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i], nil
		}
	}
	return nil, ErrParamNotFound
}

// Child returns the child with the given element name.
func (d *ObjectDef) Child(name string) (*ChildDef, error) {
	for i := range d.Children {
		if d.Children[i].Name == name {
			return &d.Children[i], nil
		}
	}
	return nil, ErrChildNotFound
}

// ParamNames returns the parameter names in definition order.
func (d *ObjectDef) ParamNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

// HasAlias returns true if the object carries an Alias parameter.
func (d *ObjectDef) HasAlias() bool {
	_, err := d.Param("Alias")
	return err == nil
}

// ExclusiveWith returns the children that may not coexist with the named
// child.
func (d *ObjectDef) ExclusiveWith(child string) []string {
	var out []string
	for _, group := range d.Exclusive {
		member := false
		for _, name := range group {
			if name == child {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, name := range group {
			if name != child {
				out = append(out, name)
			}
		}
	}
	return out
}
