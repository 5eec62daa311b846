package specparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawObjectFile is a definition file: a list of objects.
type RawObjectFile struct {
	Objects []RawObjectDef `yaml:"objects"`
}

// RawObjectDef represents an object definition.
type RawObjectDef struct {
	Name                string            `yaml:"name"` // Go type name
	Path                string            `yaml:"path"` // "Device.DynamicDNS.Client.{i}."
	Access              string            `yaml:"access"`
	MinEntries          *int              `yaml:"minEntries"`
	MaxEntries          *int              `yaml:"maxEntries"` // tables default to unbounded
	NumEntriesParameter string            `yaml:"numEntriesParameter"`
	EnableParameter     string            `yaml:"enableParameter"`
	UniqueKeys          [][]string        `yaml:"uniqueKeys"`
	Exclusive           [][]string        `yaml:"exclusive"`
	Description         string            `yaml:"description"`
	Parameters          []RawParameterDef `yaml:"parameters"`
	Children            []RawChildDef     `yaml:"children"`
	Union               *RawUnionDef      `yaml:"union"`
}

// RawUnionDef declares an unexported field holding one of several manual
// children.
type RawUnionDef struct {
	Field       string `yaml:"field"` // unexported Go field name
	Type        string `yaml:"type"`  // hand-written interface type
	Description string `yaml:"description"`
}

// RawParameterDef represents a parameter definition.
type RawParameterDef struct {
	Name          string   `yaml:"name"`
	Field         string   `yaml:"field"` // Go field name when it differs from name
	Type          string   `yaml:"type"`  // "boolean", "unsignedInt", ... or a shared type "IPAddress"
	List          bool     `yaml:"list"`
	ListMaxLength int      `yaml:"listMaxLength"`
	Access        string   `yaml:"access"`
	Notify        string   `yaml:"notify"`
	Min           *int64   `yaml:"min"`
	Max           *int64   `yaml:"max"`
	MaxLength     int      `yaml:"maxLength"`
	Pattern       string   `yaml:"pattern"`
	Enum          []string `yaml:"enum"`
	Default       any      `yaml:"default"`
	Hidden        bool     `yaml:"hidden"`
	WritableIf    string   `yaml:"writableIf"`
	Description   string   `yaml:"description"`
}

// RawChildDef represents a child object reference.
type RawChildDef struct {
	Name    string `yaml:"name"`   // element name
	Field   string `yaml:"field"`  // Go field name when it differs from name
	Object  string `yaml:"object"` // Go type name of the child definition
	Multi   bool   `yaml:"multi"`
	Style   string `yaml:"style"` // "repeated" (default) or "wrapped"
	Wrapper string `yaml:"wrapper"`
	Manual  bool   `yaml:"manual"` // storage and accessors are hand-written
}

// ParseObjectFile parses a definition file from YAML bytes.
func ParseObjectFile(data []byte) (*RawObjectFile, error) {
	var f RawObjectFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing object definitions: %w", err)
	}
	if len(f.Objects) == 0 {
		return nil, fmt.Errorf("definition file has no objects")
	}
	return &f, nil
}

// LoadObjectFile loads and parses a definition file.
func LoadObjectFile(path string) (*RawObjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseObjectFile(data)
}

// GoField returns the Go field name of the parameter.
func (p *RawParameterDef) GoField() string {
	if p.Field != "" {
		return p.Field
	}
	return FieldName(p.Name)
}

// GoField returns the Go field name of the child.
func (c *RawChildDef) GoField() string {
	if c.Field != "" {
		return c.Field
	}
	return FieldName(c.Name)
}

// IsTable returns true if the object path ends in an instance placeholder.
func (o *RawObjectDef) IsTable() bool {
	n := len(o.Path)
	return n >= 5 && o.Path[n-5:] == ".{i}."
}
