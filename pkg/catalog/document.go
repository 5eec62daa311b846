package catalog

import (
	"errors"
	"fmt"

	"github.com/cwmp-go/tr069/pkg/model"
)

// ErrInvalidDocument is returned for catalog documents that do not decode
// into valid descriptors.
var ErrInvalidDocument = errors.New("invalid catalog document")

// Document is the serialized form of a registry.
type Document struct {
	Objects []Object `json:"objects" yaml:"objects"`
}

// Object is the serialized form of a model.ObjectDef.
type Object struct {
	Path                string     `json:"path" yaml:"path"`
	Standard            string     `json:"standard" yaml:"standard"`
	Version             string     `json:"version" yaml:"version"`
	Name                string     `json:"name" yaml:"name"`
	Access              string     `json:"access" yaml:"access"`
	MinEntries          int        `json:"minEntries" yaml:"minEntries"`
	MaxEntries          int        `json:"maxEntries" yaml:"maxEntries"`
	NumEntriesParameter string     `json:"numEntriesParameter,omitempty" yaml:"numEntriesParameter,omitempty"`
	EnableParameter     string     `json:"enableParameter,omitempty" yaml:"enableParameter,omitempty"`
	UniqueKeys          [][]string `json:"uniqueKeys,omitempty" yaml:"uniqueKeys,omitempty"`
	Exclusive           [][]string `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
	Description         string     `json:"description,omitempty" yaml:"description,omitempty"`
	Params              []Param    `json:"params,omitempty" yaml:"params,omitempty"`
	Children            []Child    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Param is the serialized form of a model.ParamDef.
type Param struct {
	Name          string   `json:"name" yaml:"name"`
	Type          string   `json:"type" yaml:"type"`
	TypeRef       string   `json:"typeRef,omitempty" yaml:"typeRef,omitempty"`
	List          bool     `json:"list,omitempty" yaml:"list,omitempty"`
	ListMaxLength int      `json:"listMaxLength,omitempty" yaml:"listMaxLength,omitempty"`
	Access        string   `json:"access" yaml:"access"`
	Notify        string   `json:"notify,omitempty" yaml:"notify,omitempty"`
	MinValue      *int64   `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue      *int64   `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	MaxLength     int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern       string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enumeration   []string `json:"enumeration,omitempty" yaml:"enumeration,omitempty"`
	Default       *string  `json:"default,omitempty" yaml:"default,omitempty"`
	Hidden        bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	WritableIf    string   `json:"writableIf,omitempty" yaml:"writableIf,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Child is the serialized form of a model.ChildDef.
type Child struct {
	Name    string `json:"name" yaml:"name"`
	Object  string `json:"object" yaml:"object"`
	Multi   bool   `json:"multi,omitempty" yaml:"multi,omitempty"`
	Style   string `json:"style,omitempty" yaml:"style,omitempty"`
	Wrapper string `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
}

// NewDocument captures every definition of reg in registration order.
func NewDocument(reg *model.Registry) *Document {
	defs := reg.Objects()
	doc := &Document{Objects: make([]Object, 0, len(defs))}
	for _, def := range defs {
		doc.Objects = append(doc.Objects, fromObjectDef(def))
	}
	return doc
}

func fromObjectDef(def *model.ObjectDef) Object {
	o := Object{
		Path:                def.Path,
		Standard:            string(def.Standard),
		Version:             def.Version,
		Name:                def.Name,
		Access:              def.Access.String(),
		MinEntries:          def.MinEntries,
		MaxEntries:          def.MaxEntries,
		NumEntriesParameter: def.NumEntriesParameter,
		EnableParameter:     def.EnableParameter,
		UniqueKeys:          def.UniqueKeys,
		Exclusive:           def.Exclusive,
		Description:         def.Description,
	}
	for i := range def.Params {
		o.Params = append(o.Params, fromParamDef(&def.Params[i]))
	}
	for _, c := range def.Children {
		ch := Child{Name: c.Name, Object: c.Object, Multi: c.Multi, Wrapper: c.Wrapper}
		if c.Multi {
			ch.Style = c.Style.String()
		}
		o.Children = append(o.Children, ch)
	}
	return o
}

func fromParamDef(p *model.ParamDef) Param {
	out := Param{
		Name:          p.Name,
		Type:          p.Type.String(),
		TypeRef:       p.TypeRef,
		List:          p.List,
		ListMaxLength: p.ListMaxLength,
		Access:        p.Access.String(),
		MinValue:      p.MinValue,
		MaxValue:      p.MaxValue,
		MaxLength:     p.MaxLength,
		Pattern:       p.Pattern,
		Enumeration:   p.Enumeration,
		Hidden:        p.Hidden,
		WritableIf:    p.WritableIf,
		Description:   p.Description,
	}
	if p.Notify != model.NotifyNormal {
		out.Notify = p.Notify.String()
	}
	if p.Default != nil {
		s := fmt.Sprint(p.Default)
		out.Default = &s
	}
	return out
}

// Registry rebuilds plain descriptors from the document. Defaults are kept
// in their string form and New is nil on every definition.
func (d *Document) Registry() (*model.Registry, error) {
	reg := model.NewRegistry()
	for i := range d.Objects {
		def, err := d.Objects[i].objectDef()
		if err != nil {
			return nil, err
		}
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	return reg, nil
}

func (o *Object) objectDef() (*model.ObjectDef, error) {
	access, err := model.ParseAccess(o.Access)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, o.Path, err)
	}
	def := &model.ObjectDef{
		Path:                o.Path,
		Standard:            model.Standard(o.Standard),
		Version:             o.Version,
		Name:                o.Name,
		Access:              access,
		MinEntries:          o.MinEntries,
		MaxEntries:          o.MaxEntries,
		NumEntriesParameter: o.NumEntriesParameter,
		EnableParameter:     o.EnableParameter,
		UniqueKeys:          o.UniqueKeys,
		Exclusive:           o.Exclusive,
		Description:         o.Description,
	}

	for i := range o.Params {
		p, err := o.Params[i].paramDef()
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s: %w", ErrInvalidDocument, o.Path, o.Params[i].Name, err)
		}
		def.Params = append(def.Params, p)
	}

	for _, c := range o.Children {
		style, err := model.ParseCollectionStyle(c.Style)
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s: %w", ErrInvalidDocument, o.Path, c.Name, err)
		}
		def.Children = append(def.Children, model.ChildDef{
			Name:    c.Name,
			Field:   c.Name,
			Object:  c.Object,
			Multi:   c.Multi,
			Style:   style,
			Wrapper: c.Wrapper,
		})
	}
	return def, nil
}

func (p *Param) paramDef() (model.ParamDef, error) {
	typ, err := model.ParseDataType(p.Type)
	if err != nil {
		return model.ParamDef{}, err
	}
	access, err := model.ParseAccess(p.Access)
	if err != nil {
		return model.ParamDef{}, err
	}
	notify, err := model.ParseNotify(p.Notify)
	if err != nil {
		return model.ParamDef{}, err
	}

	def := model.ParamDef{
		Name:          p.Name,
		Field:         p.Name,
		Type:          typ,
		TypeRef:       p.TypeRef,
		List:          p.List,
		ListMaxLength: p.ListMaxLength,
		Access:        access,
		Notify:        notify,
		MinValue:      p.MinValue,
		MaxValue:      p.MaxValue,
		MaxLength:     p.MaxLength,
		Pattern:       p.Pattern,
		Enumeration:   p.Enumeration,
		Hidden:        p.Hidden,
		WritableIf:    p.WritableIf,
		Description:   p.Description,
	}
	if p.Default != nil {
		def.Default = *p.Default
	}
	return def, nil
}
