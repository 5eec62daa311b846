package main

import (
	"strings"
	"text/template"
)

// Templates produce unindented Go; goimports formats the result.

var tmpl = template.Must(template.New("").Parse(fileTemplate + objectTemplate + tableTemplate + accessorTemplate + descriptorTemplate + objectsTemplate))

// renderTemplate executes a named template, panicking on error.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := tmpl.ExecuteTemplate(b, name, data); err != nil {
		panic("template " + name + ": " + err.Error())
	}
}

const fileTemplate = `{{define "file"}}// Code generated by tr069-gen. DO NOT EDIT.

package {{.Package}}
{{if or .UsesTypes .UsesXML}}
import (
{{- if .UsesXML}}
"encoding/xml"
{{end}}
"{{.Module}}/pkg/model"
{{- if .UsesTypes}}
"{{.Module}}/pkg/types"
{{- end}}
)
{{else}}
import "{{.Module}}/pkg/model"
{{end}}
{{- range .Objects}}
{{template "object" .}}
{{- end}}
{{end}}`

const objectTemplate = `{{define "object"}}
{{- range .Doc}}
{{.}}
{{- end}}
//
// Object: {{.Path}}
type {{.Name}} struct {
{{- range $i, $f := .Fields}}
{{- if $i}}
{{end}}
{{- range $f.Doc}}
{{.}}
{{- end}}
{{$f.Decl}}
{{- end}}
}
{{- range .Tables}}
{{template "table" .}}
{{- end}}

// New{{.Name}} returns a new {{.Name}} with its defaults applied.
func New{{.Name}}() *{{.Name}} {
{{- if .Inits}}
return &{{.Name}}{
{{- range .Inits}}
{{.}},
{{- end}}
}
{{- else}}
return &{{.Name}}{}
{{- end}}
}
{{- range .Accessors}}
{{template "accessor" .}}
{{- end}}
{{template "descriptor" .}}
{{- end}}`

const tableTemplate = `{{define "table"}}
{{- range .Doc}}
{{.}}
{{- end}}
type {{.Name}} []{{.Elem}}

// MarshalXML writes the entries inside start, or nothing when t is empty.
func (t {{.Name}}) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
if len(t) == 0 {
return nil
}
if err := e.EncodeToken(start); err != nil {
return err
}
entry := xml.StartElement{Name: xml.Name{Local: {{printf "%q" .Entry}}}}
for i := range t {
if err := e.EncodeElement(&t[i], entry); err != nil {
return err
}
}
return e.EncodeToken(start.End())
}

// UnmarshalXML appends the {{.Entry}} elements of start to t.
func (t *{{.Name}}) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
var w struct {
Entries []{{.Elem}} ` + "`xml:{{printf \"%q\" .Entry}}`" + `
}
if err := d.DecodeElement(&w, &start); err != nil {
return err
}
*t = append(*t, w.Entries...)
return nil
}
{{- end}}`

const accessorTemplate = `{{define "accessor"}}
{{- $r := .Recv}}{{$t := .Owner}}{{$a := .}}
{{- if $a.Collection}}
// {{$a.GetDoc}}
func ({{$r}} *{{$t}}) Get{{$a.Field}}() {{$a.Type}} {
if {{$r}}.{{$a.Field}} == nil {
{{$r}}.{{$a.Field}} = {{$a.Type}}{}
}
return {{$r}}.{{$a.Field}}
}

// {{$a.WithDoc}}
func ({{$r}} *{{$t}}) With{{$a.Field}}({{$a.Arg}} ...{{$a.Elem}}) *{{$t}} {
{{$r}}.{{$a.Field}} = append({{$r}}.Get{{$a.Field}}(), {{$a.Arg}}...)
return {{$r}}
}
{{- else}}
// {{$a.WithDoc}}
func ({{$r}} *{{$t}}) With{{$a.Field}}(value {{$a.Type}}) *{{$t}} {
{{$r}}.{{$a.Field}} = value
return {{$r}}
}
{{- end}}
{{- end}}`

const descriptorTemplate = `{{define "descriptor"}}
// {{.Name}}Object describes {{.Path}}
var {{.Name}}Object = &model.ObjectDef{
{{- range .Entries}}
{{.}},
{{- end}}
{{- if .Params}}
Params: []model.ParamDef{
{{- range .Params}}
{{.}},
{{- end}}
},
{{- end}}
{{- if .Children}}
Children: []model.ChildDef{
{{- range .Children}}
{{.}},
{{- end}}
},
{{- end}}
New: func() model.Object { return New{{.Name}}() },
}

// ObjectDef returns {{.Name}}Object.
func (*{{.Name}}) ObjectDef() *model.ObjectDef {
return {{.Name}}Object
}
{{- end}}`

const objectsTemplate = `{{define "objects"}}// Code generated by tr069-gen. DO NOT EDIT.

package {{.Package}}

import "{{.Module}}/pkg/model"

// Objects returns the object descriptors of this package in definition order.
func Objects() []*model.ObjectDef {
return []*model.ObjectDef{
{{- range .Names}}
{{.}}Object,
{{- end}}
}
}

// Register adds every object descriptor of this package to r.
func Register(r *model.Registry) error {
for _, def := range Objects() {
if err := r.Register(def); err != nil {
return err
}
}
return nil
}
{{end}}`
