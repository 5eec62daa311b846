package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwmp-go/tr069/pkg/specparse"
)

// objectsFile is the per-package file holding Objects and Register.
const objectsFile = "objects_gen.go"

// DefFile is one loaded definition file.
type DefFile struct {
	Path    string
	Objects []specparse.RawObjectDef
}

// goTypes maps base types to Go types.
var goTypes = map[string]string{
	"boolean":      "bool",
	"int":          "int32",
	"unsignedInt":  "uint32",
	"long":         "int64",
	"unsignedLong": "uint64",
	"string":       "string",
	"dateTime":     "types.DateTime",
	"base64":       "types.Base64",
	"hexBinary":    "types.HexBinary",
}

// listTypes maps the element type of a comma-separated list to the list
// type and its element Go type.
var listTypes = map[string][2]string{
	"string":      {"types.StringList", "string"},
	"unsignedInt": {"types.UnsignedIntList", "uint32"},
	"int":         {"types.IntList", "int32"},
	"IPAddress":   {"types.IPAddressList", "types.IPAddress"},
}

var modelTypes = map[string]string{
	"boolean":      "model.TypeBoolean",
	"int":          "model.TypeInt",
	"unsignedInt":  "model.TypeUnsignedInt",
	"long":         "model.TypeLong",
	"unsignedLong": "model.TypeUnsignedLong",
	"string":       "model.TypeString",
	"dateTime":     "model.TypeDateTime",
	"base64":       "model.TypeBase64",
	"hexBinary":    "model.TypeHexBinary",
}

var standards = map[string]string{
	"TR-098": "model.StandardTR098",
	"TR-104": "model.StandardTR104",
	"TR-106": "model.StandardTR106",
	"TR-143": "model.StandardTR143",
	"TR-181": "model.StandardTR181",
	"TR-196": "model.StandardTR196",
}

var notifyModes = map[string]string{
	"forceEnabled":        "model.NotifyForceEnabled",
	"forceDefaultEnabled": "model.NotifyForceDefaultEnabled",
	"canDeny":             "model.NotifyCanDeny",
}

// Shared types whose syntax is checked by the cwmp validation tag.
var checkedTypes = map[string]bool{
	"IPAddress":   true,
	"IPv4Address": true,
	"IPv6Address": true,
	"MACAddress":  true,
	"Alias":       true,
}

// Description verbs that read as a predicate after the field name.
var leadingVerbs = map[string]bool{
	"Enables": true, "Indicates": true, "Specifies": true, "Identifies": true,
	"Controls": true, "Counts": true, "Reports": true, "Holds": true,
	"Lists": true, "Triggers": true, "Selects": true, "Sets": true,
	"Requests": true, "Contains": true, "Defines": true, "Resets": true,
	"Forces": true, "Limits": true,
}

// Template data.

type fileData struct {
	Package   string
	Module    string
	UsesTypes bool
	UsesXML   bool
	Objects   []objectData
}

type objectData struct {
	Name      string
	Path      string
	Recv      string
	Doc       []string
	Fields    []fieldData
	Tables    []tableData
	Inits     []string
	Accessors []accessorData
	Entries   []string
	Params    []string
	Children  []string
}

type fieldData struct {
	Doc  []string
	Decl string
}

// tableData is a wrapped collection: a named slice type encoded inside a
// wrapper element.
type tableData struct {
	Doc     []string
	Name    string
	Owner   string
	Elem    string
	Entry   string
	Wrapper string
}

type accessorData struct {
	Owner      string
	Recv       string
	Field      string
	Type       string // field type
	Collection bool
	Elem       string // element type of a collection
	Arg        string // variadic argument name
	GetDoc     string
	WithDoc    string
}

type objectsData struct {
	Package string
	Module  string
	Names   []string
}

// GeneratePackage renders the files of one package. The result maps file
// names to unformatted Go source.
func GeneratePackage(module string, pkg *specparse.RawPackage, defs []DefFile) (map[string]string, error) {
	byName := make(map[string]*specparse.RawObjectDef)
	for i := range defs {
		for j := range defs[i].Objects {
			o := &defs[i].Objects[j]
			byName[o.Name] = o
		}
	}

	files := make(map[string]string)
	var names []string
	for _, def := range defs {
		data := fileData{Package: pkg.Name, Module: module}
		for i := range def.Objects {
			o := &def.Objects[i]
			od, err := buildObject(pkg, o, byName)
			if err != nil {
				return nil, fmt.Errorf("object %s: %w", o.Name, err)
			}
			data.Objects = append(data.Objects, od)
			data.UsesTypes = data.UsesTypes || usesTypes(o)
			data.UsesXML = data.UsesXML || len(od.Tables) > 0
			names = append(names, o.Name)
		}

		var b strings.Builder
		renderTemplate(&b, "file", data)
		files[genFileName(def.Path)] = b.String()
	}

	var b strings.Builder
	renderTemplate(&b, "objects", objectsData{Package: pkg.Name, Module: module, Names: names})
	files[objectsFile] = b.String()
	return files, nil
}

// genFileName maps "defs/tr181/routing.yaml" to "routing_gen.go".
func genFileName(defPath string) string {
	base := filepath.Base(defPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_gen.go"
}

func buildObject(pkg *specparse.RawPackage, o *specparse.RawObjectDef, byName map[string]*specparse.RawObjectDef) (objectData, error) {
	od := objectData{
		Name: o.Name,
		Path: o.Path,
		Recv: strings.ToLower(o.Name[:1]),
		Doc:  wrapComment(o.Name+" "+phrase(o.Description)+".", 0),
	}

	if o.IsTable() {
		od.Fields = append(od.Fields, fieldData{
			Doc:  []string{"// InstanceNumber identifies the entry within its table."},
			Decl: "InstanceNumber uint32 `xml:\"instance,attr,omitempty\"`",
		})
	}

	for i := range o.Parameters {
		p := &o.Parameters[i]
		typ, err := goType(p)
		if err != nil {
			return od, err
		}
		tag := fmt.Sprintf("xml:%q", p.Name)
		if v := validateTag(p); v != "" {
			tag += fmt.Sprintf(" validate:%q", v)
		}
		f := fieldData{Decl: fmt.Sprintf("%s %s `%s`", p.GoField(), typ, tag)}
		if p.Description != "" {
			f.Doc = wrapComment(p.GoField()+" "+phrase(p.Description)+".", 1)
		}
		od.Fields = append(od.Fields, f)

		if p.Default != nil {
			lit, err := defaultInit(p)
			if err != nil {
				return od, err
			}
			if lit != "" {
				od.Inits = append(od.Inits, p.GoField()+": "+lit)
			}
		}

		acc := accessorData{Owner: o.Name, Recv: od.Recv, Field: p.GoField(), Type: typ}
		if p.List {
			acc.Collection = true
			acc.Elem = listTypes[p.Type][1]
			acc.Arg = "values"
			acc.GetDoc = fmt.Sprintf("Get%s returns %s, initializing it to an empty list if nil.", acc.Field, acc.Field)
			acc.WithDoc = fmt.Sprintf("With%s appends values to %s and returns %s.", acc.Field, acc.Field, od.Recv)
		} else {
			acc.WithDoc = fmt.Sprintf("With%s sets %s and returns %s.", acc.Field, acc.Field, od.Recv)
		}
		od.Accessors = append(od.Accessors, acc)

		lit, err := paramLiteral(p)
		if err != nil {
			return od, err
		}
		od.Params = append(od.Params, lit)
	}

	for i := range o.Children {
		c := &o.Children[i]
		target, ok := byName[c.Object]
		if !ok {
			return od, fmt.Errorf("child %s refers to unknown object %q", c.Name, c.Object)
		}
		od.Children = append(od.Children, childLiteral(c, target))
		if c.Manual {
			continue
		}

		field := c.GoField()
		if c.Multi {
			typ := "[]" + c.Object
			tag := fmt.Sprintf("xml:\"%s,omitempty\"", c.Name)
			if c.Style == "wrapped" {
				typ = o.Name + c.Wrapper
				tag = fmt.Sprintf("xml:\"%s,omitempty\"", c.Wrapper)
				doc := fmt.Sprintf("%s holds the %s entries of a %s. It encodes as one %s element, left out when the table is empty.",
					typ, c.Name, o.Name, c.Wrapper)
				od.Tables = append(od.Tables, tableData{
					Doc:     wrapComment(doc, 0),
					Name:    typ,
					Owner:   o.Name,
					Elem:    c.Object,
					Entry:   c.Name,
					Wrapper: c.Wrapper,
				})
			}
			od.Fields = append(od.Fields, fieldData{
				Doc:  wrapComment(fmt.Sprintf("%s holds the %s table entries.", field, c.Name), 1),
				Decl: fmt.Sprintf("%s %s `%s`", field, typ, tag),
			})
			od.Accessors = append(od.Accessors, accessorData{
				Owner:      o.Name,
				Recv:       od.Recv,
				Field:      field,
				Type:       "[]" + c.Object,
				Collection: true,
				Elem:       c.Object,
				Arg:        "entries",
				GetDoc:     fmt.Sprintf("Get%s returns the %s entries, initializing the table if nil.", field, field),
				WithDoc:    fmt.Sprintf("With%s appends entries to %s and returns %s.", field, field, od.Recv),
			})
			continue
		}

		od.Fields = append(od.Fields, fieldData{Decl: fmt.Sprintf("%s %s `xml:%q validate:\"-\"`", field, c.Object, c.Name)})
		od.Inits = append(od.Inits, fmt.Sprintf("%s: *New%s()", field, c.Object))
		od.Accessors = append(od.Accessors, accessorData{
			Owner:   o.Name,
			Recv:    od.Recv,
			Field:   field,
			Type:    c.Object,
			WithDoc: fmt.Sprintf("With%s sets %s and returns %s.", field, field, od.Recv),
		})
	}

	if u := o.Union; u != nil {
		od.Fields = append(od.Fields, fieldData{
			Doc:  wrapComment(u.Field+" "+phrase(u.Description)+".", 1),
			Decl: u.Field + " " + u.Type,
		})
	}

	entries, err := descriptorEntries(pkg, o)
	if err != nil {
		return od, err
	}
	od.Entries = entries
	return od, nil
}

func descriptorEntries(pkg *specparse.RawPackage, o *specparse.RawObjectDef) ([]string, error) {
	std, ok := standards[pkg.Standard]
	if !ok {
		return nil, fmt.Errorf("unknown standard %q", pkg.Standard)
	}
	entries := []string{
		"Path: " + strconv.Quote(o.Path),
		"Standard: " + std,
		"Version: " + strconv.Quote(pkg.Version),
		"Name: " + strconv.Quote(o.Name),
		"Access: " + accessConst(o.Access),
	}

	if o.IsTable() {
		minEntries, maxEntries := "0", "model.Unbounded"
		if o.MinEntries != nil {
			minEntries = strconv.Itoa(*o.MinEntries)
		}
		if o.MaxEntries != nil {
			maxEntries = strconv.Itoa(*o.MaxEntries)
		}
		entries = append(entries, "MinEntries: "+minEntries, "MaxEntries: "+maxEntries)
	} else {
		entries = append(entries, "MinEntries: 1", "MaxEntries: 1")
	}

	if o.NumEntriesParameter != "" {
		entries = append(entries, "NumEntriesParameter: "+strconv.Quote(o.NumEntriesParameter))
	}
	if o.EnableParameter != "" {
		entries = append(entries, "EnableParameter: "+strconv.Quote(o.EnableParameter))
	}
	if len(o.UniqueKeys) > 0 {
		entries = append(entries, "UniqueKeys: "+stringGroups(o.UniqueKeys))
	}
	if len(o.Exclusive) > 0 {
		entries = append(entries, "Exclusive: "+stringGroups(o.Exclusive))
	}
	if o.Description != "" {
		entries = append(entries, "Description: "+strconv.Quote(o.Description))
	}
	return entries, nil
}

func paramLiteral(p *specparse.RawParameterDef) (string, error) {
	base, ok := specparse.BaseType(p.Type)
	if !ok {
		return "", fmt.Errorf("parameter %s: unknown type %q", p.Name, p.Type)
	}
	parts := []string{
		"Name: " + strconv.Quote(p.Name),
		"Field: " + strconv.Quote(p.GoField()),
		"Type: " + modelTypes[base],
	}
	if _, shared := specparse.SharedTypes[p.Type]; shared {
		parts = append(parts, "TypeRef: "+strconv.Quote(p.Type))
	}
	if p.List {
		parts = append(parts, "List: true")
	}
	if p.ListMaxLength > 0 {
		parts = append(parts, fmt.Sprintf("ListMaxLength: %d", p.ListMaxLength))
	}
	parts = append(parts, "Access: "+accessConst(p.Access))
	if p.Notify != "" && p.Notify != "normal" {
		mode, ok := notifyModes[p.Notify]
		if !ok {
			return "", fmt.Errorf("parameter %s: unknown notify mode %q", p.Name, p.Notify)
		}
		parts = append(parts, "Notify: "+mode)
	}
	if p.Min != nil {
		parts = append(parts, fmt.Sprintf("MinValue: model.Int64(%d)", *p.Min))
	}
	if p.Max != nil {
		parts = append(parts, fmt.Sprintf("MaxValue: model.Int64(%d)", *p.Max))
	}
	if p.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("MaxLength: %d", p.MaxLength))
	}
	if p.Pattern != "" {
		parts = append(parts, "Pattern: "+strconv.Quote(p.Pattern))
	}
	if len(p.Enum) > 0 {
		parts = append(parts, "Enumeration: "+stringSlice(p.Enum))
	}
	if p.Default != nil {
		d, err := defaultValue(p, base)
		if err != nil {
			return "", err
		}
		parts = append(parts, "Default: "+d)
	}
	if p.Hidden {
		parts = append(parts, "Hidden: true")
	}
	if p.WritableIf != "" {
		parts = append(parts, "WritableIf: "+strconv.Quote(p.WritableIf))
	}
	if p.Description != "" {
		parts = append(parts, "Description: "+strconv.Quote(p.Description))
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func childLiteral(c *specparse.RawChildDef, target *specparse.RawObjectDef) string {
	parts := []string{
		"Name: " + strconv.Quote(c.Name),
		"Field: " + strconv.Quote(c.GoField()),
		"Object: " + strconv.Quote(target.Path),
	}
	if c.Multi {
		parts = append(parts, "Multi: true")
	}
	if c.Style == "wrapped" {
		parts = append(parts, "Style: model.StyleWrapped", "Wrapper: "+strconv.Quote(c.Wrapper))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func accessConst(access string) string {
	if access == "readWrite" {
		return "model.AccessReadWrite"
	}
	return "model.AccessReadOnly"
}

func goType(p *specparse.RawParameterDef) (string, error) {
	if p.List {
		lt, ok := listTypes[p.Type]
		if !ok {
			return "", fmt.Errorf("parameter %s: no list type for %q", p.Name, p.Type)
		}
		return lt[0], nil
	}
	if _, shared := specparse.SharedTypes[p.Type]; shared {
		return "types." + p.Type, nil
	}
	t, ok := goTypes[p.Type]
	if !ok {
		return "", fmt.Errorf("parameter %s: unknown type %q", p.Name, p.Type)
	}
	return t, nil
}

func usesTypes(o *specparse.RawObjectDef) bool {
	for i := range o.Parameters {
		if t, err := goType(&o.Parameters[i]); err == nil && strings.HasPrefix(t, "types.") {
			return true
		}
	}
	return false
}

// validateTag builds the validator tag of a parameter field.
func validateTag(p *specparse.RawParameterDef) string {
	var tags []string
	if p.List {
		if p.ListMaxLength > 0 {
			tags = append(tags, fmt.Sprintf("listlen=%d", p.ListMaxLength))
		}
		if checkedTypes[p.Type] {
			tags = append(tags, "cwmp")
		}
		return strings.Join(tags, ",")
	}

	omit := false
	base, _ := specparse.BaseType(p.Type)
	switch base {
	case "string":
		omit = len(p.Enum) > 0
		if p.MaxLength > 0 {
			tags = append(tags, fmt.Sprintf("max=%d", p.MaxLength))
		}
		if len(p.Enum) > 0 {
			tags = append(tags, "oneof="+strings.Join(p.Enum, " "))
		}
		if checkedTypes[p.Type] {
			tags = append(tags, "cwmp")
		}
	case "int", "unsignedInt", "long", "unsignedLong":
		// A zero value below the minimum means "unset".
		omit = p.Min != nil && *p.Min > 0
		if p.Min != nil {
			tags = append(tags, fmt.Sprintf("min=%d", *p.Min))
		}
		if p.Max != nil {
			tags = append(tags, fmt.Sprintf("max=%d", *p.Max))
		}
	case "base64", "hexBinary":
		if p.MaxLength > 0 {
			tags = append(tags, fmt.Sprintf("max=%d", p.MaxLength))
		}
	}
	if omit && len(tags) > 0 {
		tags = append([]string{"omitempty"}, tags...)
	}
	return strings.Join(tags, ",")
}

// defaultValue renders the Default of a ParamDef literal.
func defaultValue(p *specparse.RawParameterDef, base string) (string, error) {
	switch base {
	case "boolean":
		b, ok := p.Default.(bool)
		if !ok {
			return "", fmt.Errorf("parameter %s: default %v is not a boolean", p.Name, p.Default)
		}
		return strconv.FormatBool(b), nil
	case "int", "unsignedInt", "long", "unsignedLong":
		n, err := defaultInt(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%d)", goTypes[base], n), nil
	}
	return strconv.Quote(fmt.Sprint(p.Default)), nil
}

// defaultInit renders the constructor initializer of a parameter, or ""
// when the zero value is used.
func defaultInit(p *specparse.RawParameterDef) (string, error) {
	if p.List {
		return "", nil
	}
	base, _ := specparse.BaseType(p.Type)
	switch base {
	case "boolean":
		return defaultValue(p, base)
	case "int", "unsignedInt", "long", "unsignedLong":
		n, err := defaultInt(p)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case "dateTime":
		if fmt.Sprint(p.Default) != "0001-01-01T00:00:00Z" {
			return "", fmt.Errorf("parameter %s: only the unknown time is supported as default", p.Name)
		}
		return "types.UnknownTime", nil
	case "base64", "hexBinary":
		return "", nil
	}
	return strconv.Quote(fmt.Sprint(p.Default)), nil
}

func defaultInt(p *specparse.RawParameterDef) (int64, error) {
	switch n := p.Default.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("parameter %s: default %v is not an integer", p.Name, p.Default)
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func stringGroups(groups [][]string) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = strings.TrimPrefix(stringSlice(g), "[]string")
	}
	return "[][]string{" + strings.Join(parts, ", ") + "}"
}

// phrase turns a description into the predicate of a doc comment sentence
// that starts with the identifier.
func phrase(desc string) string {
	desc = strings.TrimSuffix(strings.TrimSpace(desc), ".")
	if desc == "" {
		return "is a managed object"
	}
	first, _, _ := strings.Cut(desc, " ")
	switch {
	case leadingVerbs[first]:
		return lowerFirst(desc)
	case first == "Whether":
		return "reports " + lowerFirst(desc)
	}
	return "is " + lowerFirst(desc)
}

// lowerFirst lower-cases the first letter unless the word is an acronym.
func lowerFirst(s string) string {
	if len(s) > 1 && s[1] >= 'A' && s[1] <= 'Z' {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// wrapComment splits text into "// " comment lines that fit in 78 columns
// at the given indentation depth.
func wrapComment(text string, depth int) []string {
	const width = 78
	var lines []string
	cur := "//"
	for _, w := range strings.Fields(text) {
		if depth+len(cur)+1+len(w) > width && cur != "//" {
			lines = append(lines, cur)
			cur = "//"
		}
		cur += " " + w
	}
	return append(lines, cur)
}
