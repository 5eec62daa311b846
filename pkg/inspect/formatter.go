package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwmp-go/tr069/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type and access information
	ShowMetadata bool

	// ShowDescriptions includes parameter descriptions in definitions
	ShowDescriptions bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata:     true,
		ShowDescriptions: false,
		IndentWidth:      2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a parameter value for display. Strings are quoted,
// hidden parameters are masked.
func (f *Formatter) FormatValue(p *model.ParamDef, value string) string {
	if p.Hidden {
		return "(hidden)"
	}
	if p.List || p.Type == model.TypeString {
		return strconv.Quote(value)
	}
	return value
}

// FormatAccess formats an access level for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

// FormatParamType formats the type of a parameter: "unsignedInt",
// "IPAddress", "string(256)" or "list of int".
func FormatParamType(p *model.ParamDef) string {
	name := p.Type.String()
	if p.TypeRef != "" {
		name = p.TypeRef
	}
	if p.MaxLength > 0 && !p.List {
		name = fmt.Sprintf("%s(%d)", name, p.MaxLength)
	}
	if p.List {
		name = "list of " + name
		if p.ListMaxLength > 0 {
			name += fmt.Sprintf(" (%d)", p.ListMaxLength)
		}
	}
	return name
}

// FormatConstraints formats the value constraints of a parameter, or ""
// when there are none.
func FormatConstraints(p *model.ParamDef) string {
	var parts []string
	if p.HasRange() {
		lo, hi := "", ""
		if p.MinValue != nil {
			lo = strconv.FormatInt(*p.MinValue, 10)
		}
		if p.MaxValue != nil {
			hi = strconv.FormatInt(*p.MaxValue, 10)
		}
		parts = append(parts, "["+lo+":"+hi+"]")
	}
	if len(p.Enumeration) > 0 {
		parts = append(parts, "{"+strings.Join(p.Enumeration, "|")+"}")
	}
	if p.Pattern != "" {
		parts = append(parts, "/"+p.Pattern+"/")
	}
	if p.WritableIf != "" {
		parts = append(parts, "writable if "+p.WritableIf)
	}
	return strings.Join(parts, " ")
}

// ParamRow represents a formatted parameter for display.
type ParamRow struct {
	Name        string
	Value       string
	Type        string
	Access      string
	Constraints string
}

// FormatParamTable formats a list of parameters as a table.
func (f *Formatter) FormatParamTable(rows []ParamRow) string {
	if len(rows) == 0 {
		return "  (no parameters)\n"
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.Name))
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-*s = %s", width, row.Name, row.Value))
		if f.ShowMetadata && row.Type != "" {
			sb.WriteString(fmt.Sprintf(" (%s, %s)", row.Type, row.Access))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatObject formats an object instance with its parameter values.
func (f *Formatter) FormatObject(info *ObjectInfo) string {
	rows := make([]ParamRow, 0, len(info.Params))
	for _, p := range info.Params {
		rows = append(rows, ParamRow{
			Name:   p.Name,
			Value:  f.FormatValue(p.Def, p.Value),
			Type:   FormatParamType(p.Def),
			Access: FormatAccess(p.Def.Access),
		})
	}
	return info.Path + "\n" + f.FormatParamTable(rows)
}

// FormatTree formats every object of a tree.
func (f *Formatter) FormatTree(infos []ObjectInfo) string {
	var sb strings.Builder
	for i := range infos {
		sb.WriteString(f.FormatObject(&infos[i]))
	}
	return sb.String()
}

// FormatDefinition formats an object definition: header, parameters and
// children.
func (f *Formatter) FormatDefinition(def *model.ObjectDef) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s (%s %s, %s)\n", def.Path, def.Standard, def.Version, def.Name))
	if def.Description != "" {
		sb.WriteString(f.Indent(1, def.Description) + "\n")
	}
	if def.IsMultiInstance() {
		entries := "unbounded"
		if def.MaxEntries != model.Unbounded {
			entries = strconv.Itoa(def.MaxEntries)
		}
		sb.WriteString(f.Indent(1, fmt.Sprintf("Table: %s, entries %d..%s", FormatAccess(def.Access), def.MinEntries, entries)) + "\n")
		if len(def.UniqueKeys) > 0 {
			keys := make([]string, len(def.UniqueKeys))
			for i, k := range def.UniqueKeys {
				keys[i] = strings.Join(k, "+")
			}
			sb.WriteString(f.Indent(1, "Unique keys: "+strings.Join(keys, ", ")) + "\n")
		}
	}

	if len(def.Params) > 0 {
		sb.WriteString(f.Indent(1, "Parameters:") + "\n")
	}
	for i := range def.Params {
		p := &def.Params[i]
		line := fmt.Sprintf("%s %s", p.Name, FormatParamType(p))
		if f.ShowMetadata {
			line += " " + FormatAccess(p.Access)
			if p.Notify != model.NotifyNormal {
				line += " notify=" + p.Notify.String()
			}
			if c := FormatConstraints(p); c != "" {
				line += " " + c
			}
			if p.Default != nil {
				line += fmt.Sprintf(" default=%v", p.Default)
			}
		}
		sb.WriteString(f.Indent(2, line) + "\n")
		if f.ShowDescriptions && p.Description != "" {
			sb.WriteString(f.Indent(3, p.Description) + "\n")
		}
	}

	if len(def.Children) > 0 {
		sb.WriteString(f.Indent(1, "Children:") + "\n")
	}
	for _, c := range def.Children {
		line := c.Name + "."
		if c.Multi {
			line += "{i}."
		}
		if c.Style == model.StyleWrapped {
			line += " (in " + c.Wrapper + ")"
		}
		if others := def.ExclusiveWith(c.Name); len(others) > 0 {
			line += " excludes " + strings.Join(others, ", ")
		}
		sb.WriteString(f.Indent(2, line) + "\n")
	}
	return sb.String()
}
