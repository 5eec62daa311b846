package inspect

import (
	"strings"
	"testing"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr104v2"
	"github.com/cwmp-go/tr069/pkg/tr181"
)

func TestFormatValue(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name  string
		param model.ParamDef
		value string
		want  string
	}{
		{"string", model.ParamDef{Type: model.TypeString}, "home", `"home"`},
		{"empty string", model.ParamDef{Type: model.TypeString}, "", `""`},
		{"boolean", model.ParamDef{Type: model.TypeBoolean}, "true", "true"},
		{"int", model.ParamDef{Type: model.TypeInt}, "-1", "-1"},
		{"list", model.ParamDef{Type: model.TypeUnsignedInt, List: true}, "1,2", `"1,2"`},
		{"hidden", model.ParamDef{Type: model.TypeString, Hidden: true}, "", "(hidden)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatValue(&tt.param, tt.value); got != tt.want {
				t.Errorf("FormatValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAccess(t *testing.T) {
	tests := []struct {
		access model.Access
		want   string
	}{
		{model.AccessReadOnly, "read-only"},
		{model.AccessReadWrite, "read-write"},
		{model.AccessWrite, "access(2)"},
	}
	for _, tt := range tests {
		if got := FormatAccess(tt.access); got != tt.want {
			t.Errorf("FormatAccess(%d) = %q, want %q", tt.access, got, tt.want)
		}
	}
}

func TestFormatParamType(t *testing.T) {
	tests := []struct {
		name  string
		param model.ParamDef
		want  string
	}{
		{"base", model.ParamDef{Type: model.TypeUnsignedInt}, "unsignedInt"},
		{"shared", model.ParamDef{Type: model.TypeString, TypeRef: "IPAddress"}, "IPAddress"},
		{"sized", model.ParamDef{Type: model.TypeString, MaxLength: 256}, "string(256)"},
		{"list", model.ParamDef{Type: model.TypeInt, List: true}, "list of int"},
		{"bounded list", model.ParamDef{Type: model.TypeString, TypeRef: "IPAddress", List: true, ListMaxLength: 64}, "list of IPAddress (64)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatParamType(&tt.param); got != tt.want {
				t.Errorf("FormatParamType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatConstraints(t *testing.T) {
	tests := []struct {
		name  string
		param model.ParamDef
		want  string
	}{
		{"none", model.ParamDef{}, ""},
		{"min only", model.ParamDef{MinValue: model.Int64(-1)}, "[-1:]"},
		{"range", model.ParamDef{MinValue: model.Int64(1), MaxValue: model.Int64(1540)}, "[1:1540]"},
		{"enum", model.ParamDef{Enumeration: []string{"HTTP", "HTTPS"}}, "{HTTP|HTTPS}"},
		{"pattern", model.ParamDef{Pattern: "[0-9A-F]{6}"}, "/[0-9A-F]{6}/"},
		{"guarded", model.ParamDef{WritableIf: "StaticRoute"}, "writable if StaticRoute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatConstraints(&tt.param); got != tt.want {
				t.Errorf("FormatConstraints = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatParamTable(t *testing.T) {
	f := NewFormatter()

	if got := f.FormatParamTable(nil); got != "  (no parameters)\n" {
		t.Errorf("empty table = %q", got)
	}

	got := f.FormatParamTable([]ParamRow{
		{Name: "Enable", Value: "true", Type: "boolean", Access: "read-write"},
		{Name: "Status", Value: `"Disabled"`, Type: "string", Access: "read-only"},
	})
	want := "  Enable = true (boolean, read-write)\n  Status = \"Disabled\" (string, read-only)\n"
	if got != want {
		t.Errorf("FormatParamTable = %q, want %q", got, want)
	}

	f.ShowMetadata = false
	got = f.FormatParamTable([]ParamRow{{Name: "Enable", Value: "true", Type: "boolean"}})
	if got != "  Enable = true\n" {
		t.Errorf("without metadata = %q", got)
	}
}

func TestFormatObject(t *testing.T) {
	insp, _ := newTestInspector(t)
	info, err := insp.InspectObject("Device.DynamicDNS.Client.1.")
	if err != nil {
		t.Fatalf("InspectObject error = %v", err)
	}

	out := NewFormatter().FormatObject(info)
	if !strings.HasPrefix(out, "Device.DynamicDNS.Client.1.\n") {
		t.Errorf("missing header:\n%s", out)
	}
	for _, want := range []string{
		`Username                = "alice" (string(256), read-write)`,
		`Password                = (hidden)`,
		`Alias                   = "home" (Alias, read-write)`,
		`HostnameNumberOfEntries = 0 (unsignedInt, read-only)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTree(t *testing.T) {
	insp, _ := newTestInspector(t)
	infos, err := insp.InspectTree()
	if err != nil {
		t.Fatalf("InspectTree error = %v", err)
	}

	out := NewFormatter().FormatTree(infos)
	if strings.Count(out, "Device.DynamicDNS.Client.") != 4 {
		t.Errorf("expected 4 client object headers:\n%s", out)
	}
}

func TestFormatDefinition(t *testing.T) {
	f := NewFormatter()
	out := f.FormatDefinition(tr181.IPv4ForwardingObject)

	for _, want := range []string{
		"Device.Routing.Router.{i}.IPv4Forwarding.{i}. (TR-181 ",
		"Table: read-write, entries 0..unbounded",
		"Parameters:",
		"ForwardingMetric int read-write [-1:] writable if StaticRoute default=-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Children:") {
		t.Errorf("IPv4Forwarding has no children:\n%s", out)
	}

	out = f.FormatDefinition(tr181.DynamicDNSClientObject)
	if !strings.Contains(out, "Hostname.{i}. (in Hostnames)") {
		t.Errorf("missing wrapped child:\n%s", out)
	}
	if !strings.Contains(out, "Unique keys: Alias, Server+Username") {
		t.Errorf("missing unique keys:\n%s", out)
	}

	out = f.FormatDefinition(tr104v2.VoiceServiceObject)
	if !strings.Contains(out, "CallControl. excludes Interwork") {
		t.Errorf("missing exclusive group:\n%s", out)
	}
}

func TestFormatDefinitionDescriptions(t *testing.T) {
	f := NewFormatter()
	f.ShowDescriptions = true
	out := f.FormatDefinition(tr181.DynamicDNSClientObject)
	if !strings.Contains(out, "      The username of the service account.\n") {
		t.Errorf("missing description:\n%s", out)
	}
}

func TestFormatterIndent(t *testing.T) {
	f := NewFormatter()
	if got := f.Indent(2, "x"); got != "    x" {
		t.Errorf("Indent = %q", got)
	}
	f.IndentWidth = 0
	if got := f.Indent(1, "x"); got != "  x" {
		t.Errorf("Indent with zero width = %q", got)
	}
}
