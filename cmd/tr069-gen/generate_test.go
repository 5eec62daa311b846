package main

import (
	"go/format"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cwmp-go/tr069/pkg/specparse"
)

const testModule = "github.com/cwmp-go/tr069"

func routingPackage() *specparse.RawPackage {
	return &specparse.RawPackage{
		Name:     "tr098",
		Dir:      "pkg/tr098",
		Standard: "TR-098",
		Version:  "InternetGatewayDevice:1.4",
	}
}

const routingDefs = `
objects:
  - name: Layer3Forwarding
    path: InternetGatewayDevice.Layer3Forwarding.
    description: Layer 3 routing table.
    parameters:
      - name: DefaultConnectionService
        type: string
        access: readWrite
        maxLength: 256
        description: Specifies the default WAN interface.
      - name: ForwardNumberOfEntries
        type: unsignedInt
    children:
      - name: Forwarding
        object: Forwarding
        multi: true
  - name: Forwarding
    path: InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.
    access: readWrite
    numEntriesParameter: ForwardNumberOfEntries
    uniqueKeys: [[DestIPAddress, DestSubnetMask]]
    description: Forwarding table entry.
    parameters:
      - name: Enable
        type: boolean
        access: readWrite
        default: false
        description: Enables the entry.
      - name: Status
        type: string
        enum: [Disabled, Enabled, Error]
        default: Disabled
        description: Whether the entry is in use.
      - name: DestIPAddress
        type: IPv4Address
        access: readWrite
        writableIf: StaticRoute
      - name: StaticRoute
        type: boolean
        default: true
      - name: ForwardingMetric
        type: int
        access: readWrite
        min: -1
        default: -1
      - name: MTU
        type: unsignedInt
        access: readWrite
        min: 1
        max: 1540
      - name: LastChange
        type: dateTime
        default: "0001-01-01T00:00:00Z"
      - name: DNSServers
        type: IPAddress
        list: true
        listMaxLength: 64
        access: readWrite
    children:
      - name: Hostname
        object: Hostname
        multi: true
        style: wrapped
        wrapper: Hostnames
      - name: Stats
        object: Stats
  - name: Hostname
    path: InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.Hostname.{i}.
    parameters:
      - name: Name
        type: string
        notify: forceEnabled
  - name: Stats
    path: InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.Stats.
    parameters:
      - name: BytesSent
        type: StatsCounter64
`

func generateRouting(t *testing.T) map[string]string {
	t.Helper()
	f, err := specparse.ParseObjectFile([]byte(routingDefs))
	if err != nil {
		t.Fatalf("ParseObjectFile failed: %v", err)
	}
	if err := specparse.Check(f.Objects); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	files, err := GeneratePackage(testModule, routingPackage(), []DefFile{
		{Path: "defs/tr098/layer3_forwarding.yaml", Objects: f.Objects},
	})
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}
	return files
}

func TestGenerateFileNames(t *testing.T) {
	files := generateRouting(t)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if _, ok := files["layer3_forwarding_gen.go"]; !ok {
		t.Error("missing layer3_forwarding_gen.go")
	}
	if _, ok := files[objectsFile]; !ok {
		t.Error("missing objects_gen.go")
	}
}

func TestGenerateHeader(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	if !strings.HasPrefix(output, "// Code generated by tr069-gen. DO NOT EDIT.\n\npackage tr098\n") {
		t.Errorf("unexpected header:\n%s", truncate(output, 200))
	}
	mustContain(t, output, "import (\n\"encoding/xml\"\n\n\"github.com/cwmp-go/tr069/pkg/model\"\n\"github.com/cwmp-go/tr069/pkg/types\"\n)")
}

func TestGenerateStruct(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	mustContain(t, output, "// Forwarding is forwarding table entry.\n//\n// Object: InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.\ntype Forwarding struct {")
	mustContain(t, output, "InstanceNumber uint32 `xml:\"instance,attr,omitempty\"`")
	mustContain(t, output, "// Enable enables the entry.\nEnable bool `xml:\"Enable\"`")
	mustContain(t, output, "// Status reports whether the entry is in use.")
	mustContain(t, output, "Status string `xml:\"Status\" validate:\"omitempty,oneof=Disabled Enabled Error\"`")
	mustContain(t, output, "DestIPAddress types.IPv4Address `xml:\"DestIPAddress\" validate:\"cwmp\"`")
	mustContain(t, output, "ForwardingMetric int32 `xml:\"ForwardingMetric\" validate:\"min=-1\"`")
	mustContain(t, output, "MTU uint32 `xml:\"MTU\" validate:\"omitempty,min=1,max=1540\"`")
	mustContain(t, output, "DNSServers types.IPAddressList `xml:\"DNSServers\" validate:\"listlen=64,cwmp\"`")
	mustContain(t, output, "// Hostname holds the Hostname table entries.\nHostname ForwardingHostnames `xml:\"Hostnames,omitempty\"`")
	mustContain(t, output, "Stats Stats `xml:\"Stats\" validate:\"-\"`")
	mustContain(t, output, "// Forwarding holds the Forwarding table entries.\nForwarding []Forwarding `xml:\"Forwarding,omitempty\"`")

	// Single objects have no instance number.
	stats := output[strings.Index(output, "type Stats struct"):]
	mustNotContain(t, stats[:strings.Index(stats, "}")], "InstanceNumber")
}

func TestGenerateWrappedTable(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	mustContain(t, output, "// ForwardingHostnames holds the Hostname entries of a Forwarding. It encodes\n// as one Hostnames element, left out when the table is empty.\ntype ForwardingHostnames []Hostname\n")
	mustContain(t, output, "func (t ForwardingHostnames) MarshalXML(e *xml.Encoder, start xml.StartElement) error {\nif len(t) == 0 {\nreturn nil\n}")
	mustContain(t, output, "entry := xml.StartElement{Name: xml.Name{Local: \"Hostname\"}}")
	mustContain(t, output, "func (t *ForwardingHostnames) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {")
	mustContain(t, output, "Entries []Hostname `xml:\"Hostname\"`")

	// Accessors keep the plain slice type.
	mustContain(t, output, "func (f *Forwarding) GetHostname() []Hostname {\nif f.Hostname == nil {\nf.Hostname = []Hostname{}\n}")

	// Repeated tables need no wrapper type.
	mustNotContain(t, output, "type Layer3ForwardingForwarding")
}

func TestGenerateConstructor(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	mustContain(t, output, "func NewForwarding() *Forwarding {\nreturn &Forwarding{\n")
	mustContain(t, output, "Enable: false,\n")
	mustContain(t, output, "Status: \"Disabled\",\n")
	mustContain(t, output, "StaticRoute: true,\n")
	mustContain(t, output, "ForwardingMetric: -1,\n")
	mustContain(t, output, "LastChange: types.UnknownTime,\n")
	mustContain(t, output, "Stats: *NewStats(),\n")
	mustContain(t, output, "func NewHostname() *Hostname {\nreturn &Hostname{}\n}")
}

func TestGenerateAccessors(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	mustContain(t, output, "func (f *Forwarding) WithEnable(value bool) *Forwarding {\nf.Enable = value\nreturn f\n}")
	mustContain(t, output, "func (f *Forwarding) GetDNSServers() types.IPAddressList {\nif f.DNSServers == nil {\nf.DNSServers = types.IPAddressList{}\n}")
	mustContain(t, output, "func (f *Forwarding) WithDNSServers(values ...types.IPAddress) *Forwarding {\nf.DNSServers = append(f.GetDNSServers(), values...)")
	mustContain(t, output, "func (f *Forwarding) GetHostname() []Hostname {")
	mustContain(t, output, "func (f *Forwarding) WithHostname(entries ...Hostname) *Forwarding {")
	mustContain(t, output, "func (f *Forwarding) WithStats(value Stats) *Forwarding {")
	mustContain(t, output, "func (l *Layer3Forwarding) WithForwarding(entries ...Forwarding) *Layer3Forwarding {")
}

func TestGenerateDescriptor(t *testing.T) {
	output := generateRouting(t)["layer3_forwarding_gen.go"]

	mustContain(t, output, "var ForwardingObject = &model.ObjectDef{\nPath: \"InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.\",\nStandard: model.StandardTR098,\n")
	mustContain(t, output, "MinEntries: 0,\nMaxEntries: model.Unbounded,\n")
	mustContain(t, output, "NumEntriesParameter: \"ForwardNumberOfEntries\",")
	mustContain(t, output, "UniqueKeys: [][]string{{\"DestIPAddress\", \"DestSubnetMask\"}},")
	mustContain(t, output, `{Name: "ForwardingMetric", Field: "ForwardingMetric", Type: model.TypeInt, Access: model.AccessReadWrite, MinValue: model.Int64(-1), Default: int32(-1)},`)
	mustContain(t, output, `{Name: "DestIPAddress", Field: "DestIPAddress", Type: model.TypeString, TypeRef: "IPv4Address", Access: model.AccessReadWrite, WritableIf: "StaticRoute"},`)
	mustContain(t, output, `{Name: "DNSServers", Field: "DNSServers", Type: model.TypeString, TypeRef: "IPAddress", List: true, ListMaxLength: 64, Access: model.AccessReadWrite},`)
	mustContain(t, output, `{Name: "Name", Field: "Name", Type: model.TypeString, Access: model.AccessReadOnly, Notify: model.NotifyForceEnabled},`)
	mustContain(t, output, `{Name: "Hostname", Field: "Hostname", Object: "InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.Hostname.{i}.", Multi: true, Style: model.StyleWrapped, Wrapper: "Hostnames"},`)
	mustContain(t, output, `{Name: "Stats", Field: "Stats", Object: "InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.Stats."},`)
	mustContain(t, output, "New: func() model.Object { return NewForwarding() },\n}")
	mustContain(t, output, "func (*Forwarding) ObjectDef() *model.ObjectDef {\nreturn ForwardingObject\n}")

	// Single objects report exactly one instance.
	mustContain(t, output, "var StatsObject = &model.ObjectDef{")
	stats := output[strings.Index(output, "var StatsObject"):]
	mustContain(t, stats, "MinEntries: 1,\nMaxEntries: 1,\n")
}

func TestGenerateObjectsFile(t *testing.T) {
	output := generateRouting(t)[objectsFile]

	mustContain(t, output, "package tr098")
	mustContain(t, output, "Layer3ForwardingObject,\nForwardingObject,\nHostnameObject,\nStatsObject,\n")
	mustContain(t, output, "func Register(r *model.Registry) error {")
	mustNotContain(t, output, "pkg/types")
}

func TestGenerateNoTypesImport(t *testing.T) {
	f, err := specparse.ParseObjectFile([]byte(`
objects:
  - name: Plain
    path: Device.Plain.
    parameters:
      - name: Enable
        type: boolean
`))
	if err != nil {
		t.Fatalf("ParseObjectFile failed: %v", err)
	}
	files, err := GeneratePackage(testModule, routingPackage(), []DefFile{{Path: "plain.yaml", Objects: f.Objects}})
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}

	output := files["plain_gen.go"]
	mustContain(t, output, "import \"github.com/cwmp-go/tr069/pkg/model\"")
	mustNotContain(t, output, "pkg/types")
	mustNotContain(t, output, "encoding/xml")
	mustContain(t, output, "// Plain is a managed object.")
}

func TestGenerateUnion(t *testing.T) {
	f, err := specparse.ParseObjectFile([]byte(`
objects:
  - name: VoiceService
    path: Device.Services.VoiceService.{i}.
    exclusive: [[CallControl, Interwork]]
    union:
      field: control
      type: Control
      description: Holds either the call control or the interwork entries.
    children:
      - name: CallControl
        object: CallControl
        manual: true
      - name: Interwork
        object: Interwork
        multi: true
        manual: true
  - name: CallControl
    path: Device.Services.VoiceService.{i}.CallControl.
  - name: Interwork
    path: Device.Services.VoiceService.{i}.Interwork.{i}.
`))
	if err != nil {
		t.Fatalf("ParseObjectFile failed: %v", err)
	}
	pkg := routingPackage()
	pkg.Standard = "TR-104"
	files, err := GeneratePackage(testModule, pkg, []DefFile{{Path: "voice_service.yaml", Objects: f.Objects}})
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}

	output := files["voice_service_gen.go"]
	mustContain(t, output, "// control holds either the call control or the interwork entries.\ncontrol Control\n}")
	mustContain(t, output, `Exclusive: [][]string{{"CallControl", "Interwork"}},`)
	mustContain(t, output, `{Name: "Interwork", Field: "Interwork", Object: "Device.Services.VoiceService.{i}.Interwork.{i}.", Multi: true},`)
	mustNotContain(t, output, "WithCallControl")
	mustNotContain(t, output, "CallControl CallControl")
	mustNotContain(t, output, "GetInterwork")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  specparse.RawObjectDef
		want string
	}{
		{
			name: "list type",
			obj: specparse.RawObjectDef{Name: "X", Path: "Device.X.", Parameters: []specparse.RawParameterDef{
				{Name: "Times", Type: "dateTime", List: true},
			}},
			want: "no list type",
		},
		{
			name: "boolean default",
			obj: specparse.RawObjectDef{Name: "X", Path: "Device.X.", Parameters: []specparse.RawParameterDef{
				{Name: "Enable", Type: "boolean", Default: "yes"},
			}},
			want: "not a boolean",
		},
		{
			name: "integer default",
			obj: specparse.RawObjectDef{Name: "X", Path: "Device.X.", Parameters: []specparse.RawParameterDef{
				{Name: "Port", Type: "unsignedInt", Default: "80"},
			}},
			want: "not an integer",
		},
		{
			name: "time default",
			obj: specparse.RawObjectDef{Name: "X", Path: "Device.X.", Parameters: []specparse.RawParameterDef{
				{Name: "Time", Type: "dateTime", Default: "2020-01-01T00:00:00Z"},
			}},
			want: "unknown time",
		},
		{
			name: "unknown child",
			obj: specparse.RawObjectDef{Name: "X", Path: "Device.X.", Children: []specparse.RawChildDef{
				{Name: "Y", Object: "Y"},
			}},
			want: "unknown object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePackage(testModule, routingPackage(), []DefFile{{Path: "x.yaml", Objects: []specparse.RawObjectDef{tt.obj}}})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateUnknownStandard(t *testing.T) {
	pkg := routingPackage()
	pkg.Standard = "TR-999"
	_, err := GeneratePackage(testModule, pkg, []DefFile{{Path: "x.yaml", Objects: []specparse.RawObjectDef{{Name: "X", Path: "Device.X."}}}})
	if err == nil {
		t.Fatal("expected error for unknown standard")
	}
}

func TestGeneratedCodeParses(t *testing.T) {
	for name, output := range generateRouting(t) {
		if _, err := format.Source([]byte(output)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestGenerateShippedDefinitions(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	root := filepath.Join(filepath.Dir(thisFile), "..", "..")

	cfg, err := specparse.LoadConfig(filepath.Join(root, "defs", "tr069-gen.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	for i := range cfg.Packages {
		pkg := &cfg.Packages[i]
		t.Run(pkg.Name, func(t *testing.T) {
			defs, err := loadPackage(root, pkg)
			if err != nil {
				t.Fatalf("loadPackage failed: %v", err)
			}
			files, err := GeneratePackage(cfg.Module, pkg, defs)
			if err != nil {
				t.Fatalf("GeneratePackage failed: %v", err)
			}
			if len(files) != len(pkg.Files)+1 {
				t.Errorf("expected %d files, got %d", len(pkg.Files)+1, len(files))
			}
			for name, output := range files {
				if _, err := format.Source([]byte(output)); err != nil {
					t.Errorf("%s: %v", name, err)
				}
			}
		})
	}
}

func TestPhrase(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Enables the entry.", "enables the entry"},
		{"Whether the route is static.", "reports whether the route is static"},
		{"Forwarding table entry.", "is forwarding table entry"},
		{"IP address of the gateway.", "is IP address of the gateway"},
		{"", "is a managed object"},
	}
	for _, tt := range tests {
		if got := phrase(tt.desc); got != tt.want {
			t.Errorf("phrase(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

func TestWrapComment(t *testing.T) {
	text := strings.Repeat("word ", 30)
	lines := wrapComment(text, 1)
	if len(lines) < 2 {
		t.Fatalf("expected wrapped lines, got %d", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "// ") {
			t.Errorf("line %q lacks comment prefix", l)
		}
		if len(l)+1 > 78 {
			t.Errorf("line %q exceeds 78 columns", l)
		}
	}

	if got := wrapComment("short", 0); len(got) != 1 || got[0] != "// short" {
		t.Errorf("unexpected short wrap %v", got)
	}
}

func TestGenFileName(t *testing.T) {
	if got := genFileName("defs/tr181/dynamic_dns.yaml"); got != "dynamic_dns_gen.go" {
		t.Errorf("expected dynamic_dns_gen.go, got %s", got)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
