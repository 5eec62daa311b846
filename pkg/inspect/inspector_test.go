package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr104v2"
	"github.com/cwmp-go/tr069/pkg/tr181"
	"github.com/cwmp-go/tr069/pkg/types"
)

// createTestTree builds a DynamicDNS tree with two clients.
func createTestTree() *tr181.DynamicDNS {
	ddns := tr181.NewDynamicDNS().
		WithClient(
			*tr181.NewDynamicDNSClient().
				WithAlias("home").
				WithUsername("alice").
				WithPassword("secret").
				WithHostname(
					*tr181.NewDynamicDNSHostname().WithName("a.example.com"),
					*tr181.NewDynamicDNSHostname().WithName("b.example.com"),
				),
			*tr181.NewDynamicDNSClient().WithAlias("office"),
		).
		WithServer(*tr181.NewDynamicDNSServer().WithName("dyn"))
	ddns.Client[1].InstanceNumber = 5
	return ddns
}

func newTestInspector(t *testing.T) (*Inspector, *tr181.DynamicDNS) {
	t.Helper()
	ddns := createTestTree()
	insp, err := NewInspector(ddns, "")
	if err != nil {
		t.Fatalf("NewInspector failed: %v", err)
	}
	return insp, ddns
}

func TestNewInspector(t *testing.T) {
	insp, ddns := newTestInspector(t)
	if insp.Root() != model.Object(ddns) {
		t.Error("Root() should return the inspected object")
	}
	if insp.RootPath() != "Device.DynamicDNS." {
		t.Errorf("RootPath() = %q", insp.RootPath())
	}
}

func TestNewInspectorRootPath(t *testing.T) {
	client := tr181.NewDynamicDNSClient()

	if _, err := NewInspector(client, ""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("template root: error = %v, want ErrInvalidPath", err)
	}
	if _, err := NewInspector(client, "Device.DynamicDNS.Server.1."); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("mismatched root: error = %v, want ErrInvalidPath", err)
	}

	insp, err := NewInspector(client.WithUsername("bob"), "Device.DynamicDNS.Client.2.")
	if err != nil {
		t.Fatalf("NewInspector failed: %v", err)
	}
	got, err := insp.Get("Device.DynamicDNS.Client.2.Username")
	if err != nil || got != "bob" {
		t.Errorf("Get = (%q, %v), want bob", got, err)
	}
}

func TestInspectorGet(t *testing.T) {
	insp, _ := newTestInspector(t)

	tests := []struct {
		path string
		want string
	}{
		{"Device.DynamicDNS.Client.1.Username", "alice"},
		{"Device.DynamicDNS.Client.[office].Alias", "office"},
		{"Device.DynamicDNS.Client.5.Status", "Disabled"},
		{"Device.DynamicDNS.Client.1.Hostname.2.Name", "b.example.com"},
		{"Device.DynamicDNS.Client.[home].Hostname.1.Enable", "false"},
		{"Device.DynamicDNS.Server.1.Name", "dyn"},
		{"dev.DynamicDNS.Client.1.Username", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := insp.Get(tt.path)
			if err != nil {
				t.Fatalf("Get error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInspectorGetHidden(t *testing.T) {
	insp, ddns := newTestInspector(t)

	got, err := insp.Get("Device.DynamicDNS.Client.1.Password")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if got != "" {
		t.Errorf("hidden parameter read back as %q", got)
	}
	if ddns.Client[0].Password != "secret" {
		t.Error("the stored password should be untouched")
	}
}

func TestInspectorGetErrors(t *testing.T) {
	insp, _ := newTestInspector(t)

	tests := []struct {
		path string
		want error
	}{
		{"Device.DynamicDNS.Client.2.Username", ErrInstanceNotFound},
		{"Device.DynamicDNS.Client.[cellar].Username", ErrInstanceNotFound},
		{"Device.DynamicDNS.Client.Username", ErrInvalidPath},
		{"Device.DynamicDNS.Client.1.Nope", model.ErrParamNotFound},
		{"Device.DynamicDNS.Tunnel.1.Enable", ErrObjectNotFound},
		{"Device.Routing.Router.1.Enable", ErrOutsideRoot},
		{"Device.DynamicDNS.Client.1.", ErrNotAParameter},
		{"Device..", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := insp.Get(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Get(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestInspectorSet(t *testing.T) {
	insp, ddns := newTestInspector(t)

	if err := insp.Set("Device.DynamicDNS.Client.[home].Enable", "true"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if !ddns.Client[0].Enable {
		t.Error("Set did not update the tree")
	}

	if err := insp.Set("Device.DynamicDNS.Client.1.Hostname.1.Name", "c.example.com"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if ddns.Client[0].Hostname[0].Name != "c.example.com" {
		t.Errorf("Hostname name = %q", ddns.Client[0].Hostname[0].Name)
	}

	if err := insp.Set("Device.DynamicDNS.Server.1.ServerPort", "70000"); !errors.Is(err, model.ErrParamOutOfRange) {
		t.Errorf("out of range: error = %v", err)
	}
	if err := insp.Set("Device.DynamicDNS.Client.1.Status", "Sleeping"); !errors.Is(err, model.ErrParamEnumeration) {
		t.Errorf("enumeration: error = %v", err)
	}
	if err := insp.Set("Device.DynamicDNS.Client.1.Enable", "yes"); !errors.Is(err, model.ErrParamValueType) {
		t.Errorf("type: error = %v", err)
	}
}

func TestInspectorSetTypedSyntax(t *testing.T) {
	route := tr181.NewIPv4Forwarding()
	insp, err := NewInspector(route, "Device.Routing.Router.1.IPv4Forwarding.1.")
	if err != nil {
		t.Fatalf("NewInspector failed: %v", err)
	}
	base := "Device.Routing.Router.1.IPv4Forwarding.1."

	if err := insp.Set(base+"DestIPAddress", "10.1.0.0"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := insp.Set(base+"DestIPAddress", "not-an-ip"); !errors.Is(err, types.ErrInvalidIPAddress) {
		t.Errorf("DestIPAddress: error = %v", err)
	}
	if route.DestIPAddress != "10.1.0.0" {
		t.Errorf("refused write changed DestIPAddress to %q", route.DestIPAddress)
	}
	if err := insp.Set(base+"Alias", "9lives"); !errors.Is(err, types.ErrInvalidAlias) {
		t.Errorf("Alias: error = %v", err)
	}
}

func TestInspectorResolveCanonical(t *testing.T) {
	insp, ddns := newTestInspector(t)

	p, _ := ParsePath("Device.DynamicDNS.Client.[office].")
	obj, canonical, err := insp.Resolve(p)
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if canonical != "Device.DynamicDNS.Client.5." {
		t.Errorf("canonical = %q", canonical)
	}
	if obj != model.Object(&ddns.Client[1]) {
		t.Error("Resolve should return the entry in place")
	}
}

func TestInspectorInspectObject(t *testing.T) {
	insp, _ := newTestInspector(t)

	info, err := insp.InspectObject("Device.DynamicDNS.Client.[home].")
	if err != nil {
		t.Fatalf("InspectObject error = %v", err)
	}
	if info.Path != "Device.DynamicDNS.Client.1." {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Def != tr181.DynamicDNSClientObject {
		t.Error("Def should be the client descriptor")
	}
	if len(info.Params) != len(tr181.DynamicDNSClientObject.Params) {
		t.Fatalf("got %d params, want %d", len(info.Params), len(tr181.DynamicDNSClientObject.Params))
	}
	for _, p := range info.Params {
		if p.Name == "Password" && p.Value != "" {
			t.Errorf("Password = %q, want masked", p.Value)
		}
		if p.Name == "Username" && p.Value != "alice" {
			t.Errorf("Username = %q", p.Value)
		}
	}

	if _, err := insp.InspectObject("Device.DynamicDNS.Client.1.Enable"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("parameter path: error = %v", err)
	}
}

func TestInspectorInspectTree(t *testing.T) {
	insp, _ := newTestInspector(t)

	infos, err := insp.InspectTree()
	if err != nil {
		t.Fatalf("InspectTree error = %v", err)
	}

	var paths []string
	for _, info := range infos {
		paths = append(paths, info.Path)
	}
	want := strings.Join([]string{
		"Device.DynamicDNS.",
		"Device.DynamicDNS.Client.1.",
		"Device.DynamicDNS.Client.1.Hostname.1.",
		"Device.DynamicDNS.Client.1.Hostname.2.",
		"Device.DynamicDNS.Client.5.",
		"Device.DynamicDNS.Server.1.",
	}, " ")
	if got := strings.Join(paths, " "); got != want {
		t.Errorf("paths = %s\nwant %s", got, want)
	}
}

func TestInspectorUnionChild(t *testing.T) {
	v := tr104v2.NewVoiceService().WithInterwork(*tr104v2.NewInterwork().WithInterworkName("pbx"))
	insp, err := NewInspector(v, "Device.Services.VoiceService.1.")
	if err != nil {
		t.Fatalf("NewInspector failed: %v", err)
	}

	got, err := insp.Get("Device.Services.VoiceService.1.Interwork.1.InterworkName")
	if err != nil || got != "pbx" {
		t.Errorf("Get = (%q, %v), want pbx", got, err)
	}

	// CallControl is absent while Interwork is selected.
	if _, err := insp.InspectObject("Device.Services.VoiceService.1.CallControl."); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("absent CallControl: error = %v", err)
	}
}
