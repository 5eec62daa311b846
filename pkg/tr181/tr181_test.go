package tr181

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

func TestIPv4ForwardingDefaults(t *testing.T) {
	f := NewIPv4Forwarding()

	assert.False(t, f.Enable)
	assert.Equal(t, "Disabled", f.Status)
	assert.True(t, f.StaticRoute)
	assert.Equal(t, "Static", f.Origin)
	assert.Equal(t, int32(-1), f.ForwardingMetric)
	assert.Equal(t, int32(-1), f.ForwardingPolicy)
}

func TestIsDefaultRoute(t *testing.T) {
	tests := []struct {
		name string
		dest types.IPv4Address
		mask types.IPv4Address
		want bool
	}{
		{"default", "0.0.0.0", "0.0.0.0", true},
		{"empty mask", "0.0.0.0", "", true},
		{"network", "192.168.0.0", "255.255.0.0", false},
		{"any dest with mask", "0.0.0.0", "255.0.0.0", false},
		{"unset", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewIPv4Forwarding().WithDestIPAddress(tt.dest).WithDestSubnetMask(tt.mask)
			if got := f.IsDefaultRoute(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRouterDefaultRoute(t *testing.T) {
	r := NewRouter()
	if r.DefaultRoute() != nil {
		t.Fatal("expected no default route on an empty router")
	}

	r.WithIPv4Forwarding(
		*NewIPv4Forwarding().WithDestIPAddress("0.0.0.0").WithDestSubnetMask("0.0.0.0"),
		*NewIPv4Forwarding().WithEnable(true).WithDestIPAddress("10.0.0.0").WithDestSubnetMask("255.0.0.0"),
		*NewIPv4Forwarding().WithEnable(true).WithDestIPAddress("0.0.0.0").WithDestSubnetMask("0.0.0.0").WithGatewayIPAddress("10.0.0.1"),
	)

	got := r.DefaultRoute()
	require.NotNil(t, got)
	assert.Equal(t, types.IPv4Address("10.0.0.1"), got.GatewayIPAddress)

	// The result points into the table.
	got.ForwardingMetric = 5
	assert.Equal(t, int32(5), r.IPv4Forwarding[2].ForwardingMetric)
}

func TestLazyCollections(t *testing.T) {
	c := &DynamicDNSClient{}
	assert.NotNil(t, c.GetHostname())
	assert.Empty(t, c.GetHostname())

	p := &SampleSetParameter{}
	assert.NotNil(t, p.GetValues())
	assert.NotNil(t, p.GetSampleSeconds())
	assert.NotNil(t, p.GetSuspectData())

	h := &Host{}
	assert.NotNil(t, h.GetIPv4Address())
}

func TestFluentReturnsReceiver(t *testing.T) {
	c := NewDynamicDNSClient()
	assert.Same(t, c, c.WithEnable(true))
	assert.Same(t, c, c.WithHostname(*NewDynamicDNSHostname()))

	s := NewSampleSet()
	assert.Same(t, s, s.WithSampleSeconds(60))
	assert.Same(t, s, s.WithParameter(*NewSampleSetParameter()))
}

func TestWithAppends(t *testing.T) {
	c := NewDynamicDNSClient().
		WithHostname(*NewDynamicDNSHostname().WithName("a.example.com")).
		WithHostname(*NewDynamicDNSHostname().WithName("b.example.com"))

	require.Len(t, c.Hostname, 2)
	assert.NotEqual(t, c.Hostname[0].Name, c.Hostname[1].Name)
}

func TestDynamicDNSClientXML(t *testing.T) {
	c := NewDynamicDNSClient().
		WithEnable(true).
		WithAlias("home").
		WithHostname(
			*NewDynamicDNSHostname().WithName("a.example.com"),
			*NewDynamicDNSHostname().WithName("b.example.com"),
		)

	out, err := xml.Marshal(c)
	require.NoError(t, err)
	text := string(out)

	assert.Equal(t, 1, strings.Count(text, "<Hostnames>"))
	assert.Equal(t, 2, strings.Count(text, "<Hostname>"))
	assert.Contains(t, text, "<Hostnames><Hostname><Enable>false</Enable>")

	var back DynamicDNSClient
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Len(t, back.Hostname, 2)
	assert.Equal(t, "b.example.com", back.Hostname[1].Name)
	assert.Equal(t, types.Alias("home"), back.Alias)
}

func TestDynamicDNSClientXMLNoHostnames(t *testing.T) {
	out, err := xml.Marshal(NewDynamicDNSClient())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Hostnames")

	// An initialized but empty table is left out as well.
	c := NewDynamicDNSClient()
	c.GetHostname()
	out, err = xml.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Hostnames")

	var back DynamicDNSClient
	require.NoError(t, xml.Unmarshal([]byte(`<Client><Hostnames/></Client>`), &back))
	assert.Empty(t, back.Hostname)
}

func TestHostnamesElementAppends(t *testing.T) {
	doc := `<Client>
  <Hostnames><Hostname><Name>a.example.com</Name></Hostname></Hostnames>
  <Hostnames><Hostname><Name>b.example.com</Name></Hostname></Hostnames>
</Client>`

	var c DynamicDNSClient
	require.NoError(t, xml.Unmarshal([]byte(doc), &c))
	require.Len(t, c.Hostname, 2)
	assert.Equal(t, "a.example.com", c.Hostname[0].Name)
	assert.Equal(t, "b.example.com", c.Hostname[1].Name)
}

func TestSampleSetParameterXML(t *testing.T) {
	p := NewSampleSetParameter().
		WithReference("Device.DSL.Channel.1.Stats.BytesSent").
		WithSampleSeconds(60, 60, 30).
		WithSuspectData(0, 0, 1).
		WithValues("100", "250", "90")

	out, err := xml.Marshal(p)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "<SampleSeconds>60,60,30</SampleSeconds>")
	assert.Contains(t, text, "<SuspectData>0,0,1</SuspectData>")
	assert.Contains(t, text, "<Values>100,250,90</Values>")

	var back SampleSetParameter
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.Equal(t, types.UnsignedIntList{60, 60, 30}, back.SampleSeconds)
	assert.Equal(t, types.UnsignedIntList{0, 0, 1}, back.SuspectData)
	assert.Equal(t, types.StringList{"100", "250", "90"}, back.Values)
}

func TestDSLChannelStats(t *testing.T) {
	ch := NewDSLChannel()
	ch.Stats.BytesSent = 1 << 40
	ch.Stats.Total.XTURCRCErrors = 3
	ch.Stats.Showtime.XTUCFECErrors = 7

	out, err := xml.Marshal(ch)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "<BytesSent>1099511627776</BytesSent>")
	assert.Contains(t, text, "<Total><XTURFECErrors>0</XTURFECErrors>")

	var back DSLChannel
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.Equal(t, types.StatsCounter64(1<<40), back.Stats.BytesSent)
	assert.Equal(t, uint32(3), back.Stats.Total.XTURCRCErrors)
	assert.Equal(t, uint32(7), back.Stats.Showtime.XTUCFECErrors)
}

func TestWalkPaths(t *testing.T) {
	ddns := NewDynamicDNS().
		WithClient(
			*NewDynamicDNSClient().WithHostname(*NewDynamicDNSHostname()),
			*NewDynamicDNSClient(),
		).
		WithServer(*NewDynamicDNSServer())
	ddns.Client[1].InstanceNumber = 7

	var paths []string
	err := model.Walk(ddns, "Device.DynamicDNS.", func(path string, _ model.Object) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Device.DynamicDNS.",
		"Device.DynamicDNS.Client.1.",
		"Device.DynamicDNS.Client.1.Hostname.1.",
		"Device.DynamicDNS.Client.7.",
		"Device.DynamicDNS.Server.1.",
	}, paths)
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, Register(r))

	def, err := r.Match("Device.DynamicDNS.Client.[home].Hostname.2.")
	require.NoError(t, err)
	assert.Same(t, DynamicDNSHostnameObject, def)

	c, err := DynamicDNSClientObject.Child("Hostname")
	require.NoError(t, err)
	assert.Equal(t, model.StyleWrapped, c.Style)
	assert.Equal(t, "Hostnames", c.Wrapper)

	alias, err := IPv4ForwardingObject.Param("Alias")
	require.NoError(t, err)
	assert.Equal(t, "StaticRoute", alias.WritableIf)
}

func TestDescriptorsMatchTypes(t *testing.T) {
	for _, def := range Objects() {
		obj := def.New()
		require.Same(t, def, obj.ObjectDef(), def.Name)
		for _, p := range def.Params {
			_, err := model.ParamValue(obj, p.Name)
			assert.NoError(t, err, "%s.%s", def.Name, p.Name)
		}
		for _, c := range def.Children {
			_, err := model.ChildEntries(obj, c.Name)
			assert.NoError(t, err, "%s.%s", def.Name, c.Name)
		}
	}
}
