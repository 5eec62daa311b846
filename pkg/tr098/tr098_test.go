package tr098

import (
	"encoding/hex"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

func TestForwardingDefaults(t *testing.T) {
	f := NewForwarding()

	if f.Enable {
		t.Error("expected Enable false")
	}
	if f.Status != "Disabled" {
		t.Errorf("expected Status Disabled, got %q", f.Status)
	}
	if !f.StaticRoute {
		t.Error("expected StaticRoute true")
	}
	if f.Type != "Host" {
		t.Errorf("expected Type Host, got %q", f.Type)
	}
	if f.ForwardingMetric != -1 {
		t.Errorf("expected ForwardingMetric -1, got %d", f.ForwardingMetric)
	}
	if f.ForwardingPolicy != -1 {
		t.Errorf("expected ForwardingPolicy -1, got %d", f.ForwardingPolicy)
	}
}

func TestForwardingDefaultRoute(t *testing.T) {
	f := NewForwarding().
		WithEnable(true).
		WithDestIPAddress("0.0.0.0").
		WithDestSubnetMask("0.0.0.0")

	if !f.Enable {
		t.Error("expected Enable true")
	}
	if f.DestIPAddress != "0.0.0.0" {
		t.Errorf("expected DestIPAddress 0.0.0.0, got %q", f.DestIPAddress)
	}
	if f.DestSubnetMask != "0.0.0.0" {
		t.Errorf("expected DestSubnetMask 0.0.0.0, got %q", f.DestSubnetMask)
	}
}

func TestForwardingMetricRoundTrip(t *testing.T) {
	for _, v := range []int32{-1, 0, 1 << 30} {
		f := NewForwarding()
		f.ForwardingMetric = v
		if f.ForwardingMetric != v {
			t.Errorf("field: expected %d, got %d", v, f.ForwardingMetric)
		}
		if got := f.WithForwardingMetric(v).ForwardingMetric; got != v {
			t.Errorf("WithForwardingMetric: expected %d, got %d", v, got)
		}
	}
}

func TestFluentReturnsReceiver(t *testing.T) {
	l := NewLayer3Forwarding()
	if l.WithDefaultConnectionService("x") != l {
		t.Error("WithDefaultConnectionService returned a different instance")
	}
	if l.WithForwarding(*NewForwarding()) != l {
		t.Error("WithForwarding returned a different instance")
	}

	w := NewWANPPPConnection()
	if w.WithDNSServers("192.0.2.1") != w {
		t.Error("WithDNSServers returned a different instance")
	}
	if w.WithStats(*NewWANPPPConnectionStats()) != w {
		t.Error("WithStats returned a different instance")
	}
}

func TestLazyCollections(t *testing.T) {
	l := &Layer3Forwarding{}
	if got := l.GetForwarding(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil table, got %#v", got)
	}

	w := &WANPPPConnection{}
	if got := w.GetDNSServers(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}

	wlan := &WLANConfiguration{}
	if got := wlan.GetPreSharedKey(); got == nil {
		t.Error("expected non-nil PreSharedKey table")
	}
	if got := wlan.GetPossibleChannels(); got == nil {
		t.Error("expected non-nil PossibleChannels list")
	}
}

func TestWithForwardingAppends(t *testing.T) {
	l := NewLayer3Forwarding().
		WithForwarding(*NewForwarding().WithDestIPAddress("10.0.0.0")).
		WithForwarding(*NewForwarding().WithDestIPAddress("10.1.0.0"))

	if len(l.Forwarding) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(l.Forwarding))
	}
	if l.Forwarding[0].DestIPAddress == l.Forwarding[1].DestIPAddress {
		t.Error("expected distinct entries")
	}
}

func TestLayer3ForwardingXML(t *testing.T) {
	l := NewLayer3Forwarding().
		WithForwardNumberOfEntries(2).
		WithForwarding(
			*NewForwarding().WithEnable(true).WithDestIPAddress("0.0.0.0").WithDestSubnetMask("0.0.0.0"),
			*NewForwarding().WithDestIPAddress("192.168.1.0").WithDestSubnetMask("255.255.255.0"),
		)
	l.Forwarding[0].InstanceNumber = 1
	l.Forwarding[1].InstanceNumber = 2

	out, err := xml.Marshal(l)
	require.NoError(t, err)
	text := string(out)

	// Table rows repeat without a wrapper element.
	assert.Equal(t, 2, strings.Count(text, "<Forwarding "))
	assert.Contains(t, text, `<Forwarding instance="1">`)
	assert.NotContains(t, text, "<Forwardings>")
	assert.Contains(t, text, "<ForwardingMetric>-1</ForwardingMetric>")

	var back Layer3Forwarding
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Len(t, back.Forwarding, 2)
	assert.Equal(t, uint32(2), back.Forwarding[1].InstanceNumber)
	assert.Equal(t, types.IPv4Address("255.255.255.0"), back.Forwarding[1].DestSubnetMask)
	assert.True(t, back.Forwarding[0].Enable)
	assert.Equal(t, int32(-1), back.Forwarding[0].ForwardingMetric)
}

func TestWANPPPConnectionXML(t *testing.T) {
	w := NewWANPPPConnection().WithDNSServers("192.0.2.1", "192.0.2.2")
	w.Stats.EthernetBytesSent = 1500

	out, err := xml.Marshal(w)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "<DNSServers>192.0.2.1,192.0.2.2</DNSServers>")
	assert.Contains(t, text, "<Stats><EthernetBytesSent>1500</EthernetBytesSent>")

	var back WANPPPConnection
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.Equal(t, types.IPAddressList{"192.0.2.1", "192.0.2.2"}, back.DNSServers)
	assert.Equal(t, types.StatsCounter32(1500), back.Stats.EthernetBytesSent)
}

func TestDerivePreSharedKey(t *testing.T) {
	tests := []struct {
		passphrase string
		ssid       string
		want       string
	}{
		{"password", "IEEE", "f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e"},
		{"ThisIsAPassword", "ThisIsASSID", "0dc0d6eb90555ed6419756b9a15ec3e3209b63df707dd508d14581f8982721af"},
	}

	for _, tt := range tests {
		t.Run(tt.ssid, func(t *testing.T) {
			key, err := DerivePreSharedKey(tt.passphrase, tt.ssid)
			if err != nil {
				t.Fatalf("DerivePreSharedKey failed: %v", err)
			}
			if got := hex.EncodeToString(key); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDerivePreSharedKeyErrors(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		ssid       string
		want       error
	}{
		{"short", "1234567", "net", ErrPassphraseLength},
		{"long", strings.Repeat("a", 64), "net", ErrPassphraseLength},
		{"control", "pass\tword", "net", ErrPassphraseASCII},
		{"no ssid", "password", "", ErrSSIDEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DerivePreSharedKey(tt.passphrase, tt.ssid)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPreSharedKey(t *testing.T) {
	t.Run("KeyFromPassphrase", func(t *testing.T) {
		p := NewPreSharedKey().WithKeyPassphrase("password")
		key, err := p.Key("IEEE")
		if err != nil {
			t.Fatalf("Key failed: %v", err)
		}
		if len(key) != PreSharedKeyLength {
			t.Errorf("expected %d bytes, got %d", PreSharedKeyLength, len(key))
		}
	})

	t.Run("KeyExplicit", func(t *testing.T) {
		p := NewPreSharedKey().WithPreSharedKey(types.HexBinary{0x01, 0x02})
		key, err := p.Key("IEEE")
		if err != nil {
			t.Fatalf("Key failed: %v", err)
		}
		if hex.EncodeToString(key) != "0102" {
			t.Errorf("expected explicit key, got %x", key)
		}
	})

	t.Run("NoKey", func(t *testing.T) {
		if _, err := NewPreSharedKey().Key("IEEE"); !errors.Is(err, ErrNoKey) {
			t.Errorf("expected ErrNoKey, got %v", err)
		}
	})

	t.Run("CheckBothSet", func(t *testing.T) {
		p := NewPreSharedKey().
			WithPreSharedKey(types.HexBinary{0x01}).
			WithKeyPassphrase("password")
		if err := p.Check(); !errors.Is(err, model.ErrExclusiveParams) {
			t.Errorf("expected ErrExclusiveParams, got %v", err)
		}
	})

	t.Run("CheckOne", func(t *testing.T) {
		if err := NewPreSharedKey().WithKeyPassphrase("password").Check(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Len() != len(Objects()) {
		t.Errorf("expected %d objects, got %d", len(Objects()), r.Len())
	}

	def, err := r.Match("InternetGatewayDevice.Layer3Forwarding.Forwarding.3.")
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if def != ForwardingObject {
		t.Errorf("expected ForwardingObject, got %s", def.Name)
	}

	if err := Register(r); !errors.Is(err, model.ErrDuplicateObject) {
		t.Errorf("expected ErrDuplicateObject on second Register, got %v", err)
	}
}

func TestDescriptorsMatchTypes(t *testing.T) {
	for _, def := range Objects() {
		obj := def.New()
		if obj.ObjectDef() != def {
			t.Errorf("%s: New returned a node with another descriptor", def.Name)
			continue
		}
		for _, p := range def.Params {
			if _, err := model.ParamValue(obj, p.Name); err != nil {
				t.Errorf("%s.%s: %v", def.Name, p.Name, err)
			}
		}
		for _, c := range def.Children {
			if _, err := model.ChildEntries(obj, c.Name); err != nil {
				t.Errorf("%s.%s: %v", def.Name, c.Name, err)
			}
		}
	}
}
