package tr196

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/cwmp-go/tr069/pkg/model"
)

func TestFAPServiceDefaults(t *testing.T) {
	s := NewFAPService()

	if s.DeviceType != "Standalone" {
		t.Errorf("expected DeviceType Standalone, got %q", s.DeviceType)
	}
	if s.Capabilities.UMTS.DuplexMode != "FDDMode" {
		t.Errorf("expected DuplexMode FDDMode, got %q", s.Capabilities.UMTS.DuplexMode)
	}
	if s.FAPControl.UMTS.PMReportingInterval != 900 {
		t.Errorf("expected PMReportingInterval 900, got %d", s.FAPControl.UMTS.PMReportingInterval)
	}
	if s.FAPControl.UMTS.AdminState {
		t.Error("expected AdminState false")
	}
}

func TestFAPServiceXML(t *testing.T) {
	s := NewFAPService().WithAlias("femto")
	s.FAPControl.UMTS.Gateway.WithSecGWServer1("secgw.example.com")
	s.Capabilities.UMTS.WithFDDBandsSupported("I", "II")

	out, err := xml.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"<Capabilities><GPSEquipped>false</GPSEquipped>",
		"<FDDBandsSupported>I,II</FDDBandsSupported>",
		"<FAPControl><UMTS><OpState>false</OpState>",
		"<Gateway><SecGWServer1>secgw.example.com</SecGWServer1>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	back := NewFAPService()
	if err := xml.Unmarshal(out, back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.FAPControl.UMTS.Gateway.SecGWServer1 != "secgw.example.com" {
		t.Errorf("expected SecGWServer1 round trip, got %q", back.FAPControl.UMTS.Gateway.SecGWServer1)
	}
}

func TestWalk(t *testing.T) {
	var paths []string
	err := model.Walk(NewFAPService(), "Device.Services.FAPService.1.", func(path string, _ model.Object) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{
		"Device.Services.FAPService.1.",
		"Device.Services.FAPService.1.Capabilities.",
		"Device.Services.FAPService.1.Capabilities.UMTS.",
		"Device.Services.FAPService.1.FAPControl.",
		"Device.Services.FAPService.1.FAPControl.UMTS.",
		"Device.Services.FAPService.1.FAPControl.UMTS.Gateway.",
	}
	if strings.Join(paths, " ") != strings.Join(want, " ") {
		t.Errorf("unexpected paths:\n got %v\nwant %v", paths, want)
	}
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	children, err := r.Children(FAPServiceObject.Path)
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	if len(children) != 2 || children[0] != FAPCapabilitiesObject || children[1] != FAPControlObject {
		t.Errorf("unexpected children: %v", children)
	}
}
