package tr143

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

func TestDiagnosticsDefaults(t *testing.T) {
	d := NewDownloadDiagnostics()
	if d.DiagnosticsState != types.DiagnosticsNone {
		t.Errorf("expected DiagnosticsState None, got %q", d.DiagnosticsState)
	}
	if !d.BOMTime.IsUnknown() || !d.EOMTime.IsUnknown() {
		t.Error("expected unknown BOM/EOM times")
	}

	u := NewUDPEchoConfig()
	if u.Enable || u.EchoPlusEnabled {
		t.Error("expected echo server disabled")
	}
}

func TestDownloadThroughput(t *testing.T) {
	bom := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d := NewDownloadDiagnostics().
		WithDiagnosticsState(types.DiagnosticsCompleted).
		WithBOMTime(types.NewDateTime(bom)).
		WithEOMTime(types.NewDateTime(bom.Add(2 * time.Second))).
		WithTestBytesReceived(1_000_000)

	elapsed, ok := d.Duration()
	if !ok || elapsed != 2*time.Second {
		t.Fatalf("expected 2s, got %v (ok=%v)", elapsed, ok)
	}
	bps, ok := d.Throughput()
	if !ok || bps != 4_000_000 {
		t.Errorf("expected 4000000 bit/s, got %v (ok=%v)", bps, ok)
	}
}

func TestThroughputNotCompleted(t *testing.T) {
	tests := []struct {
		name string
		diag *UploadDiagnostics
	}{
		{"requested", NewUploadDiagnostics().WithDiagnosticsState(types.DiagnosticsRequested)},
		{"error", NewUploadDiagnostics().WithDiagnosticsState(types.DiagnosticsErrorNoResponse)},
		{"no times", NewUploadDiagnostics().WithDiagnosticsState(types.DiagnosticsCompleted)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.diag.Throughput(); ok {
				t.Error("expected no throughput")
			}
		})
	}
}

func TestUploadXML(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	u := NewUploadDiagnostics().
		WithDiagnosticsState(types.DiagnosticsRequested).
		WithUploadURL("http://speed.example.com/upload").
		WithROMTime(types.NewDateTime(at))

	out, err := xml.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"<DiagnosticsState>Requested</DiagnosticsState>",
		"<ROMTime>2024-03-01T12:00:00Z</ROMTime>",
		"<BOMTime>0001-01-01T00:00:00Z</BOMTime>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	var back UploadDiagnostics
	if err := xml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.ROMTime.Equal(at) {
		t.Errorf("expected ROMTime %v, got %v", at, back.ROMTime)
	}
	if back.DiagnosticsState != types.DiagnosticsRequested {
		t.Errorf("expected Requested, got %q", back.DiagnosticsState)
	}
}

func TestUDPEchoCounters(t *testing.T) {
	u := NewUDPEchoConfig()
	u.WithPacketsReceived(u.PacketsReceived.Add(3))

	v, err := model.ParamValue(u, "PacketsReceived")
	if err != nil {
		t.Fatalf("ParamValue failed: %v", err)
	}
	if v != "3" {
		t.Errorf("expected 3, got %q", v)
	}
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("expected 3 objects, got %d", r.Len())
	}
	p, err := DownloadDiagnosticsObject.Param("DiagnosticsState")
	if err != nil {
		t.Fatalf("Param failed: %v", err)
	}
	if p.TypeRef != "DiagnosticsState" {
		t.Errorf("expected TypeRef DiagnosticsState, got %q", p.TypeRef)
	}
}
