package tr104

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

func TestRedundancyDefaults(t *testing.T) {
	r := NewRedundancy()

	if r.Enable {
		t.Error("expected Enable false")
	}
	if r.PayloadType != 0 {
		t.Errorf("expected PayloadType 0, got %d", r.PayloadType)
	}
	if r.FaxAndModemRedundancy != -1 {
		t.Errorf("expected FaxAndModemRedundancy -1, got %d", r.FaxAndModemRedundancy)
	}
	if r.ModemRedundancy != -1 {
		t.Errorf("expected ModemRedundancy -1, got %d", r.ModemRedundancy)
	}
	if r.DTMFRedundancy != -1 {
		t.Errorf("expected DTMFRedundancy -1, got %d", r.DTMFRedundancy)
	}
	if r.VoiceRedundancy != -1 {
		t.Errorf("expected VoiceRedundancy -1, got %d", r.VoiceRedundancy)
	}
	if r.MaxSessionsUsingRedundancy != 0 {
		t.Errorf("expected MaxSessionsUsingRedundancy 0, got %d", r.MaxSessionsUsingRedundancy)
	}
}

func TestNestedDefaults(t *testing.T) {
	p := NewVoiceProfile()

	// Single children are created with the parent, defaults included.
	if p.RTP.Redundancy.FaxAndModemRedundancy != -1 {
		t.Errorf("expected nested Redundancy defaults, got %d", p.RTP.Redundancy.FaxAndModemRedundancy)
	}
	if p.Line != nil {
		t.Error("expected no lines before the first add")
	}
	if got := p.GetLine(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil Line table, got %#v", got)
	}
}

func TestFluentReturnsReceiver(t *testing.T) {
	s := NewVoiceService()
	if s.WithVoiceProfile(*NewVoiceProfile()) != s {
		t.Error("WithVoiceProfile returned a different instance")
	}

	c := NewCodec()
	if c.WithCodec("G.711MuLaw").WithPacketizationPeriod("10", "20") != c {
		t.Error("chained With returned a different instance")
	}
	if c.Codec != "G.711MuLaw" {
		t.Errorf("expected Codec G.711MuLaw, got %q", c.Codec)
	}
}

func TestWithLineAppends(t *testing.T) {
	p := NewVoiceProfile().
		WithLine(*NewLine().WithDirectoryNumber("100")).
		WithLine(*NewLine().WithDirectoryNumber("101"))

	if len(p.Line) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(p.Line))
	}
	if p.Line[0].DirectoryNumber != "100" || p.Line[1].DirectoryNumber != "101" {
		t.Errorf("unexpected lines: %q, %q", p.Line[0].DirectoryNumber, p.Line[1].DirectoryNumber)
	}
}

func TestVoiceServiceXML(t *testing.T) {
	s := NewVoiceService().
		WithVoiceProfile(*NewVoiceProfile().
			WithName("residential").
			WithLine(*NewLine().WithDirectoryNumber("100").WithPhyReferenceList("1", "2")))
	s.Capabilities.WithCodecs(*NewCodec().WithCodec("G.729"))

	out, err := xml.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"<Codecs><EntryID>",
		"<Name>residential</Name>",
		"<PhyReferenceList>1,2</PhyReferenceList>",
		"<FaxAndModemRedundancy>-1</FaxAndModemRedundancy>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	var back VoiceService
	if err := xml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back.VoiceProfile) != 1 || len(back.VoiceProfile[0].Line) != 1 {
		t.Fatalf("expected 1 profile with 1 line, got %+v", back.VoiceProfile)
	}
	line := back.VoiceProfile[0].Line[0]
	if line.DirectoryNumber != "100" {
		t.Errorf("expected DirectoryNumber 100, got %q", line.DirectoryNumber)
	}
	if got := line.PhyReferenceList; len(got) != 2 || got[1] != "2" {
		t.Errorf("expected PhyReferenceList [1 2], got %v", got)
	}
	if back.Capabilities.Codecs[0].Codec != "G.729" {
		t.Errorf("expected codec G.729, got %q", back.Capabilities.Codecs[0].Codec)
	}
}

func TestLineStatsCounters(t *testing.T) {
	l := NewLine()
	l.Stats.PacketsSent = l.Stats.PacketsSent.Add(10)
	if l.Stats.PacketsSent != types.StatsCounter32(10) {
		t.Errorf("expected 10, got %d", l.Stats.PacketsSent)
	}
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	def, err := r.Match("InternetGatewayDevice.Services.VoiceService.1.VoiceProfile.2.RTP.Redundancy.")
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if def != RedundancyObject {
		t.Errorf("expected RedundancyObject, got %s", def.Name)
	}
}

func TestDescriptorsMatchTypes(t *testing.T) {
	for _, def := range Objects() {
		obj := def.New()
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
