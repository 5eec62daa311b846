package tr104v2

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/model"
)

func TestControlModeString(t *testing.T) {
	tests := []struct {
		mode ControlMode
		want string
	}{
		{ControlNone, "None"},
		{ControlCallControl, "CallControl"},
		{ControlInterwork, "Interwork"},
		{ControlMode(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ControlMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestVoiceServiceNoControl(t *testing.T) {
	v := NewVoiceService()

	assert.Equal(t, ControlNone, v.ControlMode())
	assert.Nil(t, v.Control())
	assert.Nil(t, v.CallControl())
	assert.NotNil(t, v.Interwork())
	assert.Empty(t, v.Interwork())
}

func TestCallControlExcludesInterwork(t *testing.T) {
	v := NewVoiceService().WithInterwork(*NewInterwork(), *NewInterwork())
	require.Equal(t, ControlInterwork, v.ControlMode())
	require.Len(t, v.Interwork(), 2)
	assert.Equal(t, uint32(2), v.InterworkNumberOfEntries)

	cc := NewCallControl()
	assert.Same(t, v, v.WithCallControl(cc))

	assert.Equal(t, ControlCallControl, v.ControlMode())
	assert.Same(t, cc, v.CallControl())
	assert.Empty(t, v.Interwork())
	assert.Zero(t, v.InterworkNumberOfEntries)
}

func TestInterworkExcludesCallControl(t *testing.T) {
	v := NewVoiceService().WithCallControl(NewCallControl())
	v.SetInterwork(*NewInterwork().WithInterworkName("pbx"))

	assert.Equal(t, ControlInterwork, v.ControlMode())
	assert.Nil(t, v.CallControl())
	require.Len(t, v.Interwork(), 1)
	assert.Equal(t, "pbx", v.Interwork()[0].InterworkName)
}

func TestWithInterworkAppends(t *testing.T) {
	v := NewVoiceService().
		WithInterwork(*NewInterwork().WithInterworkName("a")).
		WithInterwork(*NewInterwork().WithInterworkName("b"))

	require.Len(t, v.Interwork(), 2)
	assert.Equal(t, "a", v.Interwork()[0].InterworkName)
	assert.Equal(t, "b", v.Interwork()[1].InterworkName)
}

func TestSetInterworkCopies(t *testing.T) {
	entries := []Interwork{*NewInterwork()}
	v := NewVoiceService()
	v.SetInterwork(entries...)

	entries[0].InterworkName = "changed"
	assert.Empty(t, v.Interwork()[0].InterworkName)
}

func TestClearControl(t *testing.T) {
	v := NewVoiceService().WithInterwork(*NewInterwork())
	v.ClearControl()
	assert.Equal(t, ControlNone, v.ControlMode())

	v.SetCallControl(NewCallControl())
	v.SetCallControl(nil)
	assert.Equal(t, ControlNone, v.ControlMode())
}

func TestSetInterworkEmpty(t *testing.T) {
	v := NewVoiceService().WithInterwork(*NewInterwork())
	v.SetInterwork()
	assert.Equal(t, ControlNone, v.ControlMode())
	assert.Zero(t, v.InterworkNumberOfEntries)

	out, err := xml.Marshal(v)
	require.NoError(t, err)
	back := NewVoiceService()
	require.NoError(t, xml.Unmarshal(out, back))
	assert.Equal(t, v.ControlMode(), back.ControlMode())

	v.SetCallControl(NewCallControl())
	v.WithInterwork()
	assert.Equal(t, ControlCallControl, v.ControlMode())
}

func TestWithTrunkAppends(t *testing.T) {
	s := NewSIP()
	s.WithTrunk(*NewTrunk()).WithTrunk(*NewTrunk())
	assert.Len(t, s.GetTrunk(), 2)
}

func TestTrunkDefaults(t *testing.T) {
	tr := NewTrunk()
	assert.False(t, tr.Enable)
	assert.Equal(t, "Disabled", tr.Status)
	assert.Equal(t, uint32(5060), tr.RegistrarServerPort)
	assert.Equal(t, "UDP", tr.Transport)
	assert.Equal(t, int32(-1), tr.VLANIDMark)
	assert.NotNil(t, tr.GetCodecList())
}

func TestVoiceServiceXMLCallControl(t *testing.T) {
	v := NewVoiceService().
		WithAlias("office").
		WithCallControl(NewCallControl().
			WithExtension(*NewExtension().WithExtensionNumber("100"), *NewExtension().WithExtensionNumber("101")))
	v.InstanceNumber = 1

	out, err := xml.Marshal(v)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, `<VoiceService instance="1">`), text)
	assert.Contains(t, text, "<Alias>office</Alias>")
	assert.Contains(t, text, "<CallControl>")
	assert.NotContains(t, text, "<Interwork>")
	assert.Equal(t, 2, strings.Count(text, "<Extension>"))

	back := NewVoiceService()
	require.NoError(t, xml.Unmarshal(out, back))
	assert.Equal(t, uint32(1), back.InstanceNumber)
	assert.Equal(t, ControlCallControl, back.ControlMode())
	require.Len(t, back.CallControl().Extension, 2)
	assert.Equal(t, "101", back.CallControl().Extension[1].ExtensionNumber)
}

func TestVoiceServiceXMLInterwork(t *testing.T) {
	v := NewVoiceService().WithInterwork(
		*NewInterwork().WithInterworkName("a"),
		*NewInterwork().WithInterworkName("b"),
	)

	out, err := xml.Marshal(v)
	require.NoError(t, err)
	text := string(out)
	assert.Equal(t, 2, strings.Count(text, "<Interwork>"))
	assert.NotContains(t, text, "<CallControl>")

	back := NewVoiceService()
	require.NoError(t, xml.Unmarshal(out, back))
	assert.Equal(t, ControlInterwork, back.ControlMode())
	require.Len(t, back.Interwork(), 2)
	assert.Equal(t, "b", back.Interwork()[1].InterworkName)
	assert.Equal(t, uint32(2), back.InterworkNumberOfEntries)
}

func TestVoiceServiceXMLRejectsBoth(t *testing.T) {
	doc := `<VoiceService><CallControl></CallControl><Interwork><InterworkName>a</InterworkName></Interwork></VoiceService>`

	err := xml.Unmarshal([]byte(doc), NewVoiceService())
	if !errors.Is(err, ErrExclusiveControl) {
		t.Fatalf("expected ErrExclusiveControl, got %v", err)
	}
}

func TestWalkFollowsControl(t *testing.T) {
	v := NewVoiceService().WithCallControl(NewCallControl().WithLine(*NewCallControlLine()))

	var paths []string
	err := model.Walk(v, "Device.Services.VoiceService.1.", func(path string, _ model.Object) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Device.Services.VoiceService.1.",
		"Device.Services.VoiceService.1.SIP.",
		"Device.Services.VoiceService.1.CallControl.",
		"Device.Services.VoiceService.1.CallControl.Line.1.",
	}, paths)

	v.SetInterwork(*NewInterwork())
	entries, err := model.ChildEntries(v, "Interwork")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = model.ChildEntries(v, "CallControl")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExclusiveDescriptor(t *testing.T) {
	assert.Equal(t, []string{"Interwork"}, VoiceServiceObject.ExclusiveWith("CallControl"))
	assert.Equal(t, []string{"CallControl"}, VoiceServiceObject.ExclusiveWith("Interwork"))
	assert.Empty(t, VoiceServiceObject.ExclusiveWith("SIP"))
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, Register(r))

	def, err := r.Match("Device.Services.VoiceService.1.CallControl.Extension.4.")
	require.NoError(t, err)
	assert.Same(t, ExtensionObject, def)
}
