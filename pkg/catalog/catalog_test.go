package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr098"
	"github.com/cwmp-go/tr069/pkg/tr104v2"
	"github.com/cwmp-go/tr069/pkg/tr181"
)

func TestDefault(t *testing.T) {
	reg := Default()

	for _, std := range model.Standards() {
		assert.NotEmpty(t, reg.ByStandard(std), std)
	}

	def, err := reg.Match("Device.DynamicDNS.Client.2.Hostname.[www].")
	require.NoError(t, err)
	assert.Same(t, tr181.DynamicDNSHostnameObject, def)

	def, err = reg.Match("InternetGatewayDevice.Layer3Forwarding.Forwarding.1.")
	require.NoError(t, err)
	assert.Same(t, tr098.ForwardingObject, def)
}

func TestDefaultParentsRegistered(t *testing.T) {
	reg := Default()
	for _, def := range reg.Objects() {
		for _, c := range def.Children {
			_, err := reg.Lookup(c.Object)
			assert.NoError(t, err, "%s child %s", def.Path, c.Name)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" cbor ", FormatCBOR, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	reg := Default()
	want := NewDocument(reg)

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, reg, format))

			back, err := Import(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, reg.Len(), back.Len())
			assert.Equal(t, reg.Paths(), back.Paths())
			assert.Equal(t, want, NewDocument(back))
		})
	}
}

func TestImportedDescriptors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Default(), FormatYAML))

	reg, err := Import(&buf, FormatYAML)
	require.NoError(t, err)

	def, err := reg.Match("Device.Routing.Router.1.IPv4Forwarding.3.")
	require.NoError(t, err)
	assert.Nil(t, def.New)

	p, err := def.Param("ForwardingMetric")
	require.NoError(t, err)
	assert.Equal(t, "-1", p.Default)
	require.NotNil(t, p.MinValue)
	assert.Equal(t, int64(-1), *p.MinValue)
	assert.ErrorIs(t, p.CheckValue("-2"), model.ErrParamOutOfRange)

	alias, err := def.Param("Alias")
	require.NoError(t, err)
	assert.Equal(t, "StaticRoute", alias.WritableIf)

	vs, err := reg.Lookup(tr104v2.VoiceServiceObject.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Interwork"}, vs.ExclusiveWith("CallControl"))
}

func TestCBORDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Export(&a, Default(), FormatCBOR))
	require.NoError(t, Export(&b, Default(), FormatCBOR))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestJSONLayout(t *testing.T) {
	reg := model.NewRegistry()
	require.NoError(t, reg.Register(tr098.ForwardingObject))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, reg, FormatJSON))
	text := buf.String()

	assert.Contains(t, text, `"path": "InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}."`)
	assert.Contains(t, text, `"standard": "TR-098"`)
	assert.Contains(t, text, `"access": "readWrite"`)
	assert.Contains(t, text, `"default": "-1"`)
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		want   error
	}{
		{"garbage", FormatJSON, "{", ErrInvalidDocument},
		{"unknown field", FormatYAML, "objects:\n  - path: A.\n    colour: red\n", ErrInvalidDocument},
		{"bad access", FormatJSON, `{"objects":[{"path":"A.","name":"A","access":"sometimes"}]}`, ErrInvalidDocument},
		{"bad type", FormatJSON, `{"objects":[{"path":"A.","name":"A","access":"readOnly","params":[{"name":"X","type":"float","access":"readOnly"}]}]}`, ErrInvalidDocument},
		{"no path dot", FormatJSON, `{"objects":[{"path":"A","name":"A","access":"readOnly"}]}`, model.ErrInvalidObject},
		{"duplicate", FormatJSON, `{"objects":[{"path":"A.","name":"A","access":"readOnly"},{"path":"A.","name":"B","access":"readOnly"}]}`, model.ErrDuplicateObject},
		{"format", Format("xml"), "", ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.doc), tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Export(&buf, Default(), Format("toml")), ErrUnknownFormat)
}
