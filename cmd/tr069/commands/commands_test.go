package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/catalog"
	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/validate"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPaths(t *testing.T) {
	out, _, err := run(t, "", "paths")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, catalog.Default().Len())
	assert.Contains(t, lines, "Device.DynamicDNS.Client.{i}.")
	assert.Contains(t, lines, "InternetGatewayDevice.Layer3Forwarding.Forwarding.{i}.")
}

func TestPathsByStandard(t *testing.T) {
	out, _, err := run(t, "", "paths", "--standard", "tr098")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "InternetGatewayDevice."), line)
	}

	out, _, err = run(t, "", "paths", "-s", "TR-196", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "TR-196 FAPService")

	_, _, err = run(t, "", "paths", "--standard", "TR-999")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "", "show", "dev.DynamicDNS.Client.2")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Device.DynamicDNS.Client.{i}. (TR-181 "), out)
	assert.Contains(t, out, "Parameters:")
	assert.Contains(t, out, "Hostname.{i}. (in Hostnames)")
	assert.Contains(t, out, "read-write")
}

func TestShowUnknownPath(t *testing.T) {
	_, _, err := run(t, "", "show", "Device.Nothing.")
	require.ErrorIs(t, err, model.ErrObjectNotFound)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestNew(t *testing.T) {
	out, _, err := run(t, "", "new", "Device.DynamicDNS.Client.3.")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<Client instance="3">`), out)
	assert.Contains(t, out, "<Alias>cpe-")
	assert.Contains(t, out, "<Status>Disabled</Status>")

	out, _, err = run(t, "", "new", "--no-alias", "Device.DynamicDNS.Client.{i}.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<Client>"), out)
	assert.Contains(t, out, "<Alias></Alias>")
}

func TestNewThenValidate(t *testing.T) {
	doc, _, err := run(t, "", "new", "Device.DynamicDNS.Client.3.")
	require.NoError(t, err)

	out, _, err := run(t, doc, "validate", "Device.DynamicDNS.Client.3.", "-")
	require.NoError(t, err)
	assert.Equal(t, "OK: Device.DynamicDNS.Client.3.\n", out)
}

func TestValidateViolations(t *testing.T) {
	doc := `<Client><Status>Sleeping</Status><Hostnames><Hostname><Name>a</Name></Hostname><Hostname><Name>a</Name></Hostname></Hostnames></Client>`

	out, _, err := run(t, doc, "validate", "Device.DynamicDNS.Client.1.", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, ExitValidation, ExitCode(err))

	assert.Contains(t, out, "Device.DynamicDNS.Client.1.Status: ")
	assert.Contains(t, out, "[oneof]")
	assert.Contains(t, out, "Device.DynamicDNS.Client.1.Hostname: entries 1 and 2 share Name [unique]")
}

func TestValidateFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "route.xml")
	doc := `<Forwarding><DestIPAddress>10.0.0.0</DestIPAddress><DestSubnetMask>255.0.0.0</DestSubnetMask></Forwarding>`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o644))

	out, _, err := run(t, "", "validate", "--metrics", "igd.Layer3Forwarding.Forwarding.1", file)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: InternetGatewayDevice.Layer3Forwarding.Forwarding.1.")
	assert.Contains(t, out, `tr069_validation_objects_total{object="Forwarding"} 1`)
}

func TestValidateErrors(t *testing.T) {
	_, _, err := run(t, "<Client>", "validate", "Device.DynamicDNS.Client.1.", "-")
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))

	_, _, err = run(t, "", "validate", "Device.DynamicDNS.Client.1.", filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestExport(t *testing.T) {
	out, _, err := run(t, "", "export", "--format", "json", "--standard", "TR-106")
	require.NoError(t, err)

	var doc catalog.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Objects)
	for _, o := range doc.Objects {
		assert.Equal(t, "TR-106", o.Standard, o.Path)
	}
}

func TestExportYAML(t *testing.T) {
	out, _, err := run(t, "", "export", "-f", "yaml")
	require.NoError(t, err)

	reg, err := catalog.Import(strings.NewReader(out), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Paths(), reg.Paths())
}

func TestExportCBORFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.cbor")
	out, _, err := run(t, "", "export", "-f", "cbor", "-o", file)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	reg, err := catalog.Import(f, catalog.FormatCBOR)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), reg.Len())
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "export", "--format", "toml")
	assert.ErrorIs(t, err, catalog.ErrUnknownFormat)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "paths")
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog loaded")

	_, _, err = run(t, "", "--log-level", "loud", "paths")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitError},
		{validate.ErrValidation, ExitValidation},
		{&validate.ValidationError{}, ExitValidation},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	r, err := parseRole("CPE")
	require.NoError(t, err)
	assert.Equal(t, validate.RoleCPE, r)

	_, err = parseRole("admin")
	assert.Error(t, err)
}
