package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/catalog"
	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/validate"
)

func newShell(t *testing.T, role validate.Role) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s := New(Config{Registry: catalog.Default(), Role: role}, &out)
	return s, &out
}

func exec(t *testing.T, s *Shell, line string) {
	t.Helper()
	quit, err := s.Exec(line)
	require.NoError(t, err, line)
	require.False(t, quit, line)
}

func TestNewAndGetSet(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)

	exec(t, s, "new Device.DynamicDNS.Client.{i}")
	assert.Contains(t, out.String(), "Working object: Device.DynamicDNS.Client.1.")

	out.Reset()
	exec(t, s, "set Username alice")
	assert.Equal(t, "Device.DynamicDNS.Client.1.Username = \"alice\"\n", out.String())

	out.Reset()
	exec(t, s, "get Device.DynamicDNS.Client.1.Username")
	assert.Equal(t, "Device.DynamicDNS.Client.1.Username = \"alice\"\n", out.String())

	out.Reset()
	exec(t, s, "get Status")
	assert.Equal(t, "Device.DynamicDNS.Client.1.Status = \"Disabled\"\n", out.String())
}

func TestHiddenValue(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)
	exec(t, s, "new Device.DynamicDNS.Client.{i}")
	exec(t, s, "set Password secret")

	out.Reset()
	exec(t, s, "get Password")
	assert.Contains(t, out.String(), "(hidden)")
	assert.NotContains(t, out.String(), "secret")
}

func TestSetRespectsRole(t *testing.T) {
	acs, _ := newShell(t, validate.RoleACS)
	exec(t, acs, "new Device.DynamicDNS.Client.{i}")

	_, err := acs.Exec("set Status Updated")
	assert.ErrorIs(t, err, model.ErrParamNotWritable)

	cpe, out := newShell(t, validate.RoleCPE)
	exec(t, cpe, "new Device.DynamicDNS.Client.{i}")
	exec(t, cpe, "set Status Updated")
	assert.Contains(t, out.String(), `Status = "Updated"`)

	_, err = cpe.Exec("set Status Bogus")
	assert.Error(t, err)
}

func TestNoObject(t *testing.T) {
	s, _ := newShell(t, validate.RoleACS)

	for _, line := range []string{"get Username", "set Username x", "tree", "xml", "validate"} {
		_, err := s.Exec(line)
		assert.ErrorIs(t, err, ErrNoObject, line)
	}
}

func TestTreeAndXML(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)
	exec(t, s, "new Device.DynamicDNS.Client.{i}")
	exec(t, s, "set Username alice")

	out.Reset()
	exec(t, s, "tree")
	assert.Contains(t, out.String(), "Device.DynamicDNS.Client.1.")
	assert.Contains(t, out.String(), "alice")

	out.Reset()
	exec(t, s, "xml")
	assert.Contains(t, out.String(), "<Username>alice</Username>")
	assert.Contains(t, out.String(), "<Status>Disabled</Status>")
}

func TestValidate(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)
	exec(t, s, "new Device.DynamicDNS.Client.{i}")

	out.Reset()
	exec(t, s, "validate")
	assert.Equal(t, "OK\n", out.String())
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "client.xml")
	doc := `<Client instance="3">
  <Enable>true</Enable>
  <Status>Bogus</Status>
  <Username>bob</Username>
</Client>`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	s, out := newShell(t, validate.RoleACS)
	exec(t, s, "load Device.DynamicDNS.Client.3 "+file)
	assert.Contains(t, out.String(), "Working object: Device.DynamicDNS.Client.3.")

	out.Reset()
	exec(t, s, "get Username")
	assert.Equal(t, "Device.DynamicDNS.Client.3.Username = \"bob\"\n", out.String())

	out.Reset()
	exec(t, s, "validate")
	assert.Contains(t, out.String(), "[oneof]")
	assert.Contains(t, out.String(), "1 violations")
}

func TestLoadErrors(t *testing.T) {
	s, _ := newShell(t, validate.RoleACS)

	_, err := s.Exec("load Device.DynamicDNS.Client.1 " + filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)

	_, err = s.Exec("load Device.DynamicDNS.Client.1")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)

	exec(t, s, "ls")
	assert.Contains(t, out.String(), "Device.DynamicDNS.")
	assert.Contains(t, out.String(), "InternetGatewayDevice.")

	out.Reset()
	exec(t, s, "ls Device.DynamicDNS.Client.{i}")
	assert.Contains(t, out.String(), "Device.DynamicDNS.Client.{i}.Hostname.{i}.  (DynamicDNSHostname)")
	assert.Contains(t, out.String(), "Device.DynamicDNS.Client.{i}.Username")
}

func TestShow(t *testing.T) {
	s, out := newShell(t, validate.RoleACS)

	exec(t, s, "show Device.DynamicDNS.Client.{i}.")
	assert.Contains(t, out.String(), "Device.DynamicDNS.Client.{i}. (TR-181")
	assert.Contains(t, out.String(), "Unique keys: Alias, Server+Username")

	_, err := s.Exec("show")
	assert.Error(t, err)

	_, err = s.Exec("show Device.NoSuchThing.")
	assert.Error(t, err)
}

func TestUnknownAndQuit(t *testing.T) {
	s, _ := newShell(t, validate.RoleACS)

	quit, err := s.Exec("frobnicate")
	assert.False(t, quit)
	assert.ErrorContains(t, err, "unknown command: frobnicate")

	quit, err = s.Exec("   ")
	assert.False(t, quit)
	assert.NoError(t, err)

	for _, line := range []string{"quit", "exit", "q"} {
		quit, err = s.Exec(line)
		assert.True(t, quit, line)
		assert.NoError(t, err, line)
	}
}
