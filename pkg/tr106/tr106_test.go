package tr106

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-go/tr069/pkg/model"
)

func TestManagementServerDefaults(t *testing.T) {
	m := NewManagementServer()

	assert.True(t, m.EnableCWMP)
	assert.False(t, m.PeriodicInformEnable)
	assert.True(t, m.PeriodicInformTime.IsUnknown())
	assert.Equal(t, uint32(5), m.CWMPRetryMinimumWaitInterval)
	assert.Equal(t, uint32(2000), m.CWMPRetryIntervalMultiplier)
}

func TestDeviceInfoLists(t *testing.T) {
	d := NewDeviceInfo()
	assert.NotNil(t, d.GetAdditionalSoftwareVersion())
	assert.NotNil(t, d.GetVendorConfigFile())

	d.WithAdditionalSoftwareVersion("boot-1.2", "dsp-4.0").
		WithVendorConfigFile(*NewVendorConfigFile().WithName("cfg.bin"))

	out, err := xml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<AdditionalSoftwareVersion>boot-1.2,dsp-4.0</AdditionalSoftwareVersion>")
	assert.Contains(t, string(out), "<AdditionalHardwareVersion></AdditionalHardwareVersion>")

	var back DeviceInfo
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.Len(t, back.AdditionalSoftwareVersion, 2)
	require.Len(t, back.VendorConfigFile, 1)
	assert.Equal(t, "cfg.bin", back.VendorConfigFile[0].Name)
}

func TestManageableDevices(t *testing.T) {
	m := NewManagementServer().
		WithManageableDevice(*NewManageableDevice().WithSerialNumber("A")).
		WithManageableDevice(*NewManageableDevice().WithSerialNumber("B"))

	require.Len(t, m.ManageableDevice, 2)

	def, err := ManageableDeviceObject.Param("ManufacturerOUI")
	require.NoError(t, err)
	assert.True(t, def.MatchPattern("00D09E"))
	assert.False(t, def.MatchPattern("00d09e"))
}

func TestNotifyPolicy(t *testing.T) {
	p, err := DeviceInfoObject.Param("SoftwareVersion")
	require.NoError(t, err)
	assert.Equal(t, model.NotifyForceEnabled, p.Notify)

	p, err = ManagementServerObject.Param("ParameterKey")
	require.NoError(t, err)
	assert.Equal(t, model.NotifyCanDeny, p.Notify)
}

func TestRegister(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, Register(r))

	roots := r.Roots()
	var paths []string
	for _, def := range roots {
		paths = append(paths, def.Path)
	}
	assert.Equal(t, []string{"Device.DeviceInfo.", "Device.GatewayInfo.", "Device.ManagementServer."}, paths)
}
