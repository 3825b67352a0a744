package tunnel

import (
	"testing"

	"github.com/luscis/gretun/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestValidIPv4(t *testing.T) {
	for _, ok := range []string{"1.2.3.4", "0.0.0.0", "255.255.255.255", "10.0.100.1"} {
		assert.Nil(t, ValidIPv4(ok), ok)
	}
	for _, bad := range []string{"", "1.2.3", "1.2.3.4.5", "256.1.1.1", "1.2.3.a", "1..3.4", "1.2.3.4 ", "-1.2.3.4", "1234.1.1.1", "10.10.10", "192.168.001.10"} {
		assert.NotNil(t, ValidIPv4(bad), bad)
	}
}

func TestValidPrefix(t *testing.T) {
	for _, ok := range []string{"10.10.10", "172.16.0", "0.0.0"} {
		assert.Nil(t, ValidPrefix(ok), ok)
	}
	for _, bad := range []string{"", "10.10", "10.10.10.0", "10.300.10", "10.10.x", "10.10.10."} {
		assert.NotNil(t, ValidPrefix(bad), bad)
	}
}

func TestValidDevice(t *testing.T) {
	for _, ok := range []string{"gre1", "gre-iran", "tun_0", "gre.10"} {
		assert.Nil(t, ValidDevice(ok), ok)
	}
	for _, bad := range []string{"", "x;reboot", "gre 1", "gre1$(id)", "a/b", "sixteen-chars-xx"} {
		assert.NotNil(t, ValidDevice(bad), bad)
	}
}

func TestValidate(t *testing.T) {
	tun := &config.Tunnel{
		Role:   config.RoleKharej,
		Local:  "2.2.2.2",
		Remote: "1.1.1.1",
		Prefix: "10.10.10",
	}
	tun.Correct()
	assert.Nil(t, Validate(tun))

	tun.Role = "moon"
	assert.NotNil(t, Validate(tun))
	tun.Role = config.RoleKharej

	tun.Remote = "1.1.1"
	assert.Contains(t, Validate(tun).Error(), "remote", "name the field.")
	tun.Remote = "1.1.1.1"

	tun.Device = "a-very-long-device-name"
	assert.NotNil(t, Validate(tun))

	tun.Device = "x;reboot"
	assert.NotNil(t, Validate(tun))
}
