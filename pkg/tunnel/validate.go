package tunnel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
)

// The device name lands unquoted in the boot script and the unit name.
var deviceName = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,15}$`)

func ValidDevice(value string) error {
	if !deviceName.MatchString(value) {
		return libol.NewErr("invalid device %q", value)
	}
	return nil
}

func validOctets(value string, count int) bool {
	parts := strings.Split(value, ".")
	if len(parts) != count {
		return false
	}
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}
		// ip(8) reads a leading zero as octal.
		if len(part) > 1 && part[0] == '0' {
			return false
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return false
			}
		}
		if n, _ := strconv.Atoi(part); n > 255 {
			return false
		}
	}
	return true
}

// ValidIPv4 accepts a dotted quad such as 203.0.113.7.
func ValidIPv4(value string) error {
	if !validOctets(value, 4) {
		return libol.NewErr("invalid IPv4 address %q", value)
	}
	return nil
}

// ValidPrefix accepts the first three octets of the tunnel subnet, such as 10.10.10.
func ValidPrefix(value string) error {
	if !validOctets(value, 3) {
		return libol.NewErr("invalid tunnel prefix %q, expect three octets like 10.10.10", value)
	}
	return nil
}

func Validate(t *config.Tunnel) error {
	switch t.Role {
	case config.RoleIran, config.RoleKharej:
	default:
		return libol.NewErr("invalid role %q", t.Role)
	}
	if err := ValidIPv4(t.Local); err != nil {
		return libol.NewErr("local: %s", err)
	}
	if err := ValidIPv4(t.Remote); err != nil {
		return libol.NewErr("remote: %s", err)
	}
	if err := ValidPrefix(t.Prefix); err != nil {
		return err
	}
	return ValidDevice(t.Device)
}
