package config

import (
	"strconv"
	"strings"

	"github.com/luscis/gretun/pkg/libol"
)

const (
	RoleIran   = "iran"
	RoleKharej = "kharej"
)

const (
	HookRcLocal = "rc-local"
	HookSystemd = "systemd"
)

const (
	DefaultDevice  = "gre1"
	DefaultTtl     = 255
	DefaultRcLocal = "/etc/rc.local"
)

type Tunnel struct {
	Role      string `json:"role" yaml:"role"`
	Local     string `json:"local" yaml:"local"`
	Remote    string `json:"remote" yaml:"remote"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Device    string `json:"device" yaml:"device"`
	Ttl       int    `json:"ttl" yaml:"ttl"`
	KeepPorts []int  `json:"keepPorts,omitempty" yaml:"keepPorts,omitempty"`
	Hook      string `json:"hook" yaml:"hook"`
	HookFile  string `json:"hookFile" yaml:"hookFile"`
	UnitFile  string `json:"unitFile,omitempty" yaml:"unitFile,omitempty"`
	StateFile string `json:"-" yaml:"-"`
}

func DefaultTunnel() *Tunnel {
	obj := &Tunnel{
		Device:    DefaultDevice,
		Ttl:       DefaultTtl,
		KeepPorts: []int{22},
		Hook:      HookRcLocal,
	}
	obj.Correct()
	return obj
}

func (t *Tunnel) Correct() {
	t.Role = strings.ToLower(t.Role)
	if t.Device == "" {
		t.Device = DefaultDevice
	}
	if t.Ttl <= 0 || t.Ttl > 255 {
		t.Ttl = DefaultTtl
	}
	if t.Hook == "" {
		t.Hook = HookRcLocal
	}
	if t.HookFile == "" {
		switch t.Hook {
		case HookSystemd:
			t.HookFile = EtcFile(t.Device + ".sh")
		default:
			t.HookFile = DefaultRcLocal
		}
	}
	if t.Hook == HookSystemd && t.UnitFile == "" {
		t.UnitFile = SystemdDir + "/" + UnitName(t.Device)
	}
	if t.StateFile == "" {
		t.StateFile = EtcFile(t.Device + ".yaml")
	}
}

func (t *Tunnel) IsIran() bool {
	return t.Role == RoleIran
}

// Ports parses a comma separated list such as "22,2222".
func Ports(value string) ([]int, error) {
	var ports []int
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		port, err := strconv.Atoi(item)
		if err != nil || port <= 0 || port > 65535 {
			return nil, libol.NewErr("invalid port %q", item)
		}
		ports = append(ports, port)
	}
	return ports, nil
}

func (t *Tunnel) Save() error {
	return libol.MarshalSave(t, t.StateFile, true)
}

// Load merges the state file over t, keeping t's StateFile.
func (t *Tunnel) Load() error {
	file := t.StateFile
	if err := libol.UnmarshalLoad(t, file); err != nil {
		return err
	}
	t.StateFile = file
	return nil
}

func (t *Tunnel) Id() string {
	return t.Role + ":" + t.Device
}
