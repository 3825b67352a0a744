package tunnel

import (
	"io"
	"os"

	"github.com/coreos/go-systemd/v22/unit"
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
)

const (
	BashBin      = "/bin/bash"
	SystemctlBin = "systemctl"
)

// Hook keeps the boot script applied across reboots.
type Hook interface {
	Install(t *config.Tunnel, script string) error
	Purge(t *config.Tunnel) error
}

func NewHook(kind string, runner libol.Runner) (Hook, error) {
	switch kind {
	case config.HookRcLocal, "":
		return &RcLocalHook{}, nil
	case config.HookSystemd:
		return &SystemdHook{runner: runner}, nil
	default:
		return nil, libol.NewErr("unknown hook %q", kind)
	}
}

type RcLocalHook struct {
}

func (h *RcLocalHook) Install(t *config.Tunnel, script string) error {
	return libol.WriteExec(t.HookFile, []byte(script))
}

func (h *RcLocalHook) Purge(t *config.Tunnel) error {
	return libol.RemoveFile(t.HookFile)
}

type SystemdHook struct {
	runner libol.Runner
}

func UnitOptions(t *config.Tunnel) []*unit.UnitOption {
	return []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "GRE tunnel "+t.Device+" ("+t.Role+")"),
		unit.NewUnitOption("Unit", "After", "network-online.target"),
		unit.NewUnitOption("Unit", "Wants", "network-online.target"),
		unit.NewUnitOption("Service", "Type", "oneshot"),
		unit.NewUnitOption("Service", "RemainAfterExit", "yes"),
		unit.NewUnitOption("Service", "ExecStart", BashBin+" "+t.HookFile),
		unit.NewUnitOption("Install", "WantedBy", "multi-user.target"),
	}
}

func (h *SystemdHook) Install(t *config.Tunnel, script string) error {
	if err := libol.WriteExec(t.HookFile, []byte(script)); err != nil {
		return err
	}
	data, err := io.ReadAll(unit.Serialize(UnitOptions(t)))
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.UnitFile, data, 0644); err != nil {
		return err
	}
	name := config.UnitName(t.Device)
	if out, err := h.runner.CombinedOutput(SystemctlBin, "daemon-reload"); err != nil {
		return libol.NewErr("daemon-reload: %s %s", err, out)
	}
	if out, err := h.runner.CombinedOutput(SystemctlBin, "enable", name); err != nil {
		return libol.NewErr("enable %s: %s %s", name, err, out)
	}
	return nil
}

func (h *SystemdHook) Purge(t *config.Tunnel) error {
	name := config.UnitName(t.Device)
	if out, err := h.runner.CombinedOutput(SystemctlBin, "disable", name); err != nil {
		libol.Warn("SystemdHook.Purge: %s %s", err, out)
	}
	if err := libol.RemoveFile(t.UnitFile); err != nil {
		return err
	}
	if err := libol.RemoveFile(t.HookFile); err != nil {
		return err
	}
	if out, err := h.runner.CombinedOutput(SystemctlBin, "daemon-reload"); err != nil {
		libol.Warn("SystemdHook.Purge: daemon-reload %s %s", err, out)
	}
	return nil
}
