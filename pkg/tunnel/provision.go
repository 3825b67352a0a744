package tunnel

import (
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/network"
)

type Provisioner struct {
	runner libol.Runner
	links  network.Links
	filter network.Iptables
	out    *libol.SubLogger
}

func NewProvisioner(runner libol.Runner, links network.Links, filter network.Iptables) *Provisioner {
	return &Provisioner{
		runner: runner,
		links:  links,
		filter: filter,
		out:    libol.NewSubLogger("provision"),
	}
}

// Setup writes the boot hook for t and runs it once now.
func (p *Provisioner) Setup(t *config.Tunnel) error {
	t.Correct()
	if err := Validate(t); err != nil {
		return err
	}
	script, err := Render(t)
	if err != nil {
		return err
	}
	hook, err := NewHook(t.Hook, p.runner)
	if err != nil {
		return err
	}
	p.out.Info("Provisioner.Setup %s %s -> %s via %s", t.Id(), t.Local, t.Remote, t.HookFile)
	if err := hook.Install(t, script); err != nil {
		p.out.Error("Provisioner.Setup install: %s", err)
		return err
	}
	if out, err := p.runner.CombinedOutput(BashBin, t.HookFile); err != nil {
		p.out.Error("Provisioner.Setup %s: %s", t.HookFile, out)
		return libol.NewErr("run %s: %s", t.HookFile, err)
	}
	if err := t.Save(); err != nil {
		p.out.Warn("Provisioner.Setup save %s: %s", t.StateFile, err)
	}
	p.out.Info("Provisioner.Setup %s success", t.Id())
	return nil
}

// Teardown removes the device and flushes the NAT chains. Nothing here
// fails the call: a missing device or rule is already torn down.
func (p *Provisioner) Teardown(t *config.Tunnel, purge bool) {
	t.Correct()
	p.out.Info("Provisioner.Teardown %s", t.Device)
	if err := p.links.Delete(t.Device); err != nil {
		p.out.Warn("Provisioner.Teardown %s: %s", t.Device, err)
	}
	for _, ch := range network.NatChains {
		if err := p.filter.Flush(ch); err != nil {
			p.out.Warn("Provisioner.Teardown %s", err)
		}
	}
	if !purge {
		return
	}
	hook, err := NewHook(t.Hook, p.runner)
	if err != nil {
		p.out.Warn("Provisioner.Teardown %s", err)
		return
	}
	if err := hook.Purge(t); err != nil {
		p.out.Warn("Provisioner.Teardown purge: %s", err)
	}
	if err := libol.RemoveFile(t.StateFile); err != nil {
		p.out.Warn("Provisioner.Teardown purge: %s", err)
	}
}
