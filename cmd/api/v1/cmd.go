package v1

import (
	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/network"
	"github.com/luscis/gretun/pkg/tunnel"
	"github.com/urfave/cli/v2"
)

// NewProvisioner is replaced in tests.
var NewProvisioner = func() *tunnel.Provisioner {
	return tunnel.NewProvisioner(libol.NewExecRunner(), network.NewNetlink(), network.NewNetfilter())
}

type Cmd struct {
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	if tmpl == "" {
		format = "yaml"
	}
	return api.Out(data, format, tmpl)
}

func (c Cmd) HookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "hook", Usage: "boot hook: rc-local|systemd"},
		&cli.StringFlag{Name: "hook-file", Usage: "boot script path"},
		&cli.StringFlag{Name: "state", Usage: "state file, default /etc/gretun/<device>.yaml"},
	}
}

func (c Cmd) TunnelFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "local", Usage: "public IPv4 of this server, found by route when empty"},
		&cli.StringFlag{Name: "remote", Usage: "public IPv4 of the peer", Required: true},
		&cli.StringFlag{Name: "prefix", Usage: "tunnel prefix like 10.10.10", Required: true},
		&cli.IntFlag{Name: "ttl", Usage: "GRE ttl", Value: config.DefaultTtl},
		&cli.StringFlag{Name: "keep", Usage: "tcp ports kept on the iran side", Value: "22"},
	}
	return append(flags, c.HookFlags()...)
}

// Tunnel loads the state of the selected device and applies flags over it.
func (c Cmd) Tunnel(ctx *cli.Context) (*config.Tunnel, error) {
	device := ctx.String("device")
	t := &config.Tunnel{
		Device:    device,
		Hook:      api.Hook,
		KeepPorts: []int{22},
		StateFile: ctx.String("state"),
	}
	t.Correct()
	if err := t.Load(); err != nil {
		libol.Warn("Cmd.Tunnel %s: %s", t.StateFile, err)
	}
	t.Device = device
	if ctx.IsSet("hook") {
		t.Hook = ctx.String("hook")
		t.HookFile = ""
		t.UnitFile = ""
	}
	if ctx.IsSet("hook-file") {
		t.HookFile = ctx.String("hook-file")
	}
	if ctx.IsSet("ttl") {
		t.Ttl = ctx.Int("ttl")
	}
	if ctx.IsSet("keep") {
		ports, err := config.Ports(ctx.String("keep"))
		if err != nil {
			return nil, err
		}
		t.KeepPorts = ports
	}
	if ctx.IsSet("remote") {
		t.Remote = ctx.String("remote")
	}
	if ctx.IsSet("prefix") {
		t.Prefix = ctx.String("prefix")
	}
	if ctx.IsSet("local") {
		t.Local = ctx.String("local")
	}
	t.Correct()
	return t, nil
}

func (c Cmd) Local(t *config.Tunnel) error {
	if t.Local != "" {
		return nil
	}
	if err := tunnel.ValidIPv4(t.Remote); err != nil {
		return err
	}
	addr, err := libol.GetLocalByGw(t.Remote)
	if err != nil {
		return libol.NewErr("local address toward %s: %s, use --local", t.Remote, err)
	}
	t.Local = addr.String()
	return nil
}

func Commands(app *api.App) {
	Menu{}.Commands(app)
	Setup{Role: config.RoleIran}.Commands(app)
	Setup{Role: config.RoleKharej}.Commands(app)
	Remove{}.Commands(app)
	Render{}.Commands(app)
	Status{}.Commands(app)
}
