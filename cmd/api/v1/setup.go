package v1

import (
	"fmt"

	"github.com/luscis/gretun/cmd/api"
	"github.com/urfave/cli/v2"
)

type Setup struct {
	Cmd
	Role string
}

func (o Setup) Run(c *cli.Context) error {
	t, err := o.Tunnel(c)
	if err != nil {
		return err
	}
	t.Role = o.Role
	if err := o.Local(t); err != nil {
		return err
	}
	if err := NewProvisioner().Setup(t); err != nil {
		return err
	}
	fmt.Fprintf(api.Stdout, "GRE tunnel %s is up as %s, hook %s\n", t.Device, t.Role, t.HookFile)
	return nil
}

func (o Setup) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:   o.Role,
		Usage:  "Set up the tunnel on the " + o.Role + " server",
		Flags:  o.TunnelFlags(),
		Action: o.Run,
	})
}
