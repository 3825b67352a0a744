package v1

import (
	"fmt"

	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/tunnel"
	"github.com/urfave/cli/v2"
)

type Render struct {
	Cmd
}

func (o Render) Run(c *cli.Context) error {
	t, err := o.Tunnel(c)
	if err != nil {
		return err
	}
	t.Role = c.String("role")
	if err := o.Local(t); err != nil {
		return err
	}
	if err := tunnel.Validate(t); err != nil {
		return err
	}
	script, err := tunnel.Render(t)
	if err != nil {
		return err
	}
	fmt.Fprint(api.Stdout, script)
	return nil
}

func (o Render) Commands(app *api.App) {
	flags := append([]cli.Flag{
		&cli.StringFlag{Name: "role", Usage: "iran|kharej", Value: config.RoleIran},
	}, o.TunnelFlags()...)
	app.Command(&cli.Command{
		Name:   "render",
		Usage:  "Print the boot script without applying it",
		Flags:  flags,
		Action: o.Run,
	})
}
