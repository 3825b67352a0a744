package v1

import (
	"fmt"

	"github.com/luscis/gretun/cmd/api"
	"github.com/urfave/cli/v2"
)

type Remove struct {
	Cmd
}

func (o Remove) Run(c *cli.Context) error {
	t, err := o.Tunnel(c)
	if err != nil {
		return err
	}
	NewProvisioner().Teardown(t, c.Bool("purge"))
	fmt.Fprintf(api.Stdout, "GRE tunnel %s removed\n", t.Device)
	return nil
}

func (o Remove) Commands(app *api.App) {
	flags := append([]cli.Flag{
		&cli.BoolFlag{Name: "purge", Usage: "also delete the boot hook and state"},
	}, o.HookFlags()...)
	app.Command(&cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Usage:   "Delete the tunnel device and flush nat chains",
		Flags:   flags,
		Action:  o.Run,
	})
}
