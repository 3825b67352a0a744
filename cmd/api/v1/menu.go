package v1

import (
	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/pkg/menu"
	"github.com/urfave/cli/v2"
)

type Menu struct {
	Cmd
}

func (o Menu) Run(c *cli.Context) error {
	t, err := o.Tunnel(c)
	if err != nil {
		return err
	}
	console, err := menu.NewConsole()
	if err != nil {
		return err
	}
	return menu.NewTerminal(console, NewProvisioner(), api.Stdout, t).Start()
}

func (o Menu) Commands(app *api.App) {
	app.Default(o.Run)
	app.Command(&cli.Command{
		Name:   "menu",
		Usage:  "Choose Iran, Kharej or remove interactively",
		Flags:  o.HookFlags(),
		Action: o.Run,
	})
}
