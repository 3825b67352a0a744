package api

import (
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/urfave/cli/v2"
)

var (
	Device  = config.DefaultDevice
	Hook    = config.HookRcLocal
	LogFile = ""
	Verbose = false
)

type App struct {
	cli    *cli.App
	Before func(c *cli.Context) error
	After  func(c *cli.Context) error
}

func (a *App) Flags() []cli.Flag {
	var flags []cli.Flag

	flags = append(flags,
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "tunnel device name",
			Value:   Device,
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:  "log",
			Usage: "log file, rotated",
			Value: LogFile,
		})
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable verbose",
			Value:   false,
		})
	return flags
}

func (a *App) New() *cli.App {
	app := &cli.App{
		Name:     "gretun",
		Usage:    "GRE tunnel between an Iran and a Kharej server",
		Flags:    a.Flags(),
		Commands: []*cli.Command{},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				Verbose = true
				libol.SetLogger(c.String("log"), libol.DEBUG)
			} else {
				Verbose = false
				libol.SetLogger(c.String("log"), libol.INFO)
			}
			if a.Before == nil {
				return nil
			}
			return a.Before(c)
		},
		After: func(c *cli.Context) error {
			if a.After == nil {
				return nil
			}
			return a.After(c)
		},
	}
	a.cli = app
	return a.cli
}

func (a *App) Command(cmd *cli.Command) {
	a.cli.Commands = append(a.cli.Commands, cmd)
}

// Default runs when no command is given.
func (a *App) Default(action cli.ActionFunc) {
	a.cli.Action = action
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}
