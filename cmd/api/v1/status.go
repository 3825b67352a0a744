package v1

import (
	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/tunnel"
	"github.com/urfave/cli/v2"
)

type Status struct {
	Cmd
}

func (o Status) Tmpl() string {
	return `{{ps -10 "Device"}} {{ps -8 "Role"}} {{ps -8 "State"}} {{ps -15 "Local"}} {{ps -15 "Remote"}} {{ps -18 "Address"}}
{{ps -10 .Device}} {{ps -8 .Role}} {{ps -8 .State}} {{ps -15 .Local}} {{ps -15 .Remote}} {{range .Address}}{{.}} {{end}}
{{- if .Rules }}
# nat rules {{ len .Rules }}
{{- range .Rules }}
{{ps -8 (pb .Present)}} {{.Rule}}
{{- end }}
{{- end }}
`
}

func (o Status) Run(c *cli.Context) error {
	t, err := o.Tunnel(c)
	if err != nil {
		return err
	}
	obj := NewProvisioner().Status(t)
	if file := c.String("textfile"); file != "" {
		if err := tunnel.WriteMetrics(obj, file); err != nil {
			return libol.NewErr("textfile %s: %s", file, err)
		}
	}
	return o.Out(obj, c.String("format"), o.Tmpl())
}

func (o Status) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Display the tunnel device and nat rules",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table|json|yaml",
				Value:   "table",
			},
			&cli.StringFlag{Name: "textfile", Usage: "write prometheus metrics to file"},
			&cli.StringFlag{Name: "state", Usage: "state file, default /etc/gretun/<device>.yaml"},
		},
		Action: o.Run,
	})
}
