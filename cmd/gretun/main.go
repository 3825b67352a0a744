package main

import (
	"log"
	"os"

	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/cmd/api/v1"
)

func main() {
	log.SetFlags(0)
	api.Device = api.GetEnv("GRETUN_DEVICE", api.Device)
	api.Hook = api.GetEnv("GRETUN_HOOK", api.Hook)
	api.LogFile = api.GetEnv("GRETUN_LOG", api.LogFile)
	app := &api.App{}
	app.New()

	v1.Commands(app)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
