package api

import (
	"bytes"
	"testing"

	"github.com/luscis/gretun/pkg/libol"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func newApp(out *bytes.Buffer, called *bool) *App {
	app := &App{}
	app.New().Writer = out
	app.Default(func(c *cli.Context) error {
		*called = true
		return nil
	})
	return app
}

func TestAppDefault(t *testing.T) {
	var out bytes.Buffer
	called := false
	assert.Nil(t, newApp(&out, &called).Run([]string{"gretun"}))
	assert.True(t, called, "default action runs.")
	assert.False(t, Verbose)
}

func TestAppHelp(t *testing.T) {
	var out bytes.Buffer
	called := false
	assert.Nil(t, newApp(&out, &called).Run([]string{"gretun", "--help"}))
	assert.False(t, called)
	assert.Contains(t, out.String(), "--verbose")
	assert.Contains(t, out.String(), "--device")
}

func TestAppVerbose(t *testing.T) {
	defer libol.SetLevel(libol.INFO)
	var out bytes.Buffer
	called := false
	assert.Nil(t, newApp(&out, &called).Run([]string{"gretun", "-v"}))
	assert.True(t, called)
	assert.True(t, Verbose, "-v is verbose.")
	assert.Equal(t, libol.DEBUG, libol.Logger.Level, "be the same.")
}
