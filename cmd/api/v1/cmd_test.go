package v1

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luscis/gretun/cmd/api"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/network"
	"github.com/luscis/gretun/pkg/tunnel"
	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	calls []string
}

func (r *fakeRunner) CombinedOutput(name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	return nil, nil
}

type fakeLinks struct {
	deleted []string
}

func (l *fakeLinks) Show(name string) (*network.GreLink, error) {
	return &network.GreLink{Name: name, Type: "gre", State: "up", Address: []string{"10.10.10.2/30"}}, nil
}

func (l *fakeLinks) Delete(name string) error {
	l.deleted = append(l.deleted, name)
	return nil
}

type fakeFilter struct {
	flushed network.IpChains
}

func (f *fakeFilter) Exist(ru network.IpRule) bool {
	return true
}

func (f *fakeFilter) Flush(ch network.IpChain) error {
	f.flushed = append(f.flushed, ch)
	return nil
}

type fixture struct {
	runner *fakeRunner
	links  *fakeLinks
	filter *fakeFilter
	out    *bytes.Buffer
	dir    string
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		runner: &fakeRunner{},
		links:  &fakeLinks{},
		filter: &fakeFilter{},
		out:    &bytes.Buffer{},
		dir:    t.TempDir(),
	}
	NewProvisioner = func() *tunnel.Provisioner {
		return tunnel.NewProvisioner(f.runner, f.links, f.filter)
	}
	api.Stdout = f.out
	return f
}

func (f *fixture) run(args ...string) error {
	app := &api.App{}
	app.New()
	Commands(app)
	return app.Run(append([]string{"gretun"}, args...))
}

func (f *fixture) file(name string) string {
	return filepath.Join(f.dir, name)
}

func TestIranCommand(t *testing.T) {
	f := newFixture(t)
	err := f.run("iran",
		"--local", "1.1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10.10",
		"--hook-file", f.file("rc.local"), "--state", f.file("gre1.yaml"))
	assert.Nil(t, err)

	data, err := os.ReadFile(f.file("rc.local"))
	assert.Nil(t, err)
	assert.Contains(t, string(data), "ip addr add 10.10.10.1/30 dev gre1")
	assert.Contains(t, string(data), "--dport 22 -j DNAT --to-destination 10.10.10.1")
	assert.Equal(t, []string{"/bin/bash " + f.file("rc.local")}, f.runner.calls)
	assert.Nil(t, libol.FileExist(f.file("gre1.yaml")))
	assert.Contains(t, f.out.String(), "is up as iran")
}

func TestKharejCommandKeepsState(t *testing.T) {
	f := newFixture(t)
	state := f.file("gre2.yaml")
	err := f.run("--device", "gre2", "kharej",
		"--local", "2.2.2.2", "--remote", "1.1.1.1", "--prefix", "10.20.30", "--ttl", "64",
		"--hook-file", f.file("rc.local"), "--state", state)
	assert.Nil(t, err)

	data, _ := os.ReadFile(f.file("rc.local"))
	assert.Contains(t, string(data), "ip tunnel add gre2 mode gre local 2.2.2.2 remote 1.1.1.1 ttl 64")
	assert.NotContains(t, string(data), "iptables")

	f.out.Reset()
	assert.Nil(t, f.run("--device", "gre2", "status", "--state", state, "--format", "yaml"))
	assert.Contains(t, f.out.String(), "role: kharej")
	assert.Contains(t, f.out.String(), "prefix: 10.20.30")

	assert.Nil(t, f.run("--device", "gre2", "remove", "--state", state, "--purge"))
	assert.Equal(t, []string{"gre2"}, f.links.deleted)
	assert.Equal(t, network.NatChains, f.filter.flushed)
	assert.NotNil(t, libol.FileExist(f.file("rc.local")), "hook purged.")
	assert.NotNil(t, libol.FileExist(state), "state purged.")
}

func TestSetupInvalidInput(t *testing.T) {
	f := newFixture(t)
	for _, args := range [][]string{
		{"iran", "--local", "1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10.10"},
		{"iran", "--local", "1.1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10"},
		{"kharej", "--local", "1.1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10.10", "--keep", "x"},
		{"kharej", "--local", "1.1.1.1", "--prefix", "10.10.10"},
	} {
		args = append(args, "--hook-file", f.file("rc.local"), "--state", f.file("gre1.yaml"))
		assert.NotNil(t, f.run(args...), args)
	}
	assert.NotNil(t, f.run("--device", "x;reboot", "iran",
		"--local", "1.1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10.10",
		"--hook-file", f.file("rc.local"), "--state", f.file("gre1.yaml")))
	assert.NotNil(t, libol.FileExist(f.file("rc.local")), "nothing written.")
	assert.Empty(t, f.runner.calls, "nothing ran.")
}

func TestRenderCommand(t *testing.T) {
	f := newFixture(t)
	err := f.run("render", "--role", "iran", "--keep", "22,2222",
		"--local", "1.1.1.1", "--remote", "2.2.2.2", "--prefix", "10.10.10",
		"--state", f.file("gre1.yaml"))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(f.out.String(), "#!/bin/bash\n"))
	assert.Contains(t, f.out.String(), "--dport 2222 -j DNAT")
	assert.Empty(t, f.runner.calls, "render runs nothing.")
}

func TestStatusTextfile(t *testing.T) {
	f := newFixture(t)
	prom := f.file("gretun.prom")
	assert.Nil(t, f.run("status", "--state", f.file("none.yaml"), "--textfile", prom))
	assert.Contains(t, f.out.String(), "gre1")

	data, err := os.ReadFile(prom)
	assert.Nil(t, err)
	assert.Contains(t, string(data), `gretun_link_up{device="gre1",role=""} 1`)
}
