package tunnel

import (
	"strings"

	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/network"
)

type fakeRunner struct {
	calls []string
	fail  map[string]bool
}

func (r *fakeRunner) CombinedOutput(name string, args ...string) ([]byte, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.calls = append(r.calls, line)
	if r.fail[line] {
		return []byte("exit status 1"), libol.NewErr("fake %s failed", line)
	}
	return nil, nil
}

type fakeLinks struct {
	links   map[string]*network.GreLink
	deleted []string
}

func (l *fakeLinks) Show(name string) (*network.GreLink, error) {
	if link, ok := l.links[name]; ok {
		return link, nil
	}
	return nil, libol.NewErr("Link not found")
}

func (l *fakeLinks) Delete(name string) error {
	if _, ok := l.links[name]; !ok {
		return libol.NewErr("Link not found")
	}
	delete(l.links, name)
	l.deleted = append(l.deleted, name)
	return nil
}

type fakeFilter struct {
	rules   network.IpRules
	flushed network.IpChains
	fail    bool
}

func (f *fakeFilter) Exist(ru network.IpRule) bool {
	return f.rules.Has(ru)
}

func (f *fakeFilter) Flush(ch network.IpChain) error {
	if f.fail {
		return libol.NewErr("iptables: No chain/target/match by that name")
	}
	f.flushed = append(f.flushed, ch)
	return nil
}
