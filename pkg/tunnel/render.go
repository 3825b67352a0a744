package tunnel

import (
	"bytes"
	"net"
	"strconv"
	"text/template"

	"github.com/c-robinson/iplib"
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/network"
)

const PrefixLen = 30

var scriptTmpl = map[string]string{
	config.RoleIran: `#!/bin/bash
sysctl net.ipv4.ip_forward=1
ip tunnel add {{ .Device }} mode gre local {{ .Local }} remote {{ .Remote }} ttl {{ .Ttl }}
ip addr add {{ .Address }} dev {{ .Device }}
ip link set {{ .Device }} up
{{- range .Rules }}
{{ line . }}
{{- end }}
exit 0
`,
	config.RoleKharej: `#!/bin/bash
sysctl net.ipv4.ip_forward=1
ip tunnel add {{ .Device }} mode gre local {{ .Local }} remote {{ .Remote }} ttl {{ .Ttl }}
ip addr add {{ .Address }} dev {{ .Device }}
ip link set {{ .Device }} up
exit 0
`,
}

// Endpoints are the two addresses of the point-to-point subnet.
type Endpoints struct {
	Iran   net.IP
	Kharej net.IP
}

func NewEndpoints(prefix string) (Endpoints, error) {
	if err := ValidPrefix(prefix); err != nil {
		return Endpoints{}, err
	}
	n := iplib.NewNet4(net.ParseIP(prefix+".0"), PrefixLen)
	return Endpoints{
		Iran:   n.FirstAddress(),
		Kharej: n.LastAddress(),
	}, nil
}

func (e Endpoints) Local(role string) net.IP {
	if role == config.RoleIran {
		return e.Iran
	}
	return e.Kharej
}

// NatRules are installed by the iran role: kept ports stay on the tunnel's
// local address, everything else goes over to the kharej side.
func NatRules(t *config.Tunnel) (network.IpRules, error) {
	ends, err := NewEndpoints(t.Prefix)
	if err != nil {
		return nil, err
	}
	var rules network.IpRules
	for _, port := range t.KeepPorts {
		rules = rules.Add(network.IpRule{
			Table:   network.TNat,
			Chain:   network.CPre,
			Proto:   network.PTcp,
			DstPort: strconv.Itoa(port),
			Jump:    network.CDnat,
			ToDest:  ends.Iran.String(),
		})
	}
	rules = rules.Add(network.IpRule{
		Table:  network.TNat,
		Chain:  network.CPre,
		Jump:   network.CDnat,
		ToDest: ends.Kharej.String(),
	})
	rules = rules.Add(network.IpRule{
		Table: network.TNat,
		Chain: network.CPost,
		Jump:  network.CMasq,
	})
	return rules, nil
}

type scriptData struct {
	*config.Tunnel
	Address string
	Rules   network.IpRules
}

// Render returns the boot script that brings the tunnel up for t's role.
func Render(t *config.Tunnel) (string, error) {
	tmpl, ok := scriptTmpl[t.Role]
	if !ok {
		return "", libol.NewErr("Render: unknown role %q", t.Role)
	}
	ends, err := NewEndpoints(t.Prefix)
	if err != nil {
		return "", err
	}
	data := scriptData{
		Tunnel:  t,
		Address: ends.Local(t.Role).String() + "/" + strconv.Itoa(PrefixLen),
	}
	if t.IsIran() {
		if data.Rules, err = NatRules(t); err != nil {
			return "", err
		}
	}
	funcMap := template.FuncMap{
		"line": func(ru network.IpRule) string {
			return ru.Line(network.AppOpr)
		},
	}
	obj, err := template.New("main").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := obj.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}
