package tunnel

import (
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
)

func (p *Provisioner) Status(t *config.Tunnel) schema.Tunnel {
	t.Correct()
	obj := schema.Tunnel{
		Role:     t.Role,
		Device:   t.Device,
		Prefix:   t.Prefix,
		Hook:     t.Hook,
		HookFile: t.HookFile,
		State:    "absent",
	}
	if link, err := p.links.Show(t.Device); err == nil {
		obj.Type = link.Type
		obj.State = link.State
		obj.Local = link.Local
		obj.Remote = link.Remote
		obj.Ttl = link.Ttl
		obj.Mtu = link.Mtu
		obj.Address = link.Address
		obj.Up = link.Up()
	} else {
		p.out.Debug("Provisioner.Status %s: %s", t.Device, err)
	}
	if !t.IsIran() || t.Prefix == "" {
		return obj
	}
	rules, err := NatRules(t)
	if err != nil {
		return obj
	}
	for _, ru := range rules {
		obj.Rules = append(obj.Rules, schema.NatRule{
			Chain:   ru.Chain,
			Rule:    ru.String(),
			Present: p.filter.Exist(ru),
		})
	}
	return obj
}

func b2f(value bool) float64 {
	if value {
		return 1
	}
	return 0
}

// Metrics builds a registry for the node_exporter textfile collector.
func Metrics(obj schema.Tunnel) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	linkUp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gretun_link_up",
		Help: "Whether the GRE tunnel device is up",
	}, []string{"device", "role"})
	rulePresent := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gretun_nat_rule_present",
		Help: "Whether an expected NAT rule is installed",
	}, []string{"device", "chain", "rule"})
	registry.MustRegister(linkUp, rulePresent)

	linkUp.WithLabelValues(obj.Device, obj.Role).Set(b2f(obj.Up))
	for _, ru := range obj.Rules {
		rulePresent.WithLabelValues(obj.Device, ru.Chain, ru.Rule).Set(b2f(ru.Present))
	}
	return registry
}

func WriteMetrics(obj schema.Tunnel, file string) error {
	return prometheus.WriteToTextfile(file, Metrics(obj))
}
