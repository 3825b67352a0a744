package network

import (
	"runtime"
	"strings"

	"github.com/luscis/gretun/pkg/libol"
	"github.com/moby/libnetwork/iptables"
)

const (
	TNat   = "nat"
	CPost  = "POSTROUTING"
	CPre   = "PREROUTING"
	CMasq  = "MASQUERADE"
	CDnat  = "DNAT"
	PTcp   = "tcp"
	AppOpr = "-A"
)

type IpRule struct {
	Table   string
	Chain   string
	Source  string
	Dest    string
	Proto   string
	DstPort string
	Input   string
	Output  string
	Jump    string
	ToDest  string
}

type IpRules []IpRule

func (ru IpRule) Args() []string {
	var args []string

	if ru.Source != "" {
		args = append(args, "-s", ru.Source)
	}
	if ru.Dest != "" {
		args = append(args, "-d", ru.Dest)
	}
	if ru.Proto != "" {
		args = append(args, "-p", ru.Proto)
	}
	if len(ru.DstPort) > 0 {
		args = append(args, "--dport", ru.DstPort)
	}
	if ru.Input != "" {
		args = append(args, "-i", ru.Input)
	}
	if ru.Output != "" {
		args = append(args, "-o", ru.Output)
	}
	if ru.Jump != "" {
		args = append(args, "-j", strings.ToUpper(ru.Jump))
	} else {
		args = append(args, "-j", "ACCEPT")
	}
	if ru.ToDest != "" {
		args = append(args, "--to-destination", ru.ToDest)
	}
	return args
}

// Line renders the rule as an iptables command line for opr.
func (ru IpRule) Line(opr string) string {
	return "iptables -t " + ru.Table + " " + opr + " " + ru.Chain + " " + strings.Join(ru.Args(), " ")
}

func (ru IpRule) String() string {
	return ru.Table + " " + ru.Chain + " " + strings.Join(ru.Args(), " ")
}

func (ru IpRule) Eq(obj IpRule) bool {
	return ru.String() == obj.String()
}

func (rules IpRules) Has(rule IpRule) bool {
	for _, r := range rules {
		if r.Eq(rule) {
			return true
		}
	}
	return false
}

func (rules IpRules) Add(obj IpRule) IpRules {
	if !rules.Has(obj) {
		return append(rules, obj)
	}
	return rules
}

type IpChain struct {
	Table string
	Name  string
}

type IpChains []IpChain

func (ch IpChain) Eq(obj IpChain) bool {
	return ch.Table == obj.Table && ch.Name == obj.Name
}

func (chains IpChains) Has(obj IpChain) bool {
	for _, ch := range chains {
		if ch.Eq(obj) {
			return true
		}
	}
	return false
}

// NatChains are flushed on teardown.
var NatChains = IpChains{
	{Table: TNat, Name: CPre},
	{Table: TNat, Name: CPost},
}

// Iptables is the netfilter view used by provisioning and status.
type Iptables interface {
	Exist(rule IpRule) bool
	Flush(chain IpChain) error
}

type Netfilter struct {
}

func NewNetfilter() *Netfilter {
	return &Netfilter{}
}

func (n *Netfilter) Exist(ru IpRule) bool {
	if runtime.GOOS != "linux" {
		return false
	}
	return iptables.Exists(iptables.Table(ru.Table), ru.Chain, ru.Args()...)
}

func (n *Netfilter) Flush(ch IpChain) error {
	libol.Debug("Netfilter.Flush: %s %s", ch.Table, ch.Name)
	if runtime.GOOS != "linux" {
		return libol.NewErr("iptables notSupport %s", runtime.GOOS)
	}
	if out, err := iptables.Raw("-t", ch.Table, "-F", ch.Name); err != nil {
		return libol.NewErr("flush %s/%s: %s %s", ch.Table, ch.Name, err, out)
	}
	return nil
}

var _ Iptables = (*Netfilter)(nil)
