package network

import (
	nl "github.com/vishvananda/netlink"
)

type Netlink struct {
}

func NewNetlink() *Netlink {
	return &Netlink{}
}

func (n *Netlink) Show(name string) (*GreLink, error) {
	link, err := nl.LinkByName(name)
	if err != nil {
		return nil, err
	}
	attrs := link.Attrs()
	obj := &GreLink{
		Name:  attrs.Name,
		Type:  link.Type(),
		State: attrs.OperState.String(),
		Mtu:   attrs.MTU,
	}
	if gre, ok := link.(*nl.Gretun); ok {
		if gre.Local != nil {
			obj.Local = gre.Local.String()
		}
		if gre.Remote != nil {
			obj.Remote = gre.Remote.String()
		}
		obj.Ttl = int(gre.Ttl)
	}
	if addrs, err := nl.AddrList(link, nl.FAMILY_V4); err == nil {
		for _, addr := range addrs {
			obj.Address = append(obj.Address, addr.IPNet.String())
		}
	}
	return obj, nil
}

func (n *Netlink) Delete(name string) error {
	link, err := nl.LinkByName(name)
	if err != nil {
		return err
	}
	return nl.LinkDel(link)
}
