package libol

import (
	"net"

	"github.com/vishvananda/netlink"
)

// GetLocalByGw returns the local address the kernel uses to reach addr.
func GetLocalByGw(addr string) (net.IP, error) {
	dest := net.ParseIP(addr)
	if dest == nil || dest.To4() == nil {
		return nil, NewErr("GetLocalByGw: parseIP %s failed", addr)
	}
	routes, err := netlink.RouteGet(dest)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, NewErr("GetLocalByGw: no route to %s", addr)
	}
	rte := routes[0]
	if rte.Src != nil {
		Info("GetLocalByGw: find %s on %s", addr, rte.Src)
		return rte.Src, nil
	}
	// Without a preferred source take an address of the egress link,
	// the one on the gateway's subnet when there is a gateway.
	link, err := netlink.LinkByIndex(rte.LinkIndex)
	if err != nil {
		return nil, err
	}
	address, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, err
	}
	for _, ifAddr := range address {
		if rte.Gw == nil || ifAddr.Contains(rte.Gw) {
			Info("GetLocalByGw: find %s on %s", addr, ifAddr.IP)
			return ifAddr.IP, nil
		}
	}
	return nil, NewErr("GetLocalByGw: no address on %s toward %s", link.Attrs().Name, addr)
}
