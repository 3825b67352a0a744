//go:build !linux
// +build !linux

package network

import (
	"github.com/luscis/gretun/pkg/libol"
)

type Netlink struct {
}

func NewNetlink() *Netlink {
	return &Netlink{}
}

func (n *Netlink) Show(name string) (*GreLink, error) {
	return nil, libol.NewErr("Netlink.Show notSupport")
}

func (n *Netlink) Delete(name string) error {
	return libol.NewErr("Netlink.Delete notSupport")
}
